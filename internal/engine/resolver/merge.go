// Package resolver implements tap and keg config merging, alias building and
// content path resolution.
package resolver

import (
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/zerr"
)

// DeepMerge returns base with override merged into it. Maps are merged key by
// key and override wins at every level. Any other value, arrays included,
// replaces the base value wholesale. Neither input is modified.
func DeepMerge(base, override domain.Config) domain.Config {
	result := base.Clone()
	if result == nil {
		result = domain.Config{}
	}

	for _, key := range slices.Sorted(maps.Keys(override)) {
		value := override[key]
		if existing := domain.AsConfig(result[key]); existing != nil {
			if valueMap := domain.AsConfig(value); valueMap != nil {
				result[key] = map[string]any(DeepMerge(existing, valueMap))
				continue
			}
		}
		result[key] = domain.CloneValue(value)
	}

	return result
}

// MergeInput are the inputs of one merge.
type MergeInput struct {
	KegRoot string
	Keg     *domain.ConfigFile
	// Tap is nil when the tap has no config file.
	Tap   *domain.ConfigFile
	Paths domain.ResolvedPaths
}

// Merger combines the keg and tap configs and persists the result.
type Merger struct {
	store     ports.TempConfigStore
	validator ports.SchemaValidator
	prober    ports.FileProber
	logger    ports.Logger
}

// NewMerger creates a new Merger.
func NewMerger(
	store ports.TempConfigStore,
	validator ports.SchemaValidator,
	prober ports.FileProber,
	logger ports.Logger,
) *Merger {
	return &Merger{
		store:     store,
		validator: validator,
		prober:    prober,
		logger:    logger,
	}
}

// Merge returns the effective config. Without an active tap the keg config is
// returned as is. Any failure to apply the tap is logged and also yields the
// keg config.
func (m *Merger) Merge(in MergeInput) domain.EffectiveConfig {
	kegOnly := domain.EffectiveConfig{
		Config: in.Keg.Config,
		Path:   in.Keg.Path,
	}

	if in.Tap == nil || !in.Paths.HasTap || !m.prober.IsDir(in.Paths.TapPath) {
		return kegOnly
	}

	if err := m.validator.Validate(in.Tap.Config); err != nil {
		m.warn(zerr.With(err, "path", in.Tap.Path))
		return kegOnly
	}

	merged := DeepMerge(in.Keg.Config, in.Tap.Config)

	name := filepath.Base(in.Tap.Path)
	if in.Tap.Path == "" {
		name = domain.DefaultConfigFileName
	}

	path, err := m.store.Write(tempDir(in), name, merged)
	if err != nil {
		m.warn(err)
		return kegOnly
	}

	return domain.EffectiveConfig{
		Config: merged,
		Path:   path,
		HasTap: true,
	}
}

func (m *Merger) warn(err error) {
	m.logger.Warn(zerr.Wrap(err, domain.ErrTapOverride.Error()).Error())
}

// tempDir is tapResolver.paths.temp from the tap config, else from the keg
// config, joined to the tap path. Without either the default under the keg root is used.
func tempDir(in MergeInput) string {
	temp := in.Tap.Config.String(domain.KeyTapResolver, domain.KeyPaths, domain.KeyTemp)
	if temp == "" {
		temp = in.Keg.Config.String(domain.KeyTapResolver, domain.KeyPaths, domain.KeyTemp)
	}
	if temp == "" {
		return domain.DefaultTempPath(in.KegRoot)
	}
	return filepath.Join(in.Paths.TapPath, temp)
}
