package resolver

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/zerr"
)

// ConstantsInput are the inputs the build constants are derived from.
type ConstantsInput struct {
	KegRoot string
	Keg     *domain.ConfigFile
	TapPath string
	// Tap is nil when no tap config was found.
	Tap *domain.ConfigFile
	// TapName is an explicitly requested tap name. It outranks every other source.
	TapName string
	// EnvTap is the TAP environment value. It ranks below the tap config name.
	EnvTap   string
	Platform domain.Platform
}

// ConstantsBuilder derives the build constants of a session.
type ConstantsBuilder struct {
	merger    *Merger
	validator ports.SchemaValidator
	prober    ports.FileProber
	logger    ports.Logger
}

// NewConstantsBuilder creates a new ConstantsBuilder.
func NewConstantsBuilder(
	merger *Merger,
	validator ports.SchemaValidator,
	prober ports.FileProber,
	logger ports.Logger,
) *ConstantsBuilder {
	return &ConstantsBuilder{
		merger:    merger,
		validator: validator,
		prober:    prober,
		logger:    logger,
	}
}

// Build validates the keg inputs, locates the base and tap directories,
// merges the configs and reads the alias and extension settings.
func (b *ConstantsBuilder) Build(in ConstantsInput) (*domain.BuildConstants, error) {
	if err := b.validate(in); err != nil {
		return nil, err
	}

	tapCfg := domain.Config{}
	if in.Tap != nil {
		tapCfg = in.Tap.Config
	}

	basePath, err := b.basePath(in.KegRoot, in.Keg.Config, in.TapPath, tapCfg)
	if err != nil {
		return nil, err
	}

	kegName := in.Keg.Config.Name()
	tapName := activeTapName(in.TapName, tapCfg.Name(), in.EnvTap, kegName)
	hasTap := tapName != kegName

	tapPath := basePath
	if hasTap {
		tapPath = in.TapPath
	}

	paths := domain.ResolvedPaths{
		BasePath: basePath,
		TapPath:  tapPath,
		HasTap:   hasTap,
		TapName:  tapName,
	}

	effective := b.merger.Merge(MergeInput{
		KegRoot: in.KegRoot,
		Keg:     in.Keg,
		Tap:     in.Tap,
		Paths:   paths,
	})

	if !hasTap || !b.prober.IsDir(tapPath) {
		requested := in.TapPath
		if requested == "" {
			requested = tapPath
		}
		b.logger.Warn(fmt.Sprintf("No tap folder found at %s, using defaults at %s", requested, basePath))
	}

	cfg := effective.Config
	aliases := cfg.Map(domain.KeyTapResolver, domain.KeyAliases)

	extensions := domain.PlatformList(valueAt(cfg, domain.KeyTapResolver, domain.KeyExtensions), in.Platform)
	if len(extensions) == 0 {
		extensions = domain.DefaultExtensions()
	}

	return &domain.BuildConstants{
		ResolvedPaths:   paths,
		KegRoot:         in.KegRoot,
		AppConfig:       cfg,
		AppConfigPath:   effective.Path,
		NameSpace:       aliases.String(domain.KeyNameSpace),
		BaseContent:     aliases.StringMap(domain.KeyBase),
		DynamicContent:  aliases.StringMap(domain.KeyDynamic),
		Aliases:         aliases.StringMap(domain.KeyStatic),
		PlatformAliases: platformAliases(aliases, in.Platform),
		Extensions:      extensions,
		Platform:        in.Platform,
	}, nil
}

func (b *ConstantsBuilder) validate(in ConstantsInput) error {
	if in.KegRoot == "" {
		return zerr.With(domain.ErrValidation, "field", "kegRoot")
	}
	if in.Keg == nil || in.Keg.Config == nil {
		return zerr.With(domain.ErrValidation, "field", "kegConfig")
	}
	if in.Keg.Config.Name() == "" {
		return zerr.With(zerr.With(domain.ErrValidation, "field", domain.KeyName), "path", in.Keg.Path)
	}
	if err := b.validator.Validate(in.Keg.Config); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrValidation.Error()), "path", in.Keg.Path)
	}
	return nil
}

// basePath prefers the tap's baseTap, joined to the tap path, and falls back
// to the keg's baseTap joined to the keg root. Only existing directories count.
func (b *ConstantsBuilder) basePath(kegRoot string, kegCfg domain.Config, tapPath string, tapCfg domain.Config) (string, error) {
	if loc := tapCfg.String(domain.KeyTapResolver, domain.KeyPaths, domain.KeyBaseTap); loc != "" && tapPath != "" {
		if p := filepath.Join(tapPath, loc); b.prober.IsDir(p) {
			return p, nil
		}
	}

	loc := kegCfg.String(domain.KeyTapResolver, domain.KeyPaths, domain.KeyBaseTap)
	if loc != "" {
		if p := filepath.Join(kegRoot, loc); b.prober.IsDir(p) {
			return p, nil
		}
	}

	return "", zerr.With(zerr.With(domain.ErrConfiguration, "baseTap", loc), "kegRoot", kegRoot)
}

// activeTapName applies the precedence explicit > tap config > TAP > keg name.
func activeTapName(explicit, tapConfigName, envTap, kegName string) string {
	for _, name := range []string{explicit, tapConfigName, envTap} {
		if name != "" {
			return name
		}
	}
	return kegName
}

// platformAliases returns the string entries of the aliases block's web map
// on web, falling back to its native map. A block with neither yields nil.
func platformAliases(aliases domain.Config, p domain.Platform) map[string]string {
	if p.IsWeb() {
		if web := aliases.Map(string(domain.PlatformWeb)); web != nil {
			return web.StringMap()
		}
	}
	if native := aliases.Map(string(domain.PlatformNative)); native != nil {
		return native.StringMap()
	}
	return nil
}

func valueAt(cfg domain.Config, path ...string) any {
	v, _ := cfg.Get(path...)
	return v
}
