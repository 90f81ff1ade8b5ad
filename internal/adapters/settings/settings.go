// Package settings resolves run settings from CLI flags and the environment.
package settings

import (
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/zerr"
)

// Flag names.
const (
	FlagKeg      = "keg"
	FlagTap      = "tap"
	FlagTapName  = "tap-name"
	FlagPlatform = "platform"
	FlagLog      = "log"
	FlagJSON     = "json"
)

// Environment variables.
const (
	EnvTap      = "TAP"
	EnvPlatform = "PLATFORM"
	EnvLog      = "LOG"
)

// envTapKey keeps the TAP variable apart from the --tap-name flag. An explicit
// name outranks the tap config name, TAP does not.
const envTapKey = "env.tap"

// Settings are the resolved inputs of one run.
type Settings struct {
	KegRoot string
	TapPath string
	// TapName is the explicitly requested tap name, empty when not given.
	TapName string
	// EnvTap is the value of TAP.
	EnvTap   string
	Platform domain.Platform
	Verbose  bool
	JSON     bool
}

// RegisterFlags adds the settings flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagKeg, ".", "Keg root directory")
	flags.String(FlagTap, "", "Tap directory (defaults to <keg>/taps/<tap name>)")
	flags.String(FlagTapName, "", "Active tap name, overriding the tap config name")
	flags.String(FlagPlatform, string(domain.PlatformNative), "Target platform: web or native")
	flags.Bool(FlagLog, false, "Log resolution details")
	flags.Bool(FlagJSON, false, "Log as JSON")
}

// Load resolves Settings from flags, falling back to the environment.
func Load(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Settings{}, zerr.Wrap(err, "failed to bind flags")
	}
	for key, env := range map[string]string{
		envTapKey:    EnvTap,
		FlagPlatform: EnvPlatform,
		FlagLog:      EnvLog,
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Settings{}, zerr.Wrap(err, "failed to bind environment")
		}
	}

	kegRoot, err := filepath.Abs(v.GetString(FlagKeg))
	if err != nil {
		return Settings{}, zerr.With(zerr.Wrap(err, domain.ErrValidation.Error()), "keg", v.GetString(FlagKeg))
	}

	s := Settings{
		KegRoot:  kegRoot,
		TapName:  v.GetString(FlagTapName),
		EnvTap:   v.GetString(envTapKey),
		Platform: domain.ParsePlatform(v.GetString(FlagPlatform)),
		Verbose:  v.GetBool(FlagLog),
		JSON:     v.GetBool(FlagJSON),
	}

	s.TapPath, err = tapPath(kegRoot, v.GetString(FlagTap), s.requestedTap())
	if err != nil {
		return Settings{}, err
	}

	return s, nil
}

func (s Settings) requestedTap() string {
	if s.TapName != "" {
		return s.TapName
	}
	return s.EnvTap
}

func tapPath(kegRoot, flagValue, name string) (string, error) {
	switch {
	case flagValue != "":
		p, err := filepath.Abs(flagValue)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrValidation.Error()), "tap", flagValue)
		}
		return p, nil
	case name != "":
		return filepath.Join(kegRoot, domain.TapsDirName, name), nil
	default:
		return "", nil
	}
}
