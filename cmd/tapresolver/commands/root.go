// Package commands implements the CLI commands for tapresolver.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tapresolver/internal/adapters/settings"
	"go.trai.ch/tapresolver/internal/app"
	"go.trai.ch/tapresolver/internal/build"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/core/ports"
	"go.trai.ch/tapresolver/internal/engine/resolver"
)

// CLI represents the command line interface for tapresolver.
type CLI struct {
	app      Application
	logger   ports.Logger
	settings settings.Settings
	rootCmd  *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Setup(ctx context.Context, opts app.Options) (resolver.ModuleResolverConfig, error)
	Resolve(ctx context.Context, opts app.Options, references []string) ([]app.Resolution, error)
	ResolveImports(ctx context.Context, opts app.Options, currentFile string, sources []string) ([]app.Resolution, error)
	Aliases(ctx context.Context, opts app.Options) (domain.AliasSet, error)
	Assets(ctx context.Context, opts app.Options) (map[string]string, error)
	Watch(ctx context.Context, opts app.Options, emit func(resolver.ModuleResolverConfig)) error
}

// logControl is implemented by loggers whose level and format can change after creation.
type logControl interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tapresolver",
		Short:         "Resolve tap and keg aliases and content paths for bundlers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	settings.RegisterFlags(rootCmd.PersistentFlags())

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return c.loadSettings(cmd)
	}

	rootCmd.AddCommand(c.newSetupCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newAliasesCmd())
	rootCmd.AddCommand(c.newAssetsCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) loadSettings(cmd *cobra.Command) error {
	s, err := settings.Load(cmd.Flags())
	if err != nil {
		return err
	}
	c.settings = s

	if lc, ok := c.logger.(logControl); ok {
		lc.SetJSON(s.JSON)
		lc.SetVerbose(s.Verbose)
	}
	return nil
}

func (c *CLI) options() app.Options {
	return app.Options{
		KegRoot:  c.settings.KegRoot,
		TapPath:  c.settings.TapPath,
		TapName:  c.settings.TapName,
		EnvTap:   c.settings.EnvTap,
		Platform: c.settings.Platform,
	}
}
