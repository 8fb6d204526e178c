package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/eventui/internal/logger"
	"github.com/alexisbeaulieu97/eventui/internal/settings"
	"github.com/alexisbeaulieu97/eventui/internal/ui/components"
)

type rootFlags struct {
	verbose bool
	config  string
	theme   string
	width   int
}

// AppContext bundles what every command needs once flags and settings are
// resolved.
type AppContext struct {
	Settings settings.Settings
	Log      *logger.Logger
	Theme    components.Theme
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{Log: logger.Nop(), Theme: components.DefaultTheme()}

	cmd := &cobra.Command{
		Use:           "eventui",
		Short:         "eventui resolves and previews the events navigation components",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to a settings file (default $XDG_CONFIG_HOME/eventui/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Colour theme: light or dark")
	cmd.PersistentFlags().IntVar(&flags.width, "width", 0, "Render width in cells (default terminal width)")

	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newTabsCmd(app))
	cmd.AddCommand(newShowcaseCmd(app))
	cmd.AddCommand(newTokensCmd(app))
	cmd.AddCommand(newPlayCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load reads settings with flags taking precedence and builds the logger
// and theme.
func (a *AppContext) load(cmd *cobra.Command, flags *rootFlags) error {
	loader := settings.NewLoader(flags.config)
	persistent := cmd.Root().PersistentFlags()
	for _, name := range []string{"theme", "width"} {
		if err := loader.Viper().BindPFlag(name, persistent.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	s, err := loader.Load()
	if err != nil {
		return newCommandError("load settings", "reading configuration", err,
			"Check the config file and EVENTUI_* environment variables.")
	}
	if flags.verbose {
		s.Log.Level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         s.Log.Level,
		HumanReadable: s.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	theme, err := components.ThemeByName(s.Theme)
	if err != nil {
		return newCommandError("load settings", "selecting theme", err, "Use --theme light or --theme dark.")
	}

	a.Settings = s
	a.Theme = theme
	a.Log = log.Component("command." + cmd.Name())
	if used := loader.ConfigFileUsed(); used != "" {
		a.Log.WithFields(map[string]any{"path": used}).Debug("settings loaded")
	}
	return nil
}
