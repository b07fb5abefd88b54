// Package cli implements the dtfmt command line tool
package cli

import (
	"context"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/davejbax/go-datetime"
	"github.com/spf13/cobra"
	"os"
)

// app carries state from flag parsing into the commands
type app struct {
	configPath string
	calOpts    []datetime.CalendarOption

	cfg      Config
	cfgUsed  string
	logger   *log.Logger
	calendar *datetime.Calendar
}

// NewRootCommand builds the dtfmt command tree. Calendar options are applied to the calendar every command uses.
func NewRootCommand(opts ...datetime.CalendarOption) *cobra.Command {
	a := &app{calOpts: opts}

	root := &cobra.Command{
		Use:   appName,
		Short: "Parse, convert and format dates and times",
		Long: `dtfmt parses dates and times in common notations or a given layout, converts them between
time zones, and formats them with token layouts such as "YYYY-MM-DD HH:mm".

Settings are read from $XDG_CONFIG_HOME/dtfmt/config.toml and DTFMT_* environment
variables, and can be overridden with flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/dtfmt/config.toml)")
	flags.StringP("timezone", "z", "", "IANA zone to read and display times in (default is the host's zone)")
	flags.StringP("format", "f", "", "output layout or catalog name")
	flags.StringP("input-format", "i", "", "layout that input must follow")
	flags.Bool("strict", false, "require input to match the input format exactly")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.nowCommand(),
		a.parseCommand(),
		a.convertCommand(),
		a.durationCommand(),
		a.recordCommand(),
		a.formatsCommand(),
		a.configCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, used, err := loadConfig(cmd, a.configPath)
	if err != nil {
		return err
	}
	a.cfg, a.cfgUsed = cfg, used

	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: appName, Level: level})
	a.logger.Debug("Loaded configuration", "path", used, "timezone", cfg.Timezone, "format", cfg.Format)

	opts := append([]datetime.CalendarOption{datetime.WithLogger(a.logger)}, a.calOpts...)
	a.calendar = datetime.NewCalendar(opts...)

	return nil
}

// Execute runs dtfmt with styled output and interrupt handling
func Execute(ctx context.Context, version string) error {
	return fang.Execute(
		ctx,
		NewRootCommand(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	)
}
