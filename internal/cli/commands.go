package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/davejbax/go-datetime"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"strconv"
)

// nowLayout is used by the now command when no format is configured
const nowLayout = "YYYY-MM-DD HH:mm:ss"

// resolveLayout expands a catalog name to its layout. Anything else is taken to be a layout already.
func resolveLayout(layout string) string {
	if named, ok := datetime.LookupFormat(layout); ok {
		return named
	}

	return layout
}

func (a *app) outputLayout(fallback string) string {
	if a.cfg.Format == "" {
		return fallback
	}

	return resolveLayout(a.cfg.Format)
}

// read builds a value from command line input using the configured options
func (a *app) read(input string) (datetime.DateTime, error) {
	d := a.calendar.New(input, datetime.WithOptions(datetime.Options{
		InputFormat: resolveLayout(a.cfg.InputFormat),
		Timezone:    a.cfg.Timezone,
		Strict:      a.cfg.Strict,
	}))
	if !d.IsValid() {
		return d, fmt.Errorf("%q is not a valid date-time: %w", input, d.Err())
	}

	return d, nil
}

func (a *app) nowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.calendar.New(nil, datetime.WithTimezone(a.cfg.Timezone))
			if !d.IsValid() {
				return fmt.Errorf("failed to read the current time: %w", d.Err())
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), d.Format(a.outputLayout(nowLayout)))
			return err
		},
	}
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse INPUT",
		Short: "Parse a date-time and print it with its UTC instant",
		Example: `  dtfmt parse "2023-05-11 10:00"
  dtfmt parse 05/11/2023 --input-format USA --strict --timezone America/Chicago`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.read(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", d.Format(a.outputLayout("")), d.ISOString())
			return err
		},
	}
}

func (a *app) convertCommand() *cobra.Command {
	var to string
	var keepLocalTime bool

	cmd := &cobra.Command{
		Use:   "convert INPUT",
		Short: "Display a date-time in another time zone",
		Example: `  dtfmt convert "2023-05-11T10:00:00Z" --to Asia/Tokyo
  dtfmt convert "2023-05-11 10:00" --to Europe/Paris --keep-local-time`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.read(args[0])
			if err != nil {
				return err
			}

			converted := d.ConvertToZone(to, keepLocalTime)
			if !converted.IsValid() {
				return fmt.Errorf("failed to convert to %q: %w", to, converted.Err())
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), converted.Format(a.outputLayout("")))
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "IANA zone to convert to")
	cmd.Flags().BoolVar(&keepLocalTime, "keep-local-time", false, "keep the wall clock reading instead of the instant")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) durationCommand() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "duration VALUE",
		Short: "Format a length of time",
		Example: `  dtfmt duration 9000000
  dtfmt duration 36 --unit hours --format "D [days] HH:mm"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", args[0], err)
			}

			d := a.calendar.New(nil, datetime.WithTimezone("UTC")).Duration(value, datetime.NormalizeUnit(unit))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", d.Format(a.outputLayout(datetime.FormatHours)), d.ISOString())
			return err
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "ms", "unit of VALUE, e.g. ms, s, m, h, d, w, M or y")

	return cmd
}

func (a *app) recordCommand() *cobra.Command {
	var long, decode bool

	cmd := &cobra.Command{
		Use:   "record INPUT",
		Short: "Encode a date-time as an ECMA-119 binary timestamp, or decode one",
		Example: `  dtfmt record "2023-05-11 10:00" --long
  dtfmt record --decode 7b05020a0000f0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := datetime.RecordShort
			if long {
				format = datetime.RecordLong
			}

			if decode {
				raw, err := hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("record %q is not hexadecimal: %w", args[0], err)
				}

				d, err := a.calendar.ReadRecord(bytes.NewReader(raw), format)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Format(a.outputLayout("")))
				return err
			}

			d, err := a.read(args[0])
			if err != nil {
				return err
			}

			record, err := d.Record(format)
			if err != nil {
				return err
			}

			encoded, err := record.MarshalBinary()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(encoded))
			return err
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "use the 17-byte digit form instead of the 7-byte numerical form")
	cmd.Flags().BoolVar(&decode, "decode", false, "decode INPUT as a hexadecimal record")

	return cmd
}

func (a *app) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the named output layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			formats := datetime.Formats()

			width := 0
			for _, f := range formats {
				width = max(width, len(f.Name))
			}

			// Colour is only emitted when out is a terminal
			renderer := lipgloss.NewRenderer(out)
			nameStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Width(width + 2)
			layoutStyle := renderer.NewStyle().Foreground(lipgloss.Color("#6B7280"))

			for _, f := range formats {
				if _, err := fmt.Fprintln(out, nameStyle.Render(f.Name)+layoutStyle.Render(f.Layout)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect dtfmt's configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			encoded, err := toml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.cfgUsed != "" {
				fmt.Fprintf(out, "# %s\n", a.cfgUsed)
			}

			_, err = out.Write(encoded)
			return err
		},
	})

	return cmd
}
