// Command intervalfmt parses calendar interval literals and prints them in
// the interval output forms of the SQL layer.
//
//	intervalfmt render --format iso "1 year 2 days"
//	intervalfmt duration --unit second "3 hours 30 minutes"
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lagoonql/interval-toolbox-go/interval"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intervalfmt",
		Short: "Parse and render calendar interval literals",
		Long: `intervalfmt parses calendar interval literals such as "1 year 2 days" or
"interval -1.5 seconds" and renders them in the SQL standard, ISO 8601 or
multi unit output form, optionally justified first.`,
	}
	cmd.AddCommand(newRenderCommand())
	cmd.AddCommand(newDurationCommand())
	return cmd
}

type renderOptions struct {
	format  string
	justify string
	safe    bool
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:           "render [flags] LITERAL...",
		Short:         "Render interval literals in a chosen output form",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "sql", "output format (sql|iso|multi)")
	cmd.Flags().StringVar(&opts.justify, "justify", "none", "normalization before rendering (none|days|hours|interval)")
	cmd.Flags().BoolVar(&opts.safe, "safe", false, "print NULL for malformed literals instead of failing")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions, args []string) error {
	render, err := formatterFor(opts.format)
	if err != nil {
		return err
	}
	justify, err := justifierFor(opts.justify)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, arg := range args {
		var v interval.Value
		if opts.safe {
			var ok bool
			v, ok, err = interval.ParseSafe(arg)
			if err == nil && !ok {
				fmt.Fprintln(out, "NULL")
				continue
			}
		} else {
			v, err = interval.Parse(arg)
		}
		if err != nil {
			slog.Error("cannot parse interval literal", "literal", arg, "err", err)
			failed = true
			continue
		}
		v, err = justify(v)
		if err != nil {
			slog.Error("cannot justify interval", "literal", arg, "err", err)
			failed = true
			continue
		}
		fmt.Fprintln(out, render(v))
	}
	if failed {
		return fmt.Errorf("some literals could not be rendered")
	}
	return nil
}

func formatterFor(format string) (func(interval.Value) string, error) {
	switch format {
	case "sql":
		return interval.Value.SQLStandardString, nil
	case "iso":
		return interval.Value.ISO8601String, nil
	case "multi":
		return interval.Value.String, nil
	default:
		return nil, fmt.Errorf("invalid format %q: must be one of sql, iso or multi", format)
	}
}

func justifierFor(mode string) (func(interval.Value) (interval.Value, error), error) {
	switch mode {
	case "none":
		return func(v interval.Value) (interval.Value, error) { return v, nil }, nil
	case "days":
		return interval.Value.JustifyDays, nil
	case "hours":
		return interval.Value.JustifyHours, nil
	case "interval":
		return interval.Value.JustifyInterval, nil
	default:
		return nil, fmt.Errorf("invalid justify mode %q: must be one of none, days, hours or interval", mode)
	}
}

type durationOptions struct {
	unit         string
	daysPerMonth int32
}

func newDurationCommand() *cobra.Command {
	opts := &durationOptions{}
	cmd := &cobra.Command{
		Use:           "duration [flags] LITERAL...",
		Short:         "Estimate the elapsed time of interval literals",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDuration(cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.unit, "unit", "microsecond", "target unit, nanosecond through day")
	cmd.Flags().Int32Var(&opts.daysPerMonth, "days-per-month", interval.DefaultDaysPerMonth, "assumed length of a month in days")
	return cmd
}

func runDuration(cmd *cobra.Command, opts *durationOptions, args []string) error {
	unit, err := interval.ParseUnit(opts.unit)
	if err != nil {
		return fmt.Errorf("invalid unit %q", opts.unit)
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, arg := range args {
		v, err := interval.Parse(arg)
		if err != nil {
			slog.Error("cannot parse interval literal", "literal", arg, "err", err)
			failed = true
			continue
		}
		d, err := v.Duration(unit, opts.daysPerMonth)
		if err != nil {
			slog.Error("cannot estimate duration", "literal", arg, "err", err)
			failed = true
			continue
		}
		fmt.Fprintln(out, d)
	}
	if failed {
		return fmt.Errorf("some literals could not be estimated")
	}
	return nil
}
