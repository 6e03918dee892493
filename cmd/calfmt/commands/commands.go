package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"metargb/calendar-format/internal/filters"
	"metargb/calendar-format/internal/gregorian"
	"metargb/calendar-format/internal/ics"
	"metargb/calendar-format/internal/jalali"
	"metargb/calendar-format/internal/l10n"
	"metargb/calendar-format/internal/localization"
	"metargb/calendar-format/pkg/helpers"
)

// options are the persistent flags shared by every subcommand
type options struct {
	locale   string
	timezone string
	verbose  bool
}

func (o *options) location() (*time.Location, error) {
	if o.timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", o.timezone, err)
	}
	return loc, nil
}

func (o *options) filters(loc *time.Location) *filters.Formatter {
	return filters.New(l10n.NewCatalog(), gregorian.NewFormatter(), filters.WithClock(func() time.Time {
		return time.Now().In(loc)
	}))
}

// NewRootCommand builds the calfmt command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "calfmt",
		Short:         "Format calendar dates, views and alarms",
		Long:          "calfmt renders dates, date ranges, calendar view titles and alarm descriptions, using the Jalali calendar for Persian locales.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.locale, "locale", "fa-IR", "Locale to format in (fa-IR, en, de_DE, ...)")
	rootCmd.PersistentFlags().StringVar(&opts.timezone, "tz", "", "IANA timezone for input and output (default: local)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log skipped iCalendar components")

	rootCmd.AddCommand(
		newTokenCommand(opts),
		newViewCommand(opts),
		newDateCommand(opts),
		newAlarmsCommand(opts),
		newWeekCommand(opts),
	)
	return rootCmd
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDate accepts Unix milliseconds, RFC 3339 and ISO-like dates, in
// Latin or Persian digits
func parseDate(value string, loc *time.Location) (time.Time, error) {
	if helpers.HasPersianDigits(value) {
		value = helpers.NormalizePersianNumbers(value)
	}
	if ms, err := helpers.ParseInt(value); err == nil {
		t, ok := jalali.Instant(int64(ms))
		if !ok {
			return time.Time{}, fmt.Errorf("timestamp %q is out of range", value)
		}
		return t.In(loc), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", value)
}

func newTokenCommand(opts *options) *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "token TOKEN START [END]",
		Short: "Format a date or range with a display token (LT, LL, ddd l, ...)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			start, err := parseDate(args[1], loc)
			if err != nil {
				return err
			}
			arg := localization.RangeArg{Start: localization.MarkerPart(start), DefaultSeparator: separator}
			if len(args) == 3 {
				end, err := parseDate(args[2], loc)
				if err != nil {
					return err
				}
				endPart := localization.MarkerPart(end)
				arg.End = &endPart
			}

			d := localization.NewDispatcher(localization.StaticLocale(opts.locale), gregorian.NewFormatter(), localization.WithLocation(loc))
			fmt.Fprintln(cmd.OutOrStdout(), d.Format(args[0], arg))
			return nil
		},
	}
	cmd.Flags().StringVar(&separator, "separator", "", "Range separator (default \" – \")")
	return cmd
}

func newViewCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "view VIEW DATE",
		Short: "Render the title of a calendar view (timeGridDay, timeGridWeek, dayGridMonth, ...)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			date, err := parseDate(args[1], loc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.filters(loc).FormatView(date, filters.View(args[0]), opts.locale))
			return nil
		},
	}
}

func newDateCommand(opts *options) *cobra.Command {
	var allDay bool

	cmd := &cobra.Command{
		Use:   "date DATE",
		Short: "Render a single date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			date, err := parseDate(args[0], loc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.filters(loc).FormatDate(date, allDay, opts.locale))
			return nil
		},
	}
	cmd.Flags().BoolVar(&allDay, "all-day", false, "Omit the time of day")
	return cmd
}

func newAlarmsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "alarms FILE.ics",
		Short: "Describe every alarm in an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			body, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			if !opts.verbose {
				log.SetLevel(logrus.ErrorLevel)
			}

			events, err := ics.NewParser(log).ParseAlarms(body)
			if err != nil {
				return err
			}

			f := opts.filters(loc)
			out := cmd.OutOrStdout()
			for _, ev := range events {
				start := ev.Start
				if !ev.AllDay {
					start = start.In(loc)
				}
				fmt.Fprintf(out, "%s (%s)\n", displayName(ev), f.FormatDate(start, ev.AllDay, opts.locale))
				for _, alarm := range ev.Alarms {
					fmt.Fprintf(out, "  - %s\n", f.FormatAlarm(alarm, ev.AllDay, loc.String(), opts.locale))
				}
			}
			return nil
		},
	}
}

func displayName(ev ics.Event) string {
	if ev.Summary != "" {
		return ev.Summary
	}
	return ev.UID
}

func newWeekCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "week DATE",
		Short: "Print the Jalali, locale and ISO week numbers of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			date, err := parseDate(args[0], loc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if info, ok := jalali.WeekOf(date); ok {
				fmt.Fprintf(out, "jalali: week %d of %d\n", info.Week, info.Year)
			} else {
				fmt.Fprintln(out, "jalali: unavailable")
			}
			year, week := gregorian.LocaleWeek(date, opts.locale)
			fmt.Fprintf(out, "%s: week %d of %d\n", opts.locale, week, year)
			fmt.Fprintf(out, "iso: week %d of %d\n", gregorian.Week(date), gregorian.WeekYear(date))
			return nil
		},
	}
}
