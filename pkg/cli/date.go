package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/getfairy/fairy/pkg/cli/internal/output"
)

var (
	dateCount  int
	datePast   int
	dateFuture int
	dateFrom   string
	dateTo     string
	dateFormat string
)

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Generate random dates",
	Long: `Generate random instants. Without flags the instant falls in the past
five years. Bounds accept RFC 3339 timestamps or plain dates.

Examples:
  # Sometime in the past five years
  fairy date

  # Within the next two years
  fairy date --future 2

  # Between two bounds
  fairy date --from 2020-01-01 --to 2020-12-31

  # Unix timestamps
  fairy date -n 5 --format unix`,
	RunE: runDate,
}

func init() {
	rootCmd.AddCommand(dateCmd)
	dateCmd.Flags().IntVarP(&dateCount, "count", "n", 1, "Number of dates to generate")
	dateCmd.Flags().IntVar(&datePast, "past", 0, "Draw from the past N years")
	dateCmd.Flags().IntVar(&dateFuture, "future", 0, "Draw from the next N years")
	dateCmd.Flags().StringVar(&dateFrom, "from", "", "Lower bound (RFC 3339 or YYYY-MM-DD)")
	dateCmd.Flags().StringVar(&dateTo, "to", "", "Upper bound (RFC 3339 or YYYY-MM-DD)")
	dateCmd.Flags().StringVar(&dateFormat, "format", time.RFC3339, "Output layout in Go time format, or \"unix\"")
}

func runDate(cmd *cobra.Command, args []string) error {
	if dateCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", dateCount)
	}
	rangeSet := dateFrom != "" || dateTo != ""
	if rangeSet && (dateFrom == "" || dateTo == "") {
		return fmt.Errorf("--from and --to must be given together")
	}
	if datePast > 0 && dateFuture > 0 || rangeSet && (datePast > 0 || dateFuture > 0) {
		return fmt.Errorf("pick one of --past, --future or --from/--to")
	}

	f, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	dates := f.Dates()

	draw := func() (time.Time, error) { return dates.InPast(5) }
	switch {
	case rangeSet:
		from, err := parseBound(dateFrom)
		if err != nil {
			return err
		}
		to, err := parseBound(dateTo)
		if err != nil {
			return err
		}
		draw = func() (time.Time, error) { return dates.Between(from, to) }
	case datePast > 0:
		draw = func() (time.Time, error) { return dates.InPast(datePast) }
	case dateFuture > 0:
		draw = func() (time.Time, error) { return dates.InFuture(dateFuture) }
	}

	formatted := make([]string, 0, dateCount)
	for i := 0; i < dateCount; i++ {
		t, err := draw()
		if err != nil {
			return err
		}
		if dateFormat == "unix" {
			formatted = append(formatted, fmt.Sprintf("%d", t.Unix()))
		} else {
			formatted = append(formatted, t.Format(dateFormat))
		}
	}

	if jsonOutput {
		return output.Collection(formatted)
	}
	output.Lines(formatted...)
	return nil
}

// parseBound accepts an RFC 3339 timestamp or a bare date.
func parseBound(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}
