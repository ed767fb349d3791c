package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/juev/tinvest/journal"
	"github.com/juev/tinvest/pkg/id"
)

func newJournalCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query the local order journal",
		Long: `Query order actions recorded by the orders commands.

Examples:
  tinvest journal list
  tinvest journal list --day 2024-01-15
  tinvest journal show 01HV7Z6Q5Y8J0T3M4N2B1C9D8E`,
	}

	var day, since, until string
	list := &cobra.Command{
		Use:   "list",
		Short: "List entries of one day or a time range (default: today)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := journalRange(day, since, until)
			if err != nil {
				return err
			}
			j, err := o.requireJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			recs, err := j.ListBetween(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("query journal: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ENTRY\tRECORDED\tACTION\tFIGI\tORDER\tOP\tSTATUS\tLOTS\tPRICE")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d/%d\t%g\n",
					r.EntryID, r.RecordedAt.Format(time.RFC3339), r.Action, r.FIGI, r.OrderID,
					r.Operation, r.Status, r.ExecutedLots, r.RequestedLots, r.Price)
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&day, "day", "", "YYYY-MM-DD in local time")
	list.Flags().StringVar(&since, "since", "", "range start, RFC 3339 or YYYY-MM-DD")
	list.Flags().StringVar(&until, "until", "", "range end, RFC 3339 or YYYY-MM-DD (default: now)")

	show := &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minted, err := id.Time(args[0])
			if err != nil {
				return fmt.Errorf("entry id %q: %w", args[0], err)
			}
			j, err := o.requireJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			rec, err := j.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, entryView{OrderAction: rec, Minted: minted})
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

// entryView adds the mint time carried by the ULID entry id.
type entryView struct {
	journal.OrderAction
	Minted time.Time
}

func (o *rootOptions) requireJournal() (*journal.SQLite, error) {
	j, err := o.openJournal()
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, fmt.Errorf("journal is disabled; set --journal-db")
	}
	return j, nil
}

func journalRange(day, since, until string) (time.Time, time.Time, error) {
	if since == "" && until == "" {
		return dayBounds(time.Local, day)
	}
	end := time.Now()
	if until != "" {
		t, err := parseTime(until)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t
	}
	var start time.Time
	if since != "" {
		t, err := parseTime(since)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	}
	return start, end, nil
}

// dayBounds returns [midnight, next midnight) of day, or of today when day
// is empty.
func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	if day == "" {
		day = time.Now().In(loc).Format("2006-01-02")
	}
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("date: %w", err)
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}
