package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func referenceCmd() *cobra.Command {
	refRoot := &cobra.Command{
		Use:     "reference",
		Aliases: []string{"ref"},
		Short:   "Inspect PriceCharting reference data",
		Long: "Look cards up in the loaded reference snapshot, check import status,\n" +
			"find cards worth tracking and show price trends.",
	}

	refRoot.AddCommand(
		referenceMatchCmd(),
		referenceStatusCmd(),
		referenceCandidatesCmd(),
		referenceTrendCmd(),
	)

	return refRoot
}

func referenceMatchCmd() *cobra.Command {
	var number, set string

	cmd := &cobra.Command{
		Use:   "match <card name>",
		Short: "Find the reference record for a card",
		Args:  cobra.ExactArgs(1),
		Example: `  cpt reference match Lugia --number 9/111 --set "Neo Genesis"
  cpt ref match "Dark Charizard" --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().MatchReference(cmd.Context(), args[0], number, set)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if !resp.Matched || resp.Reference == nil {
				fmt.Fprintf(out, "No reference record matches %q.\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "Matched on %s\n\n", resp.Tier)
			return printReference(out, resp.Reference)
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "card number")
	cmd.Flags().StringVar(&set, "set", "", "set name")

	return cmd
}

func referenceStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show reference snapshot status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newClient().ReferenceStatus(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, s)
			}

			tw := newTabWriter(out)
			tw.writef("Loaded:\t%v\n", s.Loaded)
			tw.writef("Loaded Import:\t%s (%d records)\n", dateOrDash(s.LoadedImportDate), s.LoadedRecords)
			tw.writef("Stored Import:\t%s (%d records)\n", dateOrDash(s.StoredImportDate), s.StoredRecords)
			return tw.finish()
		},
	}
}

func referenceCandidatesCmd() *cobra.Command {
	var (
		minVolume int
		minPSA10  string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "List high-volume cards worth tracking",
		Example: `  cpt reference candidates
  cpt reference candidates --min-volume 100 --min-psa10 250 --limit 25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().Candidates(cmd.Context(), minVolume, minPSA10, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Candidates) == 0 {
				fmt.Fprintln(out, "No candidates found.")
				return nil
			}
			fmt.Fprintf(out, "Showing %d of %d candidates\n\n", len(resp.Candidates), resp.Total)
			return printCandidatesTable(out, resp.Candidates)
		},
	}
	cmd.Flags().IntVar(&minVolume, "min-volume", 50, "minimum sales volume")
	cmd.Flags().StringVar(&minPSA10, "min-psa10", "50", "minimum PSA 10 price")
	cmd.Flags().IntVar(&limit, "limit", 100, "number of results")

	return cmd
}

func referenceTrendCmd() *cobra.Command {
	var (
		column string
		days   int
	)

	cmd := &cobra.Command{
		Use:   "trend <product id>",
		Short: "Show the price history of a reference record",
		Args:  cobra.ExactArgs(1),
		Example: `  cpt reference trend 1001
  cpt reference trend 1001 --column grade_9 --days 90`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newClient().Trend(cmd.Context(), args[0], column, days)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), t)
			}
			return printTrend(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().StringVar(&column, "column", "psa_10", "price column")
	cmd.Flags().IntVar(&days, "days", 30, "days of history")

	return cmd
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show eBay API quota usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().GetQuota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), q)
			}
			return printQuota(cmd.OutOrStdout(), q)
		},
	}
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}
