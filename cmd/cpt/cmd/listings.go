package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/card-price-tracker/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Query valued listings",
		Long: "Query and inspect listings that have been ingested, graded, matched\n" +
			"to a reference record and valued.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		params apiclient.ListListingsParams
		graded string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Long: "List valued listings with optional filters for identity key, grade,\n" +
			"match tier and minimum market value.",
		Example: `  # List all listings
  cpt listings list

  # PSA 10 copies matched on name, number and set
  cpt listings list --grade "PSA 10" --match-tier name+number+set

  # Best discounts first
  cpt listings list --order-by discount --min-value 100 --limit 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if graded != "" {
				b, err := strconv.ParseBool(graded)
				if err != nil {
					return fmt.Errorf("invalid --graded %q: %w", graded, err)
				}
				params.Graded = &b
			}

			resp, err := newClient().ListListings(cmd.Context(), &params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Fprintln(out, "No listings found.")
				return nil
			}

			fmt.Fprintf(out, "Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(out, resp.Listings)
		},
	}
	cmd.Flags().StringVar(&params.IdentityKey, "identity-key", "", "identity key filter")
	cmd.Flags().StringVar(&params.Grade, "grade", "", `grade filter (e.g. "PSA 10", "Raw")`)
	cmd.Flags().StringVar(&graded, "graded", "", "graded filter (true, false)")
	cmd.Flags().StringVar(&params.MatchTier, "match-tier", "", "match tier filter")
	cmd.Flags().StringVar(&params.MinValue, "min-value", "", "minimum market value")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&params.OrderBy, "order-by", "", "sort order (market_value, price, discount, first_seen_at)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show listing details",
		Example: `  cpt listings get 3f0c2a9e-5d1b-4c55-9a63-1b2f7e1d0c44`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newClient().GetListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), l)
			}

			return printListingDetail(cmd.OutOrStdout(), l)
		},
	}
}
