package cmd

import (
	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/card-price-tracker/internal/api/client"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

func valuateCmd() *cobra.Command {
	var (
		req           apiclient.ValuateRequest
		grader, grade string
	)

	cmd := &cobra.Command{
		Use:   "valuate",
		Short: "Value a listing against the server's snapshot",
		Long: "Grades, identifies and prices a listing without storing it. Card name,\n" +
			"set and number are parsed from the title when not given.",
		Example: `  cpt valuate --title "PSA 9 Lugia 9/111 Neo Genesis Holo" --price 85 --shipping 5
  cpt valuate --title "Charizard Base Set" --grader CGC --grade 9.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if grader != "" || grade != "" {
				graded := true
				req.Variant = &domain.VariantAttributes{
					IsGraded:       &graded,
					GradingCompany: grader,
					Grade:          grade,
				}
			}

			resp, err := newClient().Valuate(cmd.Context(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printValuation(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "listing title")
	cmd.Flags().StringVar(&req.Condition, "condition", "", "marketplace condition")
	cmd.Flags().StringVar(&req.CardName, "card-name", "", "card name")
	cmd.Flags().StringVar(&req.SetName, "set", "", "set name")
	cmd.Flags().StringVar(&req.CardNumber, "number", "", "card number")
	cmd.Flags().StringVar(&grader, "grader", "", "grading company (PSA, BGS, CGC, SGC)")
	cmd.Flags().StringVar(&grade, "grade", "", "grade (e.g. 9, 9.5, 10)")
	cmd.Flags().StringVar(&req.Price, "price", "", "asking price")
	cmd.Flags().StringVar(&req.ShippingCost, "shipping", "", "shipping cost")
	cobra.CheckErr(cmd.MarkFlagRequired("title"))

	return cmd
}
