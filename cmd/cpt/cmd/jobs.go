package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/card-price-tracker/internal/api/client"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "View scheduler job history",
		Long: "View the execution history of scheduled jobs (ingestion, reference_import,\n" +
			"revaluation). Each job records status, rows affected and any errors.",
	}

	jobsRoot.AddCommand(
		jobsListCmd(),
		jobsHistoryCmd(),
	)

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List latest run per job",
		Example: `  cpt jobs list
  cpt jobs list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := newClient().ListJobs(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No job runs found.")
				return nil
			}
			return printJobRunsTable(out, runs)
		},
	}
}

func jobsHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <job_name>",
		Short: "Show run history for a job",
		Args:  cobra.ExactArgs(1),
		Example: `  cpt jobs history ingestion
  cpt jobs history reference_import --limit 5 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := newClient().GetJobHistory(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintf(out, "No runs found for job %q.\n", args[0])
				return nil
			}
			return printJobRunsTable(out, runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs")

	return cmd
}

func ingestCmd() *cobra.Command {
	return triggerCmd("ingest", "Trigger manual ingestion",
		"Runs the ingestion pipeline: searches eBay, grades, matches and values\n"+
			"every new listing. Blocks until the run finishes.",
		(*apiclient.Client).TriggerIngestion)
}

func importCmd() *cobra.Command {
	return triggerCmd("import", "Trigger a reference price import",
		"Downloads the PriceCharting price guide, stores it as today's snapshot\n"+
			"and revalues every stored listing against it.",
		(*apiclient.Client).TriggerReferenceImport)
}

func revalueCmd() *cobra.Command {
	return triggerCmd("revalue", "Revalue stored listings",
		"Recomputes the valuation of every stored listing against the loaded snapshot.",
		(*apiclient.Client).TriggerRevaluation)
}

func triggerCmd(
	use, short, long string,
	trigger func(*apiclient.Client, context.Context) (*apiclient.TriggerResponse, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := trigger(newClient(), cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Status)
			return nil
		},
	}
}
