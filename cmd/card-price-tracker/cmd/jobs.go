package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-price-tracker/internal/engine"
	"github.com/donaldgifford/card-price-tracker/internal/pricecharting"
)

func importCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the reference price guide once",
		Long: "Downloads the PriceCharting CSV (or reads --file), stores it as today's snapshot,\n" +
			"and revalues every stored listing against it. The run is recorded in job history.",
		Example: `  card-price-tracker import
  card-price-tracker import --file ./price-guide.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var fetcher pricecharting.Fetcher
			if file != "" {
				fetcher = pricecharting.FileFetcher{Path: file}
			}
			return runOnce(cmd, engine.JobReferenceImport, fetcher)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read the price guide from a local CSV instead of the configured URL")
	return cmd
}

func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Run one eBay ingestion pass",
		Long: "Runs every configured search, stores single-card listings and values them against\n" +
			"the latest stored reference snapshot. The run is recorded in job history.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOnce(cmd, engine.JobIngestion, nil)
		},
	}
}

// runOnce runs one job through an unscheduled scheduler so it gets the same
// timeout and job_runs bookkeeping as a scheduled run.
func runOnce(cmd *cobra.Command, job string, fetcher pricecharting.Fetcher) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	eng, _, err := newEngine(cfg, st, fetcher, log)
	if err != nil {
		return err
	}
	if err := eng.LoadSnapshot(ctx); err != nil {
		return err
	}

	sched, err := engine.NewScheduler(eng, st, 0, 0, 0, log)
	if err != nil {
		return err
	}
	if err := sched.Trigger(ctx, job); err != nil {
		return fmt.Errorf("%s: %w", job, err)
	}
	return nil
}
