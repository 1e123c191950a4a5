package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/card-price-tracker/internal/config"
	"github.com/donaldgifford/card-price-tracker/internal/engine"
	"github.com/donaldgifford/card-price-tracker/internal/pricecharting"
	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
	"github.com/donaldgifford/card-price-tracker/pkg/valuation"
)

type valuateFlags struct {
	csv           string
	consoleFilter string
	title         string
	condition     string
	cardName      string
	setName       string
	number        string
	grader        string
	grade         string
	price         string
}

func valuateCmd() *cobra.Command {
	var f valuateFlags

	cmd := &cobra.Command{
		Use:   "valuate",
		Short: "Value one listing offline",
		Long: "Grades, identifies and prices a single listing. With --csv the reference table is\n" +
			"read from a local PriceCharting CSV and no database or config file is needed;\n" +
			"otherwise the latest stored snapshot is used.",
		Example: `  card-price-tracker valuate --csv guide.csv --title "PSA 9 Lugia 9/111 Neo Genesis Holo"
  card-price-tracker valuate --title "Lugia Neo Genesis" --number 9/111 --grader BGS --grade 9.5 --price 450`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValuate(cmd, &f)
		},
	}

	cmd.Flags().StringVar(&f.csv, "csv", "", "local PriceCharting CSV to match against")
	cmd.Flags().StringVar(&f.consoleFilter, "console-filter", "", "keep only CSV rows whose console contains this")
	cmd.Flags().StringVar(&f.title, "title", "", "listing title")
	cmd.Flags().StringVar(&f.condition, "condition", "", "marketplace condition (Graded, Ungraded, Near Mint or Better)")
	cmd.Flags().StringVar(&f.cardName, "card-name", "", "card name (parsed from the title when empty)")
	cmd.Flags().StringVar(&f.setName, "set", "", "set name (parsed from the title when empty)")
	cmd.Flags().StringVar(&f.number, "number", "", "card number (parsed from the title when empty)")
	cmd.Flags().StringVar(&f.grader, "grader", "", "grading company aspect (PSA, BGS, CGC, SGC)")
	cmd.Flags().StringVar(&f.grade, "grade", "", "grade aspect (e.g. 9, 9.5, 10)")
	cmd.Flags().StringVar(&f.price, "price", "", "asking price, to report the discount")
	cobra.CheckErr(cmd.MarkFlagRequired("title"))

	return cmd
}

type valuateResult struct {
	*domain.Valuation
	Discount *decimal.Decimal `json:"discount,omitempty"`
}

func runValuate(cmd *cobra.Command, f *valuateFlags) error {
	rec := &domain.ListingRecord{
		Title:      f.title,
		Condition:  f.condition,
		CardName:   f.cardName,
		SetName:    f.setName,
		CardNumber: f.number,
	}
	if f.grader != "" || f.grade != "" {
		graded := true
		rec.Variant = &domain.VariantAttributes{IsGraded: &graded, GradingCompany: f.grader, Grade: f.grade}
	}
	if f.price != "" {
		p, err := decimal.NewFromString(f.price)
		if err != nil {
			return fmt.Errorf("invalid --price: %w", err)
		}
		rec.Price = p
	}

	cfg, snap, err := valuationInputs(cmd, f)
	if err != nil {
		return err
	}

	cal := valuation.DefaultCalibration()
	if cfg != nil {
		if cal, err = cfg.Valuation.Calibration(); err != nil {
			return fmt.Errorf("valuation calibration: %w", err)
		}
	}
	r, err := valuation.NewResolver(cal)
	if err != nil {
		return err
	}

	v := engine.NewValuator(r).Valuate(rec, snap)
	out := valuateResult{Valuation: v}
	if f.price != "" && v.Resolution.Value.Valid {
		d := v.Resolution.Value.Decimal.Sub(rec.Price)
		out.Discount = &d
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// valuationInputs returns the config, when one is available, and the
// snapshot to match against.
func valuationInputs(cmd *cobra.Command, f *valuateFlags) (*config.Config, *matcher.Snapshot, error) {
	if f.csv == "" {
		cfg, log, err := loadConfig()
		if err != nil {
			return nil, nil, err
		}
		st, err := openStore(cmd.Context(), cfg, log)
		if err != nil {
			return nil, nil, err
		}
		defer st.Close()

		refs, err := st.LoadLatestReferences(cmd.Context())
		if err != nil {
			return nil, nil, fmt.Errorf("loading reference snapshot: %w", err)
		}
		if len(refs) == 0 {
			return cfg, nil, nil
		}
		return cfg, matcher.NewSnapshot(refs), nil
	}

	// A config file is optional offline; it only supplies calibration.
	var cfg *config.Config
	if _, err := os.Stat(viper.GetString("config")); err == nil {
		if cfg, _, err = loadConfig(); err != nil {
			return nil, nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, nil, err
	}

	file, err := os.Open(f.csv)
	if err != nil {
		return nil, nil, fmt.Errorf("opening price guide: %w", err)
	}
	defer file.Close()

	filter := f.consoleFilter
	if filter == "" && cfg != nil {
		filter = cfg.PriceCharting.ConsoleFilter
	}
	var opts []pricecharting.ParseOption
	if filter != "" {
		opts = append(opts, pricecharting.WithConsoleFilter(filter))
	}
	if cfg != nil {
		headers, err := cfg.PriceCharting.ColumnHeaders()
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, pricecharting.WithColumnHeaders(headers))
	}

	res, err := pricecharting.Parse(file, time.Now().UTC().Truncate(24*time.Hour), opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing price guide: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "loaded %d reference records (%d rows skipped)\n", len(res.References), res.Skipped)
	return cfg, matcher.NewSnapshot(res.References), nil
}
