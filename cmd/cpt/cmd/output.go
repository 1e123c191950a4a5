package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	apiclient "github.com/donaldgifford/card-price-tracker/internal/api/client"
	"github.com/donaldgifford/card-price-tracker/internal/pricecharting"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func nullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return money(d.Decimal)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tPRICE\tGRADE\tTIER\tMARKET VALUE\tBASIS\n")
	for i := range listings {
		l := &listings[i]
		grade, tier, value, basis := "-", "-", "-", "-"
		if v := l.Valuation; v != nil {
			grade = v.Grade.Grade.String()
			tier = v.MatchTier.String()
			value = nullMoney(v.Resolution.Value)
			basis = orDash(v.Resolution.Label)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			truncate(l.Title, 40),
			money(l.Price),
			grade,
			tier,
			value,
			basis,
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, l *domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("eBay ID:\t%s\n", l.ItemID)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("Price:\t%s %s\n", money(l.Price), l.Currency)
	tw.writef("Shipping:\t%s\n", nullMoney(l.ShippingCost))
	tw.writef("Seller:\t%s (%.1f%%)\n", orDash(l.SellerName), l.SellerFeedbackPct)
	tw.writef("Card:\t%s / %s / %s\n", orDash(l.CardName), orDash(l.SetName), orDash(l.CardNumber))
	if v := l.Valuation; v != nil {
		writeValuation(tw, v)
	}
	if l.ValuedAt != nil {
		tw.writef("Valued At:\t%s\n", l.ValuedAt.Format(timeLayout))
	}
	tw.writef("First Seen:\t%s\n", l.FirstSeenAt.Format(timeLayout))
	tw.writef("URL:\t%s\n", orDash(l.ItemURL))
	return tw.finish()
}

func writeValuation(tw *tabWriter, v *domain.Valuation) {
	tw.writef("Grade:\t%s\n", v.Grade.Grade)
	if v.Grade.Condition != "" {
		tw.writef("Condition:\t%s\n", v.Grade.Condition)
	}
	tw.writef("Identity Key:\t%s\n", orDash(v.IdentityKey))
	tw.writef("Match Tier:\t%s\n", v.MatchTier)
	if v.ReferenceProductID != "" {
		tw.writef("Reference:\t%s (%s)\n", v.ReferenceProductName, v.ReferenceProductID)
	}
	tw.writef("Market Value:\t%s\n", nullMoney(v.Resolution.Value))
	tw.writef("Basis:\t%s\n", orDash(v.Resolution.Label))
	if v.SnapshotDate != nil {
		tw.writef("Snapshot:\t%s\n", v.SnapshotDate.Format(time.DateOnly))
	}
}

func printValuation(w io.Writer, v *apiclient.ValuateResponse) error {
	tw := newTabWriter(w)
	writeValuation(tw, &v.Valuation)
	if v.TotalCost != nil {
		tw.writef("Total Cost:\t%s\n", money(*v.TotalCost))
	}
	if v.Discount != nil {
		tw.writef("Discount:\t%s\n", money(*v.Discount))
	}
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeLayout)
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printReference(w io.Writer, ref *domain.PriceReference) error {
	tw := newTabWriter(w)
	tw.writef("Product ID:\t%s\n", ref.ProductID)
	tw.writef("Name:\t%s\n", ref.ProductName)
	tw.writef("Set:\t%s\n", ref.ConsoleName)
	if ref.SalesVolume != nil {
		tw.writef("Sales Volume:\t%d\n", *ref.SalesVolume)
	}
	tw.writef("Imported:\t%s\n", ref.ImportDate.Format(time.DateOnly))
	for _, col := range domain.Columns() {
		if p, ok := ref.Price(col); ok {
			tw.writef("%s:\t%s\n", col.Label(), money(p))
		}
	}
	return tw.finish()
}

func printCandidatesTable(w io.Writer, cands []pricecharting.Candidate) error {
	tw := newTabWriter(w)
	tw.writef("PRODUCT ID\tCARD\tNUMBER\tSET\tPSA 10\tPSA 9\tRAW\tVOLUME\n")
	for i := range cands {
		c := &cands[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			c.ProductID,
			truncate(c.CardName, 30),
			orDash(c.CardNumber),
			truncate(c.SetName, 30),
			money(c.PSA10),
			money(c.PSA9),
			money(c.Raw),
			c.SalesVolume,
		)
	}
	return tw.finish()
}

func printTrend(w io.Writer, t *pricecharting.Trend) error {
	tw := newTabWriter(w)
	tw.writef("Product ID:\t%s\n", t.ProductID)
	tw.writef("Column:\t%s\n", t.Column)
	if t.Latest != nil {
		tw.writef("Latest:\t%s (%s)\n", money(t.Latest.Price), t.Latest.Date.Format(time.DateOnly))
	}
	writeChange(tw, "7d", t.Change7d)
	writeChange(tw, "30d", t.Change30d)
	tw.writef("\nDATE\tPRICE\n")
	for _, p := range t.Points {
		tw.writef("%s\t%s\n", p.Date.Format(time.DateOnly), money(p.Price))
	}
	return tw.finish()
}

func writeChange(tw *tabWriter, label string, c *pricecharting.Change) {
	if c == nil {
		tw.writef("Change %s:\t-\n", label)
		return
	}
	sign := ""
	if c.Delta.IsPositive() {
		sign = "+"
	}
	tw.writef("Change %s:\t%s%s (%s%s%%)\n", label, sign, money(c.Delta), sign, c.Percent.StringFixed(2))
}

func printQuota(w io.Writer, q *apiclient.Quota) error {
	tw := newTabWriter(w)
	tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
	tw.writef("Used:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	if q.ResetAt != nil {
		tw.writef("Resets At:\t%s\n", q.ResetAt.Format(time.RFC3339))
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
