package pricecharting

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// priceColumns maps CSV headers to reference columns. For trading cards the
// guide reuses its video game headers: "loose" is ungraded, "cib" grade 7,
// "new" grade 8, "graded" grade 9, "box-only" grade 9.5 and "manual-only"
// PSA 10.
var priceColumns = map[string]domain.Column{
	"loose-price":        domain.ColumnRaw,
	"grade-1-price":      domain.ColumnGrade1,
	"grade-2-price":      domain.ColumnGrade2,
	"grade-3-price":      domain.ColumnGrade3,
	"grade-4-price":      domain.ColumnGrade4,
	"grade-5-price":      domain.ColumnGrade5,
	"grade-6-price":      domain.ColumnGrade6,
	"cib-price":          domain.ColumnGrade7,
	"new-price":          domain.ColumnGrade8,
	"graded-price":       domain.ColumnGrade9,
	"box-only-price":     domain.ColumnGrade95,
	"manual-only-price":  domain.ColumnPSA10,
	"bgs-10-price":       domain.ColumnBGS10,
	"condition-17-price": domain.ColumnCGC10,
	"condition-18-price": domain.ColumnSGC10,
}

const (
	headerID          = "id"
	headerConsole     = "console-name"
	headerProduct     = "product-name"
	headerGenre       = "genre"
	headerVolume      = "sales-volume"
	headerReleaseDate = "release-date"
)

// ErrMissingHeader is returned when the CSV lacks a required column.
var ErrMissingHeader = errors.New("missing required csv header")

var numberPattern = regexp.MustCompile(`\s*#(\d+(?:/\d+)?)\s*`)

// Result is the outcome of parsing one price guide.
type Result struct {
	References []domain.PriceReference
	// Skipped counts rows dropped for a missing id or name, or filtered out
	// by console.
	Skipped int
}

// ParseOption configures Parse.
type ParseOption func(*parser)

// WithConsoleFilter keeps only rows whose console name contains substr,
// compared case-insensitively.
func WithConsoleFilter(substr string) ParseOption {
	return func(p *parser) {
		p.console = strings.ToLower(substr)
	}
}

// WithColumnHeaders maps additional CSV headers to reference columns, for
// guides that carry columns the standard export lacks (a CGC 10 Pristine
// price, say). An entry for a standard header replaces its mapping.
func WithColumnHeaders(headers map[string]domain.Column) ParseOption {
	return func(p *parser) {
		for h, col := range headers {
			p.columns[h] = col
		}
	}
}

type parser struct {
	console string
	columns map[string]domain.Column
}

// Parse reads a price guide CSV. Every record is stamped with importDate.
// Malformed prices, volumes and dates are treated as absent rather than
// failing the import.
func Parse(r io.Reader, importDate time.Time, opts ...ParseOption) (*Result, error) {
	p := &parser{columns: make(map[string]domain.Column, len(priceColumns))}
	for h, col := range priceColumns {
		p.columns[h] = col
	}
	for _, opt := range opts {
		opt(p)
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, required := range []string{headerID, headerConsole, headerProduct} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, required)
		}
	}

	res := &Result{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv line %d: %w", line, err)
		}

		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		ref := domain.PriceReference{
			ProductID:   field(headerID),
			ProductName: field(headerProduct),
			ConsoleName: field(headerConsole),
			Genre:       field(headerGenre),
			Prices:      make(map[domain.Column]decimal.Decimal),
			ImportDate:  importDate,
		}
		if ref.ProductID == "" || ref.ProductName == "" {
			res.Skipped++
			continue
		}
		if p.console != "" && !strings.Contains(strings.ToLower(ref.ConsoleName), p.console) {
			res.Skipped++
			continue
		}

		for header, col := range p.columns {
			if v, ok := ParsePrice(field(header)); ok {
				ref.Prices[col] = v
			}
		}
		if v, err := strconv.Atoi(field(headerVolume)); err == nil {
			ref.SalesVolume = &v
		}
		if d, err := time.Parse(time.DateOnly, field(headerReleaseDate)); err == nil {
			ref.ReleaseDate = &d
		}

		res.References = append(res.References, ref)
	}
	return res, nil
}

// ParsePrice parses "$1,234.56". Empty, malformed and non-positive values
// are absent.
func ParsePrice(s string) (decimal.Decimal, bool) {
	s = strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil || !v.IsPositive() {
		return decimal.Zero, false
	}
	return v, true
}

// SplitProductName separates a product name such as "Lugia #9/111" into the
// card name and its number.
func SplitProductName(product string) (name, number string) {
	m := numberPattern.FindStringSubmatch(product)
	if m == nil {
		return strings.TrimSpace(product), ""
	}
	name = strings.Join(strings.Fields(numberPattern.ReplaceAllString(product, " ")), " ")
	return name, m[1]
}
