package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column names one price column of the reference table.
type Column string

// Reference price columns. Grade1..Grade9 hold PSA-equivalent values.
const (
	ColumnRaw           Column = "raw"
	ColumnGrade1        Column = "grade_1"
	ColumnGrade2        Column = "grade_2"
	ColumnGrade3        Column = "grade_3"
	ColumnGrade4        Column = "grade_4"
	ColumnGrade5        Column = "grade_5"
	ColumnGrade6        Column = "grade_6"
	ColumnGrade7        Column = "grade_7"
	ColumnGrade8        Column = "grade_8"
	ColumnGrade9        Column = "grade_9"
	ColumnGrade95       Column = "grade_9_5"
	ColumnPSA10         Column = "psa_10"
	ColumnBGS10         Column = "bgs_10"
	ColumnCGC10         Column = "cgc_10"
	ColumnCGC10Pristine Column = "cgc_10_pristine"
	ColumnSGC10         Column = "sgc_10"
)

// Columns returns every column in ladder order.
func Columns() []Column {
	return []Column{
		ColumnRaw,
		ColumnGrade1, ColumnGrade2, ColumnGrade3, ColumnGrade4, ColumnGrade5,
		ColumnGrade6, ColumnGrade7, ColumnGrade8, ColumnGrade9, ColumnGrade95,
		ColumnPSA10, ColumnBGS10, ColumnCGC10, ColumnCGC10Pristine, ColumnSGC10,
	}
}

// Valid reports whether c is one of Columns.
func (c Column) Valid() bool {
	for _, known := range Columns() {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable column name used in basis labels.
func (c Column) Label() string {
	switch c {
	case ColumnRaw:
		return "Raw"
	case ColumnGrade95:
		return "Grade 9.5"
	case ColumnPSA10:
		return "PSA 10"
	case ColumnBGS10:
		return "BGS 10"
	case ColumnCGC10:
		return "CGC 10"
	case ColumnCGC10Pristine:
		return "CGC 10 Pristine"
	case ColumnSGC10:
		return "SGC 10"
	}
	if t, ok := c.Tier(); ok {
		return "PSA " + t.String()
	}
	return string(c)
}

// Tier returns the grade a ladder column represents. Raw and the
// company-specific 10 columns other than PSA 10 are not on the ladder.
func (c Column) Tier() (Tier, bool) {
	switch c {
	case ColumnGrade1:
		return 2, true
	case ColumnGrade2:
		return 4, true
	case ColumnGrade3:
		return 6, true
	case ColumnGrade4:
		return 8, true
	case ColumnGrade5:
		return 10, true
	case ColumnGrade6:
		return 12, true
	case ColumnGrade7:
		return 14, true
	case ColumnGrade8:
		return 16, true
	case ColumnGrade9:
		return 18, true
	case ColumnGrade95:
		return 19, true
	case ColumnPSA10:
		return 20, true
	default:
		return 0, false
	}
}

// Ladder returns the PSA-equivalent columns ordered from grade 1 to PSA 10.
func Ladder() []Column {
	return []Column{
		ColumnGrade1, ColumnGrade2, ColumnGrade3, ColumnGrade4, ColumnGrade5,
		ColumnGrade6, ColumnGrade7, ColumnGrade8, ColumnGrade9, ColumnGrade95,
		ColumnPSA10,
	}
}

// LadderColumn returns the ladder column for a tier.
func LadderColumn(t Tier) (Column, bool) {
	for _, c := range Ladder() {
		if ct, _ := c.Tier(); ct == t {
			return c, true
		}
	}
	return "", false
}

// PriceReference is one row of the reference price table.
type PriceReference struct {
	ProductID   string                     `json:"product_id"`
	ProductName string                     `json:"product_name"`
	ConsoleName string                     `json:"console_name"`
	Genre       string                     `json:"genre,omitempty"`
	Prices      map[Column]decimal.Decimal `json:"prices"`
	SalesVolume *int                       `json:"sales_volume,omitempty"`
	ReleaseDate *time.Time                 `json:"release_date,omitempty"`
	ImportDate  time.Time                  `json:"import_date"`
}

// Price returns a column's value. Zero and missing values are both absent.
func (r *PriceReference) Price(c Column) (decimal.Decimal, bool) {
	if r == nil {
		return decimal.Zero, false
	}
	v, ok := r.Prices[c]
	if !ok || !v.IsPositive() {
		return decimal.Zero, false
	}
	return v, true
}

// Volume returns the sales volume, treating an absent value as zero.
func (r *PriceReference) Volume() int {
	if r == nil || r.SalesVolume == nil {
		return 0
	}
	return *r.SalesVolume
}

// MatchTier records which matching strategy produced a match.
type MatchTier int

// Match tiers, most to least specific.
const (
	MatchNone MatchTier = iota
	MatchNameNumberSet
	MatchNameNumber
	MatchNameSet
	MatchNameOnly
)

func (t MatchTier) String() string {
	switch t {
	case MatchNameNumberSet:
		return "name+number+set"
	case MatchNameNumber:
		return "name+number"
	case MatchNameSet:
		return "name+set"
	case MatchNameOnly:
		return "name"
	default:
		return "none"
	}
}

// MatchResult is the reference record chosen for a card and the tier that
// chose it. Reference is nil and Tier is MatchNone when nothing qualified.
type MatchResult struct {
	Reference *PriceReference `json:"reference,omitempty"`
	Tier      MatchTier       `json:"tier"`
}

// Matched reports whether a reference record was found.
func (m MatchResult) Matched() bool { return m.Reference != nil }
