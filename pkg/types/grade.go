package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Company is a professional grading company.
type Company string

// Supported grading companies. CompanyNone marks a specific grade whose
// company is not known; it values like a PSA grade.
const (
	CompanyNone Company = ""
	CompanyPSA  Company = "PSA"
	CompanyBGS  Company = "BGS"
	CompanyCGC  Company = "CGC"
	CompanySGC  Company = "SGC"
)

// Tier is a numeric grade stored in half steps, so Tier(19) is 9.5.
type Tier uint8

// TierOf converts a whole or half grade to a Tier. The second return value
// is false when the grade is outside 1..10 or not a half step.
func TierOf(grade float64) (Tier, bool) {
	doubled := grade * 2
	if doubled != float64(int(doubled)) || doubled < 2 || doubled > 20 {
		return 0, false
	}
	return Tier(doubled), true
}

// ParseTier parses "9", "9.5" or "10".
func ParseTier(s string) (Tier, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return TierOf(f)
}

// Whole reports whether the tier has no half step.
func (t Tier) Whole() bool { return t%2 == 0 }

// Float returns the tier as a grade number.
func (t Tier) Float() float64 { return float64(t) / 2 }

func (t Tier) String() string {
	if t.Whole() {
		return strconv.Itoa(int(t / 2))
	}
	return fmt.Sprintf("%d.5", t/2)
}

// GradeKind distinguishes the three grade shapes.
type GradeKind uint8

// Grade kinds. GradeUnknown is the zero value: graded, number not known.
const (
	GradeUnknown GradeKind = iota
	GradeRaw
	GradeSpecific
)

// Grade is the structured condition tier of a card.
type Grade struct {
	Kind     GradeKind
	Company  Company
	Tier     Tier
	Pristine bool
}

// Convenience constructors.
var (
	UnknownGrade = Grade{Kind: GradeUnknown}
	RawGrade     = Grade{Kind: GradeRaw}
)

// SpecificGrade returns a numeric grade from the given company.
func SpecificGrade(c Company, t Tier) Grade {
	return Grade{Kind: GradeSpecific, Company: c, Tier: t}
}

// PristineGrade returns a company's "Pristine 10".
func PristineGrade(c Company) Grade {
	return Grade{Kind: GradeSpecific, Company: c, Tier: 20, Pristine: true}
}

// IsGraded reports whether the grade represents a slabbed card.
func (g Grade) IsGraded() bool { return g.Kind != GradeRaw }

// String renders the canonical label: "PSA 9", "CGC 10 Pristine",
// "Grade 8.5", "Raw" or "Unknown".
func (g Grade) String() string {
	switch g.Kind {
	case GradeRaw:
		return "Raw"
	case GradeSpecific:
		prefix := string(g.Company)
		if prefix == "" {
			prefix = "Grade"
		}
		label := prefix + " " + g.Tier.String()
		if g.Pristine {
			label += " Pristine"
		}
		return label
	default:
		return "Unknown"
	}
}

// Compact renders the grade without spaces for use in identity keys.
func (g Grade) Compact() string {
	return strings.ReplaceAll(strings.ToUpper(g.String()), " ", "")
}

// MarshalText implements encoding.TextMarshaler.
func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Grade) UnmarshalText(b []byte) error {
	parsed, err := ParseGradeLabel(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGradeLabel is the inverse of Grade.String. The last field is the
// number, optionally followed by "Pristine"; everything before it is the
// company, which need not be one of the supported ones.
func ParseGradeLabel(label string) (Grade, error) {
	label = strings.TrimSpace(label)
	switch label {
	case "Raw":
		return RawGrade, nil
	case "Unknown", "":
		return UnknownGrade, nil
	}

	fields := strings.Fields(label)
	pristine := false
	if n := len(fields); n > 0 && fields[n-1] == "Pristine" {
		pristine = true
		fields = fields[:n-1]
	}
	if len(fields) < 2 {
		return Grade{}, fmt.Errorf("invalid grade label %q", label)
	}

	tier, ok := ParseTier(fields[len(fields)-1])
	if !ok {
		return Grade{}, fmt.Errorf("invalid grade number in %q", label)
	}

	company := Company(strings.Join(fields[:len(fields)-1], " "))
	if company == "Grade" {
		company = CompanyNone
	}

	g := SpecificGrade(company, tier)
	g.Pristine = pristine
	return g, nil
}

// Condition is the qualitative state of an ungraded card.
type Condition string

// Condition categories, best to worst. ConditionNone means absent.
const (
	ConditionNone         Condition = ""
	ConditionGemMint      Condition = "Gem Mint"
	ConditionNearMint     Condition = "Near Mint"
	ConditionExcellent    Condition = "Excellent"
	ConditionVeryGood     Condition = "Very Good"
	ConditionGood         Condition = "Good"
	ConditionLightPlay    Condition = "Light Play"
	ConditionModeratePlay Condition = "Moderate Play"
	ConditionHeavyPlay    Condition = "Heavy Play"
	ConditionDamaged      Condition = "Damaged"
)

// Conditions lists every category from best to worst.
func Conditions() []Condition {
	return []Condition{
		ConditionGemMint, ConditionNearMint, ConditionExcellent,
		ConditionVeryGood, ConditionGood, ConditionLightPlay,
		ConditionModeratePlay, ConditionHeavyPlay, ConditionDamaged,
	}
}

// Valid reports whether c is one of the known categories.
func (c Condition) Valid() bool {
	for _, known := range Conditions() {
		if c == known {
			return true
		}
	}
	return false
}

// ComparableGrade returns the approximate professional-grade range a raw
// card in this condition corresponds to.
func (c Condition) ComparableGrade() string {
	switch c {
	case ConditionGemMint:
		return "9-10"
	case ConditionNearMint:
		return "8-9"
	case ConditionExcellent:
		return "6-7"
	case ConditionVeryGood:
		return "5"
	case ConditionGood:
		return "3-4"
	case ConditionLightPlay:
		return "4-5"
	case ConditionModeratePlay:
		return "2-3"
	case ConditionHeavyPlay:
		return "1-2"
	case ConditionDamaged:
		return "below 1"
	default:
		return ""
	}
}

// GradeResult is the outcome of grade extraction for one listing.
type GradeResult struct {
	Grade     Grade     `json:"grade"`
	Condition Condition `json:"condition,omitempty"`
	IsGraded  bool      `json:"is_graded"`
}
