package grade

import (
	"regexp"
	"strings"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// companyNames maps substrings of marketplace grader names to short codes.
// Entries are checked in order.
var companyNames = []struct {
	contains string
	company  domain.Company
}{
	{"PROFESSIONAL SPORTS AUTHENTICATOR", domain.CompanyPSA},
	{"PSA", domain.CompanyPSA},
	{"CERTIFIED GUARANTY", domain.CompanyCGC},
	{"CGC", domain.CompanyCGC},
	{"BECKETT", domain.CompanyBGS},
	{"BGS", domain.CompanyBGS},
	{"SPORTSCARD GUARANTY", domain.CompanySGC},
	{"SGC", domain.CompanySGC},
}

// NormalizeCompany maps a grader name to PSA, CGC, BGS or SGC by substring
// containment. Unrecognized names are returned trimmed but otherwise
// unchanged.
func NormalizeCompany(name string) domain.Company {
	trimmed := strings.TrimSpace(name)
	upper := strings.ToUpper(trimmed)
	for _, n := range companyNames {
		if strings.Contains(upper, n.contains) {
			return n.company
		}
	}
	return domain.Company(trimmed)
}

// Supported reports whether c is one of the four known graders.
func Supported(c domain.Company) bool {
	switch c {
	case domain.CompanyPSA, domain.CompanyBGS, domain.CompanyCGC, domain.CompanySGC:
		return true
	default:
		return false
	}
}

var gradeNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseGrade reads a structured grade value such as "9", "9.5", "10.0" or
// "Gem Mint 10". The second return value reports a "Pristine" qualifier.
func ParseGrade(value string) (tier domain.Tier, pristine, ok bool) {
	upper := strings.ToUpper(value)
	num := gradeNumber.FindString(upper)
	if num == "" {
		return 0, false, false
	}
	tier, ok = domain.ParseTier(num)
	if !ok {
		return 0, false, false
	}
	return tier, tier == 20 && strings.Contains(upper, "PRISTINE"), true
}

// ungradedStatuses and gradedStatuses are structured condition values that
// state the grading status outright, in the languages the marketplace uses.
var (
	ungradedStatuses = []string{
		"UNGRADED", "NOT GRADED", "NICHT BEWERTET", "NON GRADATA",
		"NON VALUTATA", "SIN CLASIFICAR", "NO CLASIFICADA", "NON GRADÉE",
	}
	gradedStatuses = []string{
		"GRADED", "BEWERTET", "GRADATA", "VALUTATA", "CLASIFICADA", "GRADÉE",
	}
)

// GradedStatus interprets a structured condition string. known is false
// when the string says nothing about grading.
func GradedStatus(condition string) (graded, known bool) {
	norm := strings.ToUpper(strings.Join(strings.Fields(condition), " "))
	if norm == "" {
		return false, false
	}
	for _, s := range ungradedStatuses {
		if norm == s {
			return false, true
		}
	}
	for _, s := range gradedStatuses {
		if norm == s {
			return true, true
		}
	}
	return false, false
}
