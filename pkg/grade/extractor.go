// Package grade classifies listing text and structured attributes into a
// professional grade or a raw-card wear condition.
package grade

import (
	"strings"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// Extract derives a GradeResult from a listing title, the marketplace's
// structured condition string and its variant attributes (which may be nil).
//
// The title is scanned against the grade table first. Structured grader and
// grade values override what the title says, and only an explicit "not
// graded" attribute discards title grades. A graded signal with no
// resolvable grade yields domain.UnknownGrade. Cards that are not graded come
// back as domain.RawGrade with the best wear condition found, if any; a raw
// synonym in the title ends the title scan, so only structured sources can
// still supply a condition.
func Extract(title, condition string, attrs *domain.VariantAttributes) domain.GradeResult {
	var a domain.VariantAttributes
	if attrs != nil {
		a = *attrs
	}

	if a.IsGraded != nil && !*a.IsGraded {
		return domain.GradeResult{
			Grade:     domain.RawGrade,
			Condition: MatchCondition(title, condition, a.DetailedCondition),
		}
	}

	g, found := MatchGrade(title)
	graded, _ := GradedStatus(condition)
	if a.IsGraded != nil {
		graded = true
	}

	company := NormalizeCompany(a.GradingCompany)
	tier, pristine, tierOK := ParseGrade(a.Grade)

	switch {
	case tierOK:
		if company == domain.CompanyNone && found && g.Kind == domain.GradeSpecific {
			company = g.Company
		}
		g = domain.SpecificGrade(company, tier)
		g.Pristine = pristine && company == domain.CompanyCGC
		found = true
	case company != domain.CompanyNone && found && g.Kind == domain.GradeSpecific:
		g.Company = company
		g.Pristine = g.Pristine && company == domain.CompanyCGC
	}

	if company != domain.CompanyNone || tierOK {
		graded = true
	}

	switch {
	case found && g.Kind == domain.GradeSpecific:
		return domain.GradeResult{Grade: g, IsGraded: true}
	case graded:
		return domain.GradeResult{
			Grade:     domain.UnknownGrade,
			Condition: MatchCondition(title, condition, a.DetailedCondition),
			IsGraded:  true,
		}
	case found:
		return domain.GradeResult{
			Grade:     domain.RawGrade,
			Condition: MatchCondition("", condition, a.DetailedCondition),
		}
	default:
		return domain.GradeResult{
			Grade:     domain.RawGrade,
			Condition: MatchCondition(title, condition, a.DetailedCondition),
		}
	}
}

// MatchGrade scans a title against the grade table. found is false when no
// grade or raw synonym appears.
func MatchGrade(title string) (g domain.Grade, found bool) {
	norm := normalize(title)
	if norm == "" {
		return domain.Grade{}, false
	}
	for _, rule := range gradeTable {
		if anyMatch(rule.patterns, norm) {
			return rule.grade, true
		}
	}
	return domain.Grade{}, false
}

// MatchCondition scans the title, then each structured source in order,
// against the condition table. It returns domain.ConditionNone when nothing
// matches.
func MatchCondition(title string, structured ...string) domain.Condition {
	if c := matchConditionIn(normalize(title), false); c != domain.ConditionNone {
		return c
	}
	for _, s := range structured {
		if c := matchConditionIn(normalize(s), true); c != domain.ConditionNone {
			return c
		}
	}
	return domain.ConditionNone
}

func matchConditionIn(norm string, structured bool) domain.Condition {
	if norm == "" {
		return domain.ConditionNone
	}
	for _, rule := range conditionTable {
		if anyMatch(rule.exclude, norm) {
			continue
		}
		if anyMatch(rule.patterns, norm) || (structured && anyMatch(rule.structured, norm)) {
			return rule.condition
		}
	}
	return domain.ConditionNone
}

// normalize upper-cases and collapses whitespace.
func normalize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
