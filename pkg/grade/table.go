package grade

import (
	"regexp"

	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// tierEnd rejects a following digit or ".5" so that "PSA 1" never matches
// "PSA 10" and "BGS 9" never matches "BGS 9.5".
const tierEnd = `(?:$|[^\d.]|\.(?:$|\D))`

// gradeRule maps one grade label to the patterns that produce it.
type gradeRule struct {
	grade    domain.Grade
	patterns []*regexp.Regexp
}

// conditionRule maps one wear condition to its patterns. Structured
// patterns are only applied to marketplace condition fields, never to
// titles, where short tokens like "EX" and "HP" are part of card names.
type conditionRule struct {
	condition  domain.Condition
	patterns   []*regexp.Regexp
	structured []*regexp.Regexp
	exclude    []*regexp.Regexp
}

// companyAliases lists the title spellings of each grader, in the order
// rules are generated within a tier.
var companyAliases = []struct {
	company domain.Company
	aliases string
}{
	{domain.CompanyPSA, `PSA`},
	{domain.CompanyBGS, `(?:BGS|BECKETT)`},
	{domain.CompanyCGC, `CGC`},
	{domain.CompanySGC, `SGC`},
}

// tierSynonyms are grader-specific words that stand for a numeric tier.
var tierSynonyms = map[domain.Company]map[domain.Tier][]string{
	domain.CompanyCGC: {
		19: {`\bCGC[\s-]*GEM[\s-]*MINT\b`},
		18: {`\bCGC[\s-]*MINT\b`},
	},
}

// gradeTable is evaluated top to bottom; the first hit wins.
var gradeTable = buildGradeTable()

func buildGradeTable() []gradeRule {
	table := []gradeRule{
		{domain.PristineGrade(domain.CompanyCGC), compile(
			`\bCGC[\s-]*10[\s-]*PRISTINE\b`,
			`\bCGC[\s-]*PRISTINE[\s-]*10\b`,
		)},
		{domain.SpecificGrade(domain.CompanyPSA, 20), compile(
			tierPattern(`PSA`, 20),
			`\bPSA[\s-]*GEM[\s-]*(?:MT|MINT)\b`,
		)},
		{domain.SpecificGrade(domain.CompanyBGS, 20), compile(
			tierPattern(`(?:BGS|BECKETT)`, 20),
			`\bBLACK[\s-]*LABEL\b`,
		)},
		{domain.SpecificGrade(domain.CompanyCGC, 20), compile(
			tierPattern(`CGC`, 20),
			`\bCGC[\s-]*PERFECT\b`,
		)},
		{domain.SpecificGrade(domain.CompanySGC, 20), compile(
			tierPattern(`SGC`, 20),
		)},
	}

	for tier := domain.Tier(19); tier >= 2; tier-- {
		for _, c := range companyAliases {
			patterns := []string{tierPattern(c.aliases, tier)}
			patterns = append(patterns, tierSynonyms[c.company][tier]...)
			table = append(table, gradeRule{
				grade:    domain.SpecificGrade(c.company, tier),
				patterns: compile(patterns...),
			})
		}
	}

	return append(table, gradeRule{domain.RawGrade, compile(
		`\bRAW\b`,
		`\bUNGRADED\b`,
		`\bNOT[\s-]*GRADED\b`,
		`\bNEVER[\s-]*GRADED\b`,
	)})
}

func tierPattern(company string, t domain.Tier) string {
	num := regexp.QuoteMeta(t.String())
	return `\b` + company + `[\s-]*` + num + tierEnd
}

// conditionTable is ordered best to worst; the first hit wins.
var conditionTable = []conditionRule{
	{
		condition: domain.ConditionGemMint,
		patterns:  compile(`\bGEM[\s-]*MINT\b`, `\bPRISTINE\b`),
	},
	{
		// "Mint+" alone, not the tail of "Near Mint+".
		condition: domain.ConditionGemMint,
		patterns:  compile(`\bMINT\+`),
		exclude:   compile(`\bNEAR[\s-]*MINT\+`),
	},
	{
		condition: domain.ConditionNearMint,
		patterns:  compile(`\bNEAR[\s-]*MINT\b`, `\bNM\b`),
	},
	{
		condition:  domain.ConditionExcellent,
		patterns:   compile(`\bEXCELLENT\b`, `\bEX\+`),
		structured: compile(`\bEX\b`),
	},
	{
		condition: domain.ConditionVeryGood,
		patterns:  compile(`\bVERY[\s-]*GOOD\b`, `\bVG\b`, `\bVG\+`, `\bVG/EX\b`),
	},
	{
		condition: domain.ConditionGood,
		patterns:  compile(`\bGOOD\b`, `\bGD\b`),
	},
	{
		condition: domain.ConditionLightPlay,
		patterns:  compile(`\bLIGHT[\s-]*PLAY\b`, `\bLIGHTLY[\s-]*PLAYED\b`, `\bLP\b`),
	},
	{
		condition: domain.ConditionModeratePlay,
		patterns:  compile(`\bMODERATE[\s-]*PLAY\b`, `\bMODERATELY[\s-]*PLAYED\b`, `\bMP\b`),
	},
	{
		condition:  domain.ConditionHeavyPlay,
		patterns:   compile(`\bHEAVY[\s-]*PLAY\b`, `\bHEAVILY[\s-]*PLAYED\b`),
		structured: compile(`\bHP\b`),
	},
	{
		condition: domain.ConditionDamaged,
		patterns:  compile(`\bDAMAGED\b`, `\bDMG\b`, `\bPOOR\b`),
	},
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

func anyMatch(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
