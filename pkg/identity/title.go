package identity

import (
	"regexp"
	"strings"
)

// ParsedTitle is the card information recovered from a listing title.
type ParsedTitle struct {
	Name   string
	Set    string
	Number string
	Flags  Flags
}

// knownSets maps title phrases to canonical set names, checked in order.
// Longer phrases come before phrases they contain.
var knownSets = []struct {
	phrase string
	set    string
}{
	{"BASE SET 2", "Base Set 2"},
	{"BASE SET", "Base Set"},
	{"SHADOWLESS", "Base Set Shadowless"},
	{"JUNGLE", "Jungle"},
	{"FOSSIL", "Fossil"},
	{"TEAM ROCKET", "Team Rocket"},
	{"GYM HEROES", "Gym Heroes"},
	{"GYM CHALLENGE", "Gym Challenge"},
	{"NEO GENESIS", "Neo Genesis"},
	{"NEO DISCOVERY", "Neo Discovery"},
	{"NEO REVELATION", "Neo Revelation"},
	{"NEO DESTINY", "Neo Destiny"},
	{"LEGENDARY COLLECTION", "Legendary Collection"},
	{"EXPEDITION", "Expedition"},
	{"AQUAPOLIS", "Aquapolis"},
	{"SKYRIDGE", "Skyridge"},
	{"EX RUBY", "EX Ruby & Sapphire"},
	{"EX SAPPHIRE", "EX Ruby & Sapphire"},
	{"HIDDEN FATES", "Hidden Fates"},
	{"SHINING FATES", "Shining Fates"},
	{"EVOLVING SKIES", "Evolving Skies"},
	{"CELEBRATIONS", "Celebrations"},
	{"BRILLIANT STARS", "Brilliant Stars"},
	{"CROWN ZENITH", "Crown Zenith"},
}

// knownNames are card subjects recognized in titles, checked in order.
var knownNames = compileNames(
	"Charizard", "Pikachu", "Mewtwo", "Lugia", "Ho-Oh", "Rayquaza",
	"Blastoise", "Venusaur", "Gyarados", "Dragonite", "Alakazam",
	"Gengar", "Machamp", "Raichu", "Zapdos", "Articuno", "Moltres",
	"Mew", "Celebi", "Espeon", "Umbreon", "Typhlosion", "Feraligatr",
	"Meganium", "Tyranitar", "Suicune", "Entei", "Raikou",
	"Eevee", "Snorlax", "Lapras", "Jolteon", "Flareon", "Vaporeon",
	"Groudon", "Kyogre", "Jirachi", "Deoxys", "Arceus", "Giratina",
)

type knownName struct {
	name    string
	pattern *regexp.Regexp
}

func compileNames(names ...string) []knownName {
	out := make([]knownName, len(names))
	for i, n := range names {
		out[i] = knownName{
			name:    n,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToUpper(n)) + `\b`),
		}
	}
	return out
}

var (
	slashNumber = regexp.MustCompile(`\b(\d+)/(\d+)\b`)
	hashNumber  = regexp.MustCompile(`#\s*(\d+)\b`)

	flagPatterns = []struct {
		pattern *regexp.Regexp
		set     func(*Flags)
	}{
		{regexp.MustCompile(`\b1ST\s+ED(?:ITION)?\b`), func(f *Flags) { f.FirstEdition = true }},
		{regexp.MustCompile(`\bSHADOWLESS\b`), func(f *Flags) { f.Shadowless = true }},
		{regexp.MustCompile(`\bFULL\s+ART\b|\bFA\b`), func(f *Flags) { f.FullArt = true }},
		{regexp.MustCompile(`\bALT(?:ERNATE)?\s+ART\b`), func(f *Flags) { f.AltArt = true }},
		{regexp.MustCompile(`\bSECRET\b`), func(f *Flags) { f.SecretRare = true }},
		{regexp.MustCompile(`\bRAINBOW\b`), func(f *Flags) { f.RainbowRare = true }},
	}

	holo    = regexp.MustCompile(`\bHOLO\b`)
	reverse = regexp.MustCompile(`\bREVERSE\b`)
)

// ParseTitle recovers card name, set, number and printing flags from a
// listing title. Fields it cannot find are left empty.
func ParseTitle(title string) ParsedTitle {
	upper := strings.ToUpper(title)
	var p ParsedTitle

	for _, s := range knownSets {
		if strings.Contains(upper, s.phrase) {
			p.Set = s.set
			break
		}
	}

	for _, n := range knownNames {
		if n.pattern.MatchString(upper) {
			p.Name = n.name
			break
		}
	}

	if m := slashNumber.FindString(upper); m != "" {
		p.Number = m
	} else if m := hashNumber.FindStringSubmatch(upper); m != nil {
		p.Number = m[1]
	}

	for _, fp := range flagPatterns {
		if fp.pattern.MatchString(upper) {
			fp.set(&p.Flags)
		}
	}
	if holo.MatchString(upper) {
		if reverse.MatchString(upper) {
			p.Flags.ReverseHolo = true
		} else {
			p.Flags.Holo = true
		}
	}

	return p
}

// lotPatterns mark titles that offer several cards or a choice of cards.
var lotPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bCHOOSE\s+YOUR\b`),
	regexp.MustCompile(`\bCHOOSE\s+CARD`),
	regexp.MustCompile(`\bSELECT\s+CARD`),
	regexp.MustCompile(`\bPICK\s+YOUR\b`),
	regexp.MustCompile(`\bPICK\s+CARD`),
	regexp.MustCompile(`\bYOU\s+CHOOSE\b`),
	regexp.MustCompile(`\bYOU\s+PICK\b`),
	regexp.MustCompile(`\bMULTIPLE\s+CARDS\b`),
	regexp.MustCompile(`\bMANY\s+CARDS\b`),
	regexp.MustCompile(`\bVARIOUS\s+CARDS\b`),
	regexp.MustCompile(`\b\d+\s*X\b`),
	regexp.MustCompile(`\bLOT\s+OF\b`),
	regexp.MustCompile(`\bBULK\b`),
	regexp.MustCompile(`\bCOLLECTION\b`),
	regexp.MustCompile(`\bCOMPLETE\s+SET\b`),
	regexp.MustCompile(`\bFULL\s+SET\b`),
}

// IsSingleCardListing reports whether a title describes exactly one card,
// rejecting lots, bundles and "choose your card" listings. Titles naming
// "Legendary Collection" as a set are not treated as collections.
func IsSingleCardListing(title string) bool {
	upper := strings.ToUpper(title)
	upper = strings.ReplaceAll(upper, "LEGENDARY COLLECTION", "LEGENDARY")
	for _, re := range lotPatterns {
		if re.MatchString(upper) {
			return false
		}
	}
	return true
}
