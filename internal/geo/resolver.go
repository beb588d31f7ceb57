package geo

import (
	"strings"
	"sync"
	"unicode"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// rule maps a known free-text fragment to a country code. Rules are
// applied in slice order after the exact-name lookup fails; the order is
// frozen because later rules may be shadowed by earlier ones.
type rule struct {
	match string
	code  string
}

// disambiguation covers CMS values that are neither codes nor the exact
// reference names: long-form official names, legacy names, and common
// native-language spellings. Extend at the end, never reorder.
var disambiguation = []rule{
	{"states of america", "us"},
	{"etats-unis", "us"},
	{"united kingdom", "gb"},
	{"great britain", "gb"},
	{"royaume-uni", "gb"},
	{"russian federation", "ru"},
	{"czech republic", "cz"},
	{"republique tcheque", "cz"},
	{"viet nam", "vn"},
	{"cote d'ivoire", "ci"},
	{"cote divoire", "ci"},
	{"south korea", "kr"},
	{"korea, republic", "kr"},
	{"north korea", "kp"},
	{"dr congo", "cd"},
	{"congo-kinshasa", "cd"},
	{"burma", "mm"},
	{"swaziland", "sz"},
	{"cape verde", "cv"},
	{"east timor", "tl"},
	{"macedonia", "mk"},
	{"holland", "nl"},
	{"hollande", "nl"},
	{"deutschland", "de"},
	{"allemagne", "de"},
	{"espana", "es"},
	{"espagne", "es"},
	{"schweiz", "ch"},
	{"osterreich", "at"},
	{"netherlands", "nl"},
	{"bolivia", "bo"},
	{"tanzania, united republic", "tz"},
	{"moldova, republic", "md"},
	{"syrian arab republic", "sy"},
	{"lao people", "la"},
	{"brunei darussalam", "bn"},
	{"vatican", "va"},
	{"holy see", "va"},
	{"palestinian", "ps"},
	{"taiwan", "tw"},
}

// Resolver normalizes free-text country values into lowercase ISO-3166
// alpha-2 codes. The exact-name index is built lazily on first use.
type Resolver struct {
	once  sync.Once
	exact map[string]string
}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) buildIndex() {
	r.exact = make(map[string]string, len(Countries)*2)
	for _, c := range Countries {
		r.exact[Normalize(c.NameEN)] = c.Code
		r.exact[Normalize(c.NameFR)] = c.Code
	}
}

// Resolve maps a raw country value to a code, or returns "" when the
// value cannot be resolved. It never fails; callers must skip records
// with an empty code instead of emitting malformed URLs.
//
// Resolution order: two-character values are treated as codes and
// lowercased without validation; otherwise the normalized value is
// looked up in the exact name table, then matched against the frozen
// disambiguation rules, then guessed from its first two characters.
// The prefix guess is logged for curation of the disambiguation list.
func (r *Resolver) Resolve(countryRaw string) string {
	raw := strings.TrimSpace(countryRaw)
	if len(raw) == 2 {
		return strings.ToLower(raw)
	}

	r.once.Do(r.buildIndex)

	normalized := Normalize(raw)
	if normalized == "" {
		return ""
	}

	if code, ok := r.exact[normalized]; ok {
		return code
	}

	for _, d := range disambiguation {
		if strings.Contains(normalized, d.match) {
			return d.code
		}
	}

	if chars := []rune(normalized); len(chars) >= 2 {
		guess := string(chars[:2])
		log.WithFields(log.Fields{
			"country": countryRaw,
			"guess":   guess,
		}).Warn("unresolved country value, using prefix guess; consider adding a disambiguation rule")
		return guess
	}

	return ""
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and trims a country value so
// that "Allemagne" and "allemagne " index the same table entry.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}
