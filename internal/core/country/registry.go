// Package country holds the UIC country registration table used by EVN codes.
// This is part of the Functional Core - no I/O, only pure functions over
// read-only data built once at package initialization.
package country

import (
	"fmt"
	"sort"
	"strings"
)

// Country is a single registry entry.
type Country struct {
	Numeric string `json:"numeric" yaml:"numeric"` // 2-digit UIC code, e.g. "51"
	ISO     string `json:"iso" yaml:"iso"`         // ISO 3166-1 alpha-2, e.g. "PL"
	Name    string `json:"name" yaml:"name"`       // English display name
}

// Placeholders reported when a numeric code has no registry entry.
const (
	UnknownISO  = "NONE"
	UnknownName = "unknown"
)

// table is the UIC country code list. Each numeric code and each ISO code
// appears at most once.
var table = []Country{
	{"10", "FI", "Finland"},
	{"20", "RU", "Russia"},
	{"21", "BY", "Belarus"},
	{"22", "UA", "Ukraine"},
	{"23", "MD", "Moldova"},
	{"24", "LT", "Lithuania"},
	{"25", "LV", "Latvia"},
	{"26", "EE", "Estonia"},
	{"27", "KZ", "Kazakhstan"},
	{"28", "GE", "Georgia"},
	{"29", "UZ", "Uzbekistan"},
	{"30", "KP", "North Korea"},
	{"31", "MN", "Mongolia"},
	{"32", "VN", "Vietnam"},
	{"33", "CN", "China"},
	{"40", "CU", "Cuba"},
	{"41", "AL", "Albania"},
	{"42", "JP", "Japan"},
	{"49", "BA", "Bosnia and Herzegovina"},
	{"51", "PL", "Poland"},
	{"52", "BG", "Bulgaria"},
	{"53", "RO", "Romania"},
	{"54", "CZ", "Czech Republic"},
	{"55", "HU", "Hungary"},
	{"56", "SK", "Slovakia"},
	{"57", "AZ", "Azerbaijan"},
	{"58", "AM", "Armenia"},
	{"59", "KG", "Kyrgyzstan"},
	{"60", "IE", "Ireland"},
	{"61", "KR", "South Korea"},
	{"62", "ME", "Montenegro"},
	{"65", "MK", "North Macedonia"},
	{"66", "TJ", "Tajikistan"},
	{"67", "TM", "Turkmenistan"},
	{"68", "AF", "Afghanistan"},
	{"70", "GB", "United Kingdom"},
	{"71", "ES", "Spain"},
	{"72", "RS", "Serbia"},
	{"73", "GR", "Greece"},
	{"74", "SE", "Sweden"},
	{"75", "TR", "Turkey"},
	{"76", "NO", "Norway"},
	{"78", "HR", "Croatia"},
	{"79", "SI", "Slovenia"},
	{"80", "DE", "Germany"},
	{"81", "AT", "Austria"},
	{"82", "LU", "Luxembourg"},
	{"83", "IT", "Italy"},
	{"84", "NL", "Netherlands"},
	{"85", "CH", "Switzerland"},
	{"86", "DK", "Denmark"},
	{"87", "FR", "France"},
	{"88", "BE", "Belgium"},
	{"90", "EG", "Egypt"},
	{"91", "TN", "Tunisia"},
	{"92", "DZ", "Algeria"},
	{"93", "MA", "Morocco"},
	{"94", "PT", "Portugal"},
	{"95", "IL", "Israel"},
	{"96", "IR", "Iran"},
	{"97", "SY", "Syria"},
	{"98", "LB", "Lebanon"},
	{"99", "IQ", "Iraq"},
}

var (
	byNumeric map[string]Country
	byISO     map[string]Country
	numerics  []string
)

func init() {
	byNumeric, byISO, numerics = buildIndex(table)
}

// buildIndex derives the lookup maps and the sorted key list from entries.
// It panics on malformed or duplicate entries.
func buildIndex(entries []Country) (map[string]Country, map[string]Country, []string) {
	num := make(map[string]Country, len(entries))
	iso := make(map[string]Country, len(entries))
	keys := make([]string, 0, len(entries))

	for _, c := range entries {
		if !isDigits(c.Numeric, 2) {
			panic(fmt.Sprintf("country: malformed numeric code %q", c.Numeric))
		}
		if _, dup := num[c.Numeric]; dup {
			panic(fmt.Sprintf("country: duplicate numeric code %q", c.Numeric))
		}
		if _, dup := iso[c.ISO]; dup {
			panic(fmt.Sprintf("country: duplicate ISO code %q", c.ISO))
		}
		num[c.Numeric] = c
		iso[c.ISO] = c
		keys = append(keys, c.Numeric)
	}

	sort.Strings(keys)
	return num, iso, keys
}

// LookupNumeric returns the entry registered under a 2-digit numeric code.
func LookupNumeric(code string) (Country, bool) {
	c, ok := byNumeric[code]
	return c, ok
}

// LookupISO returns the entry for an ISO alpha-2 code. Matching ignores case
// and surrounding whitespace.
func LookupISO(iso string) (Country, bool) {
	c, ok := byISO[strings.ToUpper(strings.TrimSpace(iso))]
	return c, ok
}

// Resolve accepts either form of country code: a 2-digit numeric code or a
// 2-letter ISO code.
func Resolve(code string) (Country, bool) {
	code = strings.TrimSpace(code)
	if isDigits(code, 2) {
		return LookupNumeric(code)
	}
	return LookupISO(code)
}

// All returns a copy of the registry sorted by numeric code.
func All() []Country {
	out := make([]Country, 0, len(numerics))
	for _, k := range numerics {
		out = append(out, byNumeric[k])
	}
	return out
}

// NumericCodes returns the registered numeric codes in ascending order.
func NumericCodes() []string {
	out := make([]string, len(numerics))
	copy(out, numerics)
	return out
}

// Len returns the number of registered countries.
func Len() int {
	return len(numerics)
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
