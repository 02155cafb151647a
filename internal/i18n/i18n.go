// Package i18n holds the message catalogues for the command-line interface.
// The EVN core reports typed error kinds only; every user-facing string is
// produced here.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/example/evn/internal/core/country"
	"github.com/example/evn/internal/core/evn"
)

// Lang is a supported display language.
type Lang string

const (
	Polish  Lang = "pl"
	English Lang = "en"
	German  Lang = "de"
)

// Default is used when nothing else selects a language.
const Default = Polish

// Supported lists the display languages in preference order for matching.
var Supported = []Lang{Polish, English, German}

var matcher = language.NewMatcher([]language.Tag{
	language.Polish,
	language.English,
	language.German,
})

// Match maps a BCP 47 tag or a POSIX locale such as "de_AT.UTF-8" to a
// supported language. Confidence below High (for example "fr") is a miss.
func Match(locale string) (Lang, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || strings.EqualFold(locale, "C") || strings.EqualFold(locale, "POSIX") {
		return "", false
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return Supported[idx], true
}

// Parse accepts a supported language code in any case or locale form.
func Parse(s string) (Lang, error) {
	if l, ok := Match(s); ok {
		return l, nil
	}
	return "", fmt.Errorf("unsupported language %q (supported: %s, %s, %s)", s, Polish, English, German)
}

// Resolve picks the display language from candidates in priority order: the
// first candidate that matches a supported language wins, otherwise Default.
// Callers pass, for example, the --lang flag, EVN_LANG, the stored
// preference, LC_ALL and LANG.
func Resolve(candidates ...string) Lang {
	for _, c := range candidates {
		if l, ok := Match(c); ok {
			return l
		}
	}
	return Default
}

// For returns the catalogue for l, falling back to Default.
func For(l Lang) *Messages {
	if m, ok := catalogues[l]; ok {
		return m
	}
	return catalogues[Default]
}

// Messages is one language's catalogue.
type Messages struct {
	Lang Lang

	ValidEVN      string
	InvalidEVN    string
	EnterEVN      string
	EVNInfo       string
	OriginalCode  string
	FormattedCode string
	Country       string
	VehicleType   string
	Locomotive    string
	Technical     string
	SerialNumber  string
	CheckDigit    string
	Generated     string
	Formatted     string
	Random        string
	LanguageSet   string
	LanguageIs    string
	NoCountries   string

	ValidationError string
	DecodingError   string
	GenerationError string

	categories   map[evn.Category]string
	subTypes     [9]string
	errors       map[evn.ErrorKind]string
	countryNames map[string]string
}

// Category returns the label for a vehicle category.
func (m *Messages) Category(c evn.Category) string {
	if s, ok := m.categories[c]; ok {
		return s
	}
	return c.String()
}

// SubType returns the label for a locomotive sub-type.
func (m *Messages) SubType(st evn.SubType) string {
	if int(st) < len(m.subTypes) {
		return m.subTypes[st]
	}
	return st.String()
}

// Error returns the message for an error produced by the EVN core. Errors
// from elsewhere are returned verbatim.
func (m *Messages) Error(err error) string {
	if err == nil {
		return ""
	}
	if s, ok := m.errors[evn.KindOf(err)]; ok {
		return s
	}
	return err.Error()
}

// CountryName returns the localized name for a registry entry, falling back
// to the registry's English name.
func (m *Messages) CountryName(c country.Country) string {
	if s, ok := m.countryNames[c.ISO]; ok {
		return s
	}
	return c.Name
}
