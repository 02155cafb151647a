package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/evn/internal/core/country"
	"github.com/example/evn/internal/core/evn"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   Lang
		ok     bool
	}{
		{locale: "pl", want: Polish, ok: true},
		{locale: "PL", want: Polish, ok: true},
		{locale: "pl_PL.UTF-8", want: Polish, ok: true},
		{locale: "en", want: English, ok: true},
		{locale: "en_GB.UTF-8", want: English, ok: true},
		{locale: "en-US", want: English, ok: true},
		{locale: "de", want: German, ok: true},
		{locale: "de_AT.UTF-8@euro", want: German, ok: true},
		{locale: "fr_FR.UTF-8", ok: false},
		{locale: "ja", ok: false},
		{locale: "C", ok: false},
		{locale: "POSIX", ok: false},
		{locale: "C.UTF-8", ok: false},
		{locale: "", ok: false},
		{locale: "not a locale!", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, ok := Match(tt.locale)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	l, err := Parse("DE")
	require.NoError(t, err)
	assert.Equal(t, German, l)

	_, err = Parse("fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       Lang
	}{
		{name: "nothing set", candidates: nil, want: Polish},
		{name: "all empty", candidates: []string{"", "", ""}, want: Polish},
		{name: "flag wins", candidates: []string{"en", "de", "pl_PL.UTF-8"}, want: English},
		{name: "preference after empty flag", candidates: []string{"", "de", "en_US.UTF-8"}, want: German},
		{name: "environment locale last", candidates: []string{"", "", "en_US.UTF-8"}, want: English},
		{name: "unsupported skipped", candidates: []string{"fr", "", "de_DE.UTF-8"}, want: German},
		{name: "only unsupported", candidates: []string{"fr", "C"}, want: Polish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.candidates...))
		})
	}
}

func TestForFallsBackToDefault(t *testing.T) {
	assert.Same(t, For(Polish), For(Lang("xx")))
	assert.Equal(t, English, For(English).Lang)
}

func TestCataloguesComplete(t *testing.T) {
	for _, l := range Supported {
		t.Run(string(l), func(t *testing.T) {
			m := For(l)
			assert.Equal(t, l, m.Lang)
			assert.NotEmpty(t, m.ValidEVN)
			assert.NotEmpty(t, m.InvalidEVN)
			assert.NotEmpty(t, m.Generated)
			assert.NotEmpty(t, m.Random)
			assert.NotEmpty(t, m.ValidationError)
			assert.NotEmpty(t, m.LanguageSet)

			for _, c := range evn.Categories {
				assert.NotEqual(t, c.String(), m.Category(c), "category %s not translated", c)
			}
			for _, st := range evn.SubTypes {
				assert.NotEmpty(t, m.SubType(st), "subtype %s not translated", st)
			}
			for _, kind := range []evn.ErrorKind{
				evn.KindInvalidLength,
				evn.KindInvalidCountryCode,
				evn.KindInvalidChecksum,
				evn.KindInvalidSubType,
			} {
				assert.Contains(t, m.errors, kind)
			}
		})
	}
}

func TestCountryNamesCoverRegistry(t *testing.T) {
	for _, l := range []Lang{Polish, German} {
		m := For(l)
		for _, c := range country.All() {
			assert.Contains(t, m.countryNames, c.ISO, "%s has no %s name", c.ISO, l)
		}
	}
}

func TestCountryName(t *testing.T) {
	pl, _ := country.LookupNumeric("51")
	de, _ := country.LookupNumeric("80")

	assert.Equal(t, "Polska", For(Polish).CountryName(pl))
	assert.Equal(t, "Polen", For(German).CountryName(pl))
	assert.Equal(t, "Poland", For(English).CountryName(pl))
	assert.Equal(t, "Niemcy", For(Polish).CountryName(de))

	unknown := country.Country{Numeric: "00", ISO: country.UnknownISO, Name: country.UnknownName}
	assert.Equal(t, country.UnknownName, For(German).CountryName(unknown))
}

func TestErrorMessages(t *testing.T) {
	_, err := evn.Decode("945121500547")
	require.Error(t, err)

	assert.Equal(t, "Nieprawidłowa suma kontrolna EVN", For(Polish).Error(err))
	assert.Equal(t, "Invalid EVN checksum", For(English).Error(err))
	assert.Equal(t, "Ungültige EVN-Prüfsumme", For(German).Error(err))

	wrapped := fmt.Errorf("decode: %w", evn.ErrInvalidLength)
	assert.Equal(t, "Invalid EVN length - must be 12 digits", For(English).Error(wrapped))

	other := errors.New("disk full")
	assert.Equal(t, "disk full", For(German).Error(other))
	assert.Empty(t, For(English).Error(nil))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Pojazd trakcyjny", For(Polish).Category(evn.TractionVehicle))
	assert.Equal(t, "Güterwagen", For(German).Category(evn.FreightWagon))
	assert.Equal(t, "unknown", For(English).Category(evn.CategoryUnknown))

	assert.Equal(t, "Lokomotywa elektryczna", For(Polish).SubType(evn.SubTypeElectric))
	assert.Equal(t, "Shunting Locomotive", For(English).SubType(evn.SubTypeShunting))
	assert.Equal(t, evn.SubType(42).String(), For(German).SubType(evn.SubType(42)))
}
