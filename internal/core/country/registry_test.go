package country

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupNumeric(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantOK   bool
		wantISO  string
		wantName string
	}{
		{name: "poland", code: "51", wantOK: true, wantISO: "PL", wantName: "Poland"},
		{name: "germany", code: "80", wantOK: true, wantISO: "DE", wantName: "Germany"},
		{name: "portugal", code: "94", wantOK: true, wantISO: "PT", wantName: "Portugal"},
		{name: "unassigned code", code: "00", wantOK: false},
		{name: "gap in table", code: "45", wantOK: false},
		{name: "single digit", code: "5", wantOK: false},
		{name: "empty", code: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupNumeric(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantISO, got.ISO)
				assert.Equal(t, tt.wantName, got.Name)
				assert.Equal(t, tt.code, got.Numeric)
			}
		})
	}
}

func TestLookupISO(t *testing.T) {
	tests := []struct {
		name        string
		iso         string
		wantOK      bool
		wantNumeric string
	}{
		{name: "upper case", iso: "PL", wantOK: true, wantNumeric: "51"},
		{name: "lower case", iso: "de", wantOK: true, wantNumeric: "80"},
		{name: "padded", iso: " fr ", wantOK: true, wantNumeric: "87"},
		{name: "unknown", iso: "XX", wantOK: false},
		{name: "three letters", iso: "POL", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupISO(tt.iso)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantNumeric, got.Numeric)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	c, ok := Resolve("51")
	require.True(t, ok)
	assert.Equal(t, "PL", c.ISO)

	c, ok = Resolve("pl")
	require.True(t, ok)
	assert.Equal(t, "51", c.Numeric)

	_, ok = Resolve("11")
	assert.False(t, ok)

	_, ok = Resolve("Poland")
	assert.False(t, ok)
}

func TestRegistryIsBidirectional(t *testing.T) {
	for _, c := range All() {
		byISO, ok := LookupISO(c.ISO)
		require.True(t, ok, "ISO %s missing from index", c.ISO)
		assert.Equal(t, c, byISO)

		byNum, ok := LookupNumeric(c.Numeric)
		require.True(t, ok, "numeric %s missing from index", c.Numeric)
		assert.Equal(t, c, byNum)
	}
}

func TestAllReturnsSortedCopy(t *testing.T) {
	all := All()
	require.Len(t, all, Len())
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i].Numeric < all[j].Numeric
	}))

	all[0].Name = "mutated"
	again := All()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestNumericCodesReturnsCopy(t *testing.T) {
	codes := NumericCodes()
	require.NotEmpty(t, codes)
	codes[0] = "xx"
	assert.NotEqual(t, "xx", NumericCodes()[0])
}

func TestBuildIndexPanics(t *testing.T) {
	tests := []struct {
		name    string
		entries []Country
	}{
		{
			name:    "duplicate numeric",
			entries: []Country{{"51", "PL", "Poland"}, {"51", "XX", "Other"}},
		},
		{
			name:    "duplicate iso",
			entries: []Country{{"51", "PL", "Poland"}, {"52", "PL", "Other"}},
		},
		{
			name:    "malformed numeric",
			entries: []Country{{"5A", "PL", "Poland"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { buildIndex(tt.entries) })
		})
	}
}
