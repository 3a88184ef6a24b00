package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputNormalizeString(t *testing.T) {
	var out Output
	require.NoError(t, json.Unmarshal([]byte(`"  Halo dunia  "`), &out))

	text, err := out.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "Halo dunia", text)
}

func TestOutputNormalizeFragments(t *testing.T) {
	var out Output
	require.NoError(t, json.Unmarshal([]byte(`["Halo", " ", "dunia"]`), &out))

	text, err := out.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "Halo dunia", text)
}

func TestOutputNormalizeOtherJSON(t *testing.T) {
	var out Output
	require.NoError(t, json.Unmarshal([]byte(`42`), &out))

	text, err := out.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "42", text)
}

func TestOutputNormalizeEmpty(t *testing.T) {
	cases := map[string]string{
		"null":                 `null`,
		"empty string":         `""`,
		"whitespace string":    `"   "`,
		"empty fragments":      `[]`,
		"whitespace fragments": `["  ", "\n"]`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			var out Output
			require.NoError(t, json.Unmarshal([]byte(payload), &out))

			_, err := out.Normalize()
			assert.ErrorIs(t, err, ErrEmptyOutput)
		})
	}
}

func TestCleanMarkdown(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "Harga **mulai** dari 50rb", "Harga mulai dari 50rb"},
		{"heading", "### Menu\nKopi susu", "Menu\nKopi susu"},
		{"rule", "Menu\n---\nKopi", "Menu\n\nKopi"},
		{"quote", "> Catatan penting", "Catatan penting"},
		{"plain text untouched", "Kami buka jam 8 pagi.", "Kami buka jam 8 pagi."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanMarkdown(tc.in))
		})
	}
}

func TestCleanMarkdownStripsTableBars(t *testing.T) {
	got := CleanMarkdown("Kopi | 10rb")
	assert.NotContains(t, got, "|")
	assert.Contains(t, got, "Kopi")
	assert.Contains(t, got, "10rb")
}

func TestCleanMarkdownCollapsesBlankRuns(t *testing.T) {
	got := CleanMarkdown("Baris satu\n\n\n\nBaris dua")
	assert.Equal(t, "Baris satu\n\nBaris dua", got)
}
