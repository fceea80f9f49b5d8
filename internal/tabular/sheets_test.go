package tabular

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSheetCSVURL(t *testing.T) {
	got, err := SheetCSVURL("https://docs.google.com/spreadsheets/d/1AbC-dEf_123/edit#gid=456")
	require.NoError(t, err)
	require.Equal(t, "https://docs.google.com/spreadsheets/d/1AbC-dEf_123/export?format=csv&gid=456", got)
}

func TestSheetCSVURLDefaultGid(t *testing.T) {
	got, err := SheetCSVURL("https://docs.google.com/spreadsheets/d/1AbC-dEf_123/edit")
	require.NoError(t, err)
	require.Equal(t, "https://docs.google.com/spreadsheets/d/1AbC-dEf_123/export?format=csv&gid=0", got)
}

func TestSheetCSVURLQueryGid(t *testing.T) {
	got, err := SheetCSVURL("https://docs.google.com/spreadsheets/d/1AbC/edit?usp=sharing&gid=99")
	require.NoError(t, err)
	require.Equal(t, "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=99", got)
}

func TestSheetCSVURLInvalid(t *testing.T) {
	_, err := SheetCSVURL("https://example.com/not-a-sheet")
	require.Error(t, err)
}
