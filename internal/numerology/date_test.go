package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmira/arquetipo/pkg/types"
)

func TestAnalyzeDateMasterPath(t *testing.T) {
	// 25 + 12 + (1+9+9+0) = 56 -> 11 (master), simple 2.
	info, err := AnalyzeDate("25/12/1990")
	require.NoError(t, err)

	assert.Equal(t, 25, info.Day)
	assert.Equal(t, 12, info.Month)
	assert.Equal(t, 1990, info.Year)
	assert.Equal(t, 19, info.YearDigitSum)
	assert.Equal(t, 56, info.BaseTotal)
	assert.Equal(t, 11, info.LifeNumber)
	assert.Equal(t, 2, info.SimpleDigit)
	assert.Equal(t, "11/2", info.PathLabel)
	assert.True(t, info.IsMaster())
}

func TestAnalyzeDateBothFormatsAgree(t *testing.T) {
	slash, err := AnalyzeDate("25/12/1990")
	require.NoError(t, err)

	dash, err := AnalyzeDate("1990-12-25")
	require.NoError(t, err)

	assert.Equal(t, slash, dash)
}

func TestAnalyzeDateSimplePath(t *testing.T) {
	// 1 + 1 + (2+0+0+0) = 4, no master involved.
	info, err := AnalyzeDate("01/01/2000")
	require.NoError(t, err)

	assert.Equal(t, 4, info.LifeNumber)
	assert.Equal(t, 4, info.SimpleDigit)
	assert.Equal(t, "4", info.PathLabel)
	assert.False(t, info.IsMaster())
}

func TestAnalyzeDateTrimsWhitespace(t *testing.T) {
	info, err := AnalyzeDate("  25/12/1990  ")
	require.NoError(t, err)
	assert.Equal(t, 25, info.Day)
}

func TestAnalyzeDateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "garbage", input: "not a date"},
		{name: "calendar invalid", input: "31/02/2000"},
		{name: "month out of range", input: "10/13/2000"},
		{name: "unsupported format", input: "12-25-1990"},
		{name: "partial", input: "25/12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnalyzeDate(tt.input)
			assert.ErrorIs(t, err, types.ErrInvalidDate)
		})
	}
}

// A pure function: the same date always yields the same breakdown.
func TestAnalyzeDateDeterministic(t *testing.T) {
	first, err := AnalyzeDate("03/07/1985")
	require.NoError(t, err)

	second, err := AnalyzeDate("03/07/1985")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
