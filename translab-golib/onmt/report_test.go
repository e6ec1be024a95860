package onmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReport(t *testing.T) {
	out := strings.Join([]string{
		"SENT 1: das ist ein Test",
		"PRED 1: this is a test",
		"PRED SCORE: -0.6931",
		"PRED AVG SCORE: -0.8531, PRED PPL: 2.3472",
	}, "\n")

	report, err := ParseReport(strings.NewReader(out))
	require.NoError(t, err)
	assert.InDelta(t, -0.8531, report.PredAvgScore, 1e-9)
	assert.InDelta(t, 2.3472, report.PredPPL, 1e-9)
	assert.False(t, report.HasGold)
}

func TestParseReport_WithGold(t *testing.T) {
	out := strings.Join([]string{
		"PRED AVG SCORE: -0.8531, PRED PPL: 2.3472",
		"GOLD AVG SCORE: -1.0213, GOLD PPL: 2.7768",
	}, "\n")

	report, err := ParseReport(strings.NewReader(out))
	require.NoError(t, err)
	assert.True(t, report.HasGold)
	assert.InDelta(t, -1.0213, report.GoldAvgScore, 1e-9)
	assert.InDelta(t, 2.7768, report.GoldPPL, 1e-9)
}

func TestParseReport_MissingPred(t *testing.T) {
	_, err := ParseReport(strings.NewReader("no scores here\n"))
	assert.Error(t, err)
}
