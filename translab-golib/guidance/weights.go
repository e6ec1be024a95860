// Package guidance holds the hyperparameters of guided beam-search
// translation runs and the naming scheme that keys output artifacts to them.
package guidance

import (
	"strconv"
	"strings"
)

// Weights parameterizes a guided decoding run: how strongly single-token and
// n-gram translation pieces bias the beam, and how strongly they extend it.
type Weights struct {
	Unigram       float64
	NGram         float64
	ExtendUnigram float64
	ExtendNGram   float64

	Guided          bool
	CorrectUnigrams bool
	CorrectNGrams   bool
	ExtendPieces    bool
	ReplaceUnk      bool
}

// Default returns the weight configuration used by the reference
// experiments: full guidance and extension enabled.
func Default() Weights {
	return Weights{
		Unigram:         1.0,
		NGram:           1.0,
		ExtendUnigram:   5.0,
		ExtendNGram:     5.0,
		Guided:          true,
		CorrectUnigrams: true,
		CorrectNGrams:   true,
		ExtendPieces:    true,
		ReplaceUnk:      true,
	}
}

// SplitWeight splits a weight's decimal representation into its integer and
// fractional digit strings; a weight without a fractional part yields "0"
// for the fraction. 1.0 -> ("1", "0"), 0.75 -> ("0", "75").
func SplitWeight(w float64) (integer, fraction string) {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i > -1 {
		return s[:i], s[i+1:]
	}
	return s, "0"
}

func weightPart(w float64) string {
	integer, fraction := SplitWeight(w)
	return integer + "pt" + fraction
}

// Label derives the artifact name component for these weights. It is a pure
// function of the four weight values, so runs with identical weights map to
// the same artifact and runs with different weights never collide.
func (w Weights) Label() string {
	return strings.Join([]string{
		weightPart(w.Unigram),
		weightPart(w.NGram),
		weightPart(w.ExtendUnigram),
		weightPart(w.ExtendNGram),
	}, "_")
}
