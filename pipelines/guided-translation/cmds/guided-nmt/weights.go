package main

import (
	"github.com/translab/translab/translab-golib/guidance"
)

// WeightArgs is shared by the subcommands that parameterize a guided
// decoding run. Booleans default to enabled; pass e.g. --guided=false to
// turn one off.
type WeightArgs struct {
	UnigramWeight       float64 `help:"single-token guidance weight"`
	NgramWeight         float64 `help:"n-gram guidance weight"`
	ExtendUnigramWeight float64 `help:"single-token extension weight"`
	ExtendNgramWeight   float64 `help:"n-gram extension weight"`

	Guided          bool `help:"enable guided decoding"`
	CorrectUnigrams bool `help:"correct single tokens against the pieces"`
	CorrectNgrams   bool `help:"correct n-grams against the pieces"`
	ExtendPieces    bool `help:"extend hypotheses with translation pieces"`
	ReplaceUnk      bool `help:"replace unknown tokens from the source"`
}

func defaultWeightArgs() WeightArgs {
	w := guidance.Default()
	return WeightArgs{
		UnigramWeight:       w.Unigram,
		NgramWeight:         w.NGram,
		ExtendUnigramWeight: w.ExtendUnigram,
		ExtendNgramWeight:   w.ExtendNGram,
		Guided:              w.Guided,
		CorrectUnigrams:     w.CorrectUnigrams,
		CorrectNgrams:       w.CorrectNGrams,
		ExtendPieces:        w.ExtendPieces,
		ReplaceUnk:          w.ReplaceUnk,
	}
}

func (a WeightArgs) weights() guidance.Weights {
	return guidance.Weights{
		Unigram:         a.UnigramWeight,
		NGram:           a.NgramWeight,
		ExtendUnigram:   a.ExtendUnigramWeight,
		ExtendNGram:     a.ExtendNgramWeight,
		Guided:          a.Guided,
		CorrectUnigrams: a.CorrectUnigrams,
		CorrectNGrams:   a.CorrectNgrams,
		ExtendPieces:    a.ExtendPieces,
		ReplaceUnk:      a.ReplaceUnk,
	}
}
