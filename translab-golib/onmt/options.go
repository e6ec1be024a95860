// Package onmt builds and executes invocations of the external OpenNMT-style
// translation framework. The framework owns training and decoding; this
// package only assembles its command lines and consumes its outputs.
package onmt

import (
	"strconv"

	"github.com/translab/translab/translab-golib/guidance"
)

// TrainOptions mirrors the subset of the framework's training flags that the
// experiments drive.
type TrainOptions struct {
	Data      string
	SaveModel string

	Layers                 int
	EncoderType            string
	Dropout                float64
	ShareDecoderEmbeddings bool
	Epochs                 int
	Seed                   int
	GPUID                  int
}

// NewTrainOptions returns the training configuration used by the reference
// experiments: 2-layer bidirectional recurrent encoder, dropout 0.3, shared
// decoder embeddings, 15 epochs, seed 42, one GPU device.
func NewTrainOptions(data, saveModel string) TrainOptions {
	return TrainOptions{
		Data:                   data,
		SaveModel:              saveModel,
		Layers:                 2,
		EncoderType:            "brnn",
		Dropout:                0.3,
		ShareDecoderEmbeddings: true,
		Epochs:                 15,
		Seed:                   42,
		GPUID:                  0,
	}
}

// Args returns the framework argument list for these options. The result is
// deterministic: equal options produce identical argument lists.
func (o TrainOptions) Args() []string {
	args := []string{
		"-data", o.Data,
		"-save_model", o.SaveModel,
		"-layers", strconv.Itoa(o.Layers),
		"-encoder_type", o.EncoderType,
		"-dropout", formatWeight(o.Dropout),
	}
	if o.ShareDecoderEmbeddings {
		args = append(args, "-share_decoder_embeddings")
	}
	args = append(args,
		"-epochs", strconv.Itoa(o.Epochs),
		"-seed", strconv.Itoa(o.Seed),
		"-gpuid", strconv.Itoa(o.GPUID),
	)
	return args
}

// TranslateOptions mirrors the framework's translation flags for guided
// beam-search decoding.
type TranslateOptions struct {
	Model  string
	Src    string
	Output string

	BeamSize  int
	MinLength int

	// Pieces is the serialized translation-pieces index produced by the
	// external preprocessing stage.
	Pieces string
	// NGramCap bounds the length of guided n-grams.
	NGramCap int

	Weights guidance.Weights
}

// NewTranslateOptions returns the decoding configuration used by the
// reference experiments: beam size 5, minimum output length 2, guided n-gram
// cap 4, output next to the source corpus.
func NewTranslateOptions(model, src, pieces string, w guidance.Weights) TranslateOptions {
	return TranslateOptions{
		Model:     model,
		Src:       src,
		Output:    src + ".pred",
		BeamSize:  5,
		MinLength: 2,
		Pieces:    pieces,
		NGramCap:  4,
		Weights:   w,
	}
}

// Args returns the framework argument list for these options.
func (o TranslateOptions) Args() []string {
	args := []string{
		"-model", o.Model,
		"-src", o.Src,
		"-output", o.Output,
		"-beam_size", strconv.Itoa(o.BeamSize),
		"-min_length", strconv.Itoa(o.MinLength),
	}

	w := o.Weights
	if w.Guided {
		args = append(args,
			"-guided_decoding",
			"-translation_pieces", o.Pieces,
			"-guided_n_max", strconv.Itoa(o.NGramCap),
			"-guided_1gram_weight", formatWeight(w.Unigram),
			"-guided_ngram_weight", formatWeight(w.NGram),
			"-extend_1gram_weight", formatWeight(w.ExtendUnigram),
			"-extend_ngram_weight", formatWeight(w.ExtendNGram),
		)
		if w.CorrectUnigrams {
			args = append(args, "-correct_1grams")
		}
		if w.CorrectNGrams {
			args = append(args, "-correct_ngrams")
		}
		if w.ExtendPieces {
			args = append(args, "-extend_with_pieces")
		}
	}
	if w.ReplaceUnk {
		args = append(args, "-replace_unk")
	}
	return args
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
