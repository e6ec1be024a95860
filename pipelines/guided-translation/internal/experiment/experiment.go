// Package experiment orchestrates guided translation runs: it drives the
// external framework's decoder over a segmented corpus, publishes the
// prediction artifact under a weight-derived name, and records the run.
package experiment

import (
	"log"

	"github.com/translab/translab/translab-golib/guidance"
	"github.com/translab/translab/translab-golib/onmt"
)

// Config describes the fixed inputs of a translation run, independent of the
// guidance weights it is decoded with.
type Config struct {
	SrcLang string
	TgtLang string

	// Model is the trained checkpoint, Src the subword-segmented source
	// corpus, Pieces the serialized translation-pieces index.
	Model  string
	Src    string
	Pieces string

	// Output is the prediction file the framework writes; defaults to
	// Src + ".pred".
	Output string

	// ResultsDir receives the published (still segmented) predictions,
	// MergedDir the detokenized copies.
	ResultsDir string
	MergedDir  string

	// RunDB, when set, is the directory run records are written to.
	RunDB string
}

func (c Config) options(w guidance.Weights) onmt.TranslateOptions {
	opts := onmt.NewTranslateOptions(c.Model, c.Src, c.Pieces, w)
	if c.Output != "" {
		opts.Output = c.Output
	}
	return opts
}

// Runner executes translation runs against a framework checkout.
type Runner struct {
	Invoker onmt.Invoker

	// Translate can be swapped out in tests; when nil the Invoker is used.
	Translate func(opts onmt.TranslateOptions, logPath string) (onmt.Report, error)
}

func (r Runner) translate(opts onmt.TranslateOptions, logPath string) (onmt.Report, error) {
	if r.Translate != nil {
		return r.Translate(opts, logPath)
	}
	return r.Invoker.Translate(opts, logPath)
}

// Run decodes the corpus with the given weights, publishes the prediction
// under the weight label, and returns the run record. When cfg.RunDB is set
// the record is also written there, including on failure.
func (r Runner) Run(cfg Config, w guidance.Weights) (RunInfo, error) {
	opts := cfg.options(w)
	info := newRunInfo(cfg, w, opts.Args())

	report, err := r.translate(opts, opts.Output+".log")
	if err != nil {
		return info.finish(cfg, err)
	}
	info.Report = report

	log.Printf("translated %s -> %s (pred avg score %.4f, ppl %.4f)",
		opts.Src, opts.Output, report.PredAvgScore, report.PredPPL)

	info.Published, info.Merged, err = Publish(cfg, w, opts.Output)
	return info.finish(cfg, err)
}
