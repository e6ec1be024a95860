package main

import (
	"log"

	"github.com/translab/translab/pipelines/guided-translation/internal/experiment"
	"github.com/translab/translab/translab-golib/cmdline"
	"github.com/translab/translab/translab-golib/envutil"
	"github.com/translab/translab/translab-golib/guidance"
	"github.com/translab/translab/translab-golib/onmt"
	"github.com/translab/translab/translab-golib/workerpool"
)

var sweepCmd = cmdline.Command{
	Name:     "sweep",
	Synopsis: "run translate+publish for every guidance weight pair in a grid",
	Args: &sweepArgs{
		SrcLang:    envutil.GetenvDefault("SRC_LANG", "de"),
		TgtLang:    envutil.GetenvDefault("TGT_LANG", "en"),
		Python:     "python",
		OnmtRoot:   envutil.GetenvDefault("ONMT_ROOT", "onmt"),
		ResultsDir: "results",
		MergedDir:  "results-merged",
		RunDB:      "runs",
		Lambdas:    []float64{0.5, 1, 2, 5},
		NumGo:      1,
		WeightArgs: defaultWeightArgs(),
	},
}

type sweepArgs struct {
	Model  string `arg:"required" help:"trained checkpoint"`
	Src    string `arg:"required" help:"subword-segmented source corpus"`
	Pieces string `arg:"required" help:"translation pieces index"`

	SrcLang  string
	TgtLang  string
	Python   string
	OnmtRoot string

	ResultsDir string
	MergedDir  string
	RunDB      string

	// Lambdas are crossed into (unigram, ngram) guidance weight pairs;
	// pairs with equal values are skipped.
	Lambdas []float64
	NumGo   int `help:"concurrent runs; keep at 1 for a single GPU"`

	WeightArgs
}

func (args *sweepArgs) Handle() error {
	combos := guidance.Sweep(args.weights(), args.Lambdas)
	if len(combos) == 0 {
		log.Println("nothing to sweep: need at least two distinct lambdas")
		return nil
	}
	log.Printf("sweeping %d weight combinations", len(combos))

	cfg := experiment.Config{
		SrcLang:    args.SrcLang,
		TgtLang:    args.TgtLang,
		Model:      args.Model,
		Src:        args.Src,
		Pieces:     args.Pieces,
		ResultsDir: args.ResultsDir,
		MergedDir:  args.MergedDir,
		RunDB:      args.RunDB,
	}
	runner := experiment.Runner{Invoker: onmt.Invoker{Python: args.Python, Root: args.OnmtRoot}}

	var jobs []workerpool.Job
	for _, w := range combos {
		w := w
		jobs = append(jobs, func() error {
			run := cfg
			// per-combination output so concurrent runs never share a file
			run.Output = cfg.Src + "." + w.Label() + ".pred"

			info, err := runner.Run(run, w)
			if err != nil {
				return err
			}
			log.Printf("published %s", info.Published)
			return nil
		})
	}

	pool := workerpool.New(args.NumGo)
	defer pool.Stop()
	pool.Add(jobs)
	return pool.Wait()
}
