package main

import (
	"log"

	"github.com/translab/translab/pipelines/guided-translation/internal/experiment"
	"github.com/translab/translab/translab-golib/cmdline"
	"github.com/translab/translab/translab-golib/envutil"
	"github.com/translab/translab/translab-golib/onmt"
)

var translateCmd = cmdline.Command{
	Name:     "translate",
	Synopsis: "run guided beam-search translation over a segmented corpus",
	Args: &translateArgs{
		SrcLang:    envutil.GetenvDefault("SRC_LANG", "de"),
		TgtLang:    envutil.GetenvDefault("TGT_LANG", "en"),
		Python:     "python",
		OnmtRoot:   envutil.GetenvDefault("ONMT_ROOT", "onmt"),
		ResultsDir: "results",
		MergedDir:  "results-merged",
		RunDB:      "runs",
		WeightArgs: defaultWeightArgs(),
	},
}

type translateArgs struct {
	Model  string `arg:"required" help:"trained checkpoint"`
	Src    string `arg:"required" help:"subword-segmented source corpus"`
	Pieces string `arg:"required" help:"translation pieces index"`
	Output string `help:"prediction path, defaults to <src>.pred"`

	SrcLang  string
	TgtLang  string
	Python   string
	OnmtRoot string `help:"framework checkout containing translate.py"`

	Publish    bool `help:"also publish the prediction under its weight label"`
	ResultsDir string
	MergedDir  string
	RunDB      string

	WeightArgs
}

func (args *translateArgs) config() experiment.Config {
	return experiment.Config{
		SrcLang:    args.SrcLang,
		TgtLang:    args.TgtLang,
		Model:      args.Model,
		Src:        args.Src,
		Pieces:     args.Pieces,
		Output:     args.Output,
		ResultsDir: args.ResultsDir,
		MergedDir:  args.MergedDir,
		RunDB:      args.RunDB,
	}
}

func (args *translateArgs) Handle() error {
	invoker := onmt.Invoker{Python: args.Python, Root: args.OnmtRoot}

	if args.Publish {
		runner := experiment.Runner{Invoker: invoker}
		info, err := runner.Run(args.config(), args.weights())
		if err != nil {
			return err
		}
		log.Printf("published %s and %s", info.Published, info.Merged)
		return nil
	}

	opts := onmt.NewTranslateOptions(args.Model, args.Src, args.Pieces, args.weights())
	if args.Output != "" {
		opts.Output = args.Output
	}

	report, err := invoker.Translate(opts, opts.Output+".log")
	if err != nil {
		return err
	}

	log.Printf("wrote %s (pred avg score %.4f, ppl %.4f)", opts.Output, report.PredAvgScore, report.PredPPL)
	if report.HasGold {
		log.Printf("gold avg score %.4f, ppl %.4f", report.GoldAvgScore, report.GoldPPL)
	}
	return nil
}
