package main

import (
	"log"

	"github.com/translab/translab/pipelines/guided-translation/internal/experiment"
	"github.com/translab/translab/translab-golib/cmdline"
)

var publishCmd = cmdline.Command{
	Name:     "publish",
	Synopsis: "copy a prediction file under its weight label and write a merged copy",
	Args: &publishArgs{
		ResultsDir: "results",
		MergedDir:  "results-merged",
		WeightArgs: defaultWeightArgs(),
	},
}

type publishArgs struct {
	Pred       string `arg:"required" help:"prediction file to publish"`
	ResultsDir string
	MergedDir  string

	WeightArgs
}

func (args *publishArgs) Handle() error {
	cfg := experiment.Config{
		ResultsDir: args.ResultsDir,
		MergedDir:  args.MergedDir,
	}

	published, merged, err := experiment.Publish(cfg, args.weights(), args.Pred)
	if err != nil {
		return err
	}

	log.Printf("published %s and %s", published, merged)
	return nil
}
