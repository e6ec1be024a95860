package main

import (
	"log"

	"github.com/translab/translab/translab-golib/cmdline"
	"github.com/translab/translab/translab-golib/envutil"
	"github.com/translab/translab/translab-golib/onmt"
)

var trainCmd = cmdline.Command{
	Name:     "train",
	Synopsis: "launch encoder/decoder training as a detached background process",
	Args: &trainArgs{
		Python:   "python",
		OnmtRoot: envutil.GetenvDefault("ONMT_ROOT", "onmt"),
		Epochs:   15,
		Seed:     42,
	},
}

type trainArgs struct {
	Data      string `arg:"required" help:"preprocessed dataset path"`
	SaveModel string `arg:"required" help:"model checkpoint save path"`
	OutLog    string `help:"training stdout log, defaults to <save-model>.train.out"`
	ErrLog    string `help:"training stderr log, defaults to <save-model>.train.err"`
	Python    string
	OnmtRoot  string `help:"framework checkout containing train.py"`
	Epochs    int
	Seed      int
}

func (args *trainArgs) Handle() error {
	opts := onmt.NewTrainOptions(args.Data, args.SaveModel)
	opts.Epochs = args.Epochs
	opts.Seed = args.Seed

	outLog := args.OutLog
	if outLog == "" {
		outLog = args.SaveModel + ".train.out"
	}
	errLog := args.ErrLog
	if errLog == "" {
		errLog = args.SaveModel + ".train.err"
	}

	invoker := onmt.Invoker{Python: args.Python, Root: args.OnmtRoot}
	pid, err := invoker.StartTraining(opts, outLog, errLog)
	if err != nil {
		return err
	}

	log.Printf("training started (pid %d), logs at %s / %s", pid, outLog, errLog)
	return nil
}
