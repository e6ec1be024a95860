package main

import (
	"github.com/translab/translab/translab-golib/cmdline"
)

func main() {
	cmdline.MustDispatch(trainCmd, translateCmd, publishCmd, sweepCmd)
}
