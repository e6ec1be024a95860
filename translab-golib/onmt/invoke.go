package onmt

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/translab/translab/translab-golib/errors"
	"github.com/translab/translab/translab-golib/exec"
)

const (
	trainScript     = "train.py"
	translateScript = "translate.py"
)

// Invoker locates the framework checkout and the interpreter used to run its
// entry points.
type Invoker struct {
	// Python is the interpreter binary, "python" if empty.
	Python string
	// Root is the framework checkout containing train.py and translate.py.
	Root string
}

func (iv Invoker) python() string {
	if iv.Python == "" {
		return "python"
	}
	return iv.Python
}

func (iv Invoker) command(script string, args []string, detached bool) *exec.Cmd {
	argv := append([]string{filepath.Join(iv.Root, script)}, args...)
	if detached {
		return exec.DetachedCommand(iv.python(), argv...)
	}
	return exec.Command(iv.python(), argv...)
}

// Translate runs the translation entry point synchronously. The framework
// writes the prediction file named by opts.Output; its stdout is copied to
// logPath and parsed for the score report. Failures carry the full command
// line, nothing is retried.
func (iv Invoker) Translate(opts TranslateOptions, logPath string) (report Report, err error) {
	logF, err := os.Create(logPath)
	if err != nil {
		return Report{}, errors.Wrapf(err, "error creating translation log %s", logPath)
	}
	defer errors.Defer(&err, logF.Close)

	var buf bytes.Buffer
	cmd := iv.command(translateScript, opts.Args(), false)
	cmd.Stdout = io.MultiWriter(logF, &buf)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return Report{}, errors.Wrapf(err, "translation failed: %s", strings.Join(cmd.Args, " "))
	}
	return ParseReport(&buf)
}

// StartTraining launches the training entry point as a detached background
// process, redirecting its stdout and stderr to separate log files, and
// returns the process id without waiting for completion.
func (iv Invoker) StartTraining(opts TrainOptions, outLog, errLog string) (pid int, err error) {
	outF, err := os.Create(outLog)
	if err != nil {
		return 0, errors.Wrapf(err, "error creating training log %s", outLog)
	}
	defer errors.Defer(&err, outF.Close)

	errF, err := os.Create(errLog)
	if err != nil {
		return 0, errors.Wrapf(err, "error creating training log %s", errLog)
	}
	defer errors.Defer(&err, errF.Close)

	cmd := iv.command(trainScript, opts.Args(), true)
	cmd.Stdout = outF
	cmd.Stderr = errF

	if err := cmd.Start(); err != nil {
		return 0, errors.Wrapf(err, "training failed to start: %s", strings.Join(cmd.Args, " "))
	}

	pid = cmd.Process.Pid

	// the process is detached; release it rather than leaving a zombie
	// waiter behind
	return pid, errors.WrapfOrNil(cmd.Process.Release(), "error releasing training process")
}
