package experiment

import (
	"encoding/json"
	"strings"
	"time"

	spooky "github.com/dgryski/go-spooky"
	"github.com/translab/translab/translab-golib/errors"
	"github.com/translab/translab/translab-golib/fileutil"
	"github.com/translab/translab/translab-golib/guidance"
	"github.com/translab/translab/translab-golib/onmt"
)

// Status describes the state of a run.
type Status string

const (
	// StatusFinished is set when the run completed and was published.
	StatusFinished Status = "finished"
	// StatusError is set when the run failed before it could be published.
	StatusError Status = "error"
)

// RunInfo records one translation run: its parameters, the exact invocation
// (as a hash), the parsed scores and the published artifact paths.
type RunInfo struct {
	Name    string
	SrcLang string
	TgtLang string

	Weights guidance.Weights
	// ArgsHash fingerprints the framework argument list, so identical
	// re-runs can be recognized across sweeps.
	ArgsHash uint64

	CreatedAt     time.Time
	Status        Status
	StatusUpdated time.Time
	Error         string

	Report    onmt.Report
	Published string
	Merged    string
}

func newRunInfo(cfg Config, w guidance.Weights, args []string) RunInfo {
	return RunInfo{
		Name:      cfg.SrcLang + "-" + cfg.TgtLang + "." + w.Label(),
		SrcLang:   cfg.SrcLang,
		TgtLang:   cfg.TgtLang,
		Weights:   w,
		ArgsHash:  spooky.Hash64([]byte(strings.Join(args, "\x00"))),
		CreatedAt: time.Now().UTC(),
	}
}

// finish stamps the final status, writes the record if a run db is
// configured, and passes the run error through.
func (ri RunInfo) finish(cfg Config, runErr error) (RunInfo, error) {
	ri.Status = StatusFinished
	if runErr != nil {
		ri.Status = StatusError
		ri.Error = runErr.Error()
	}
	ri.StatusUpdated = time.Now().UTC()

	if cfg.RunDB != "" {
		if err := ri.save(cfg.RunDB); err != nil {
			return ri, errors.Combine(runErr, err)
		}
	}
	return ri, runErr
}

func (ri RunInfo) save(dir string) (err error) {
	w, err := fileutil.NewBufferedWriter(fileutil.Join(dir, ri.Name+".run.json"))
	if err != nil {
		return errors.Wrapf(err, "error creating run record for %s", ri.Name)
	}
	defer errors.Defer(&err, w.Close)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ri)
}
