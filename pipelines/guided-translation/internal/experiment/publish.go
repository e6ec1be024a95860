package experiment

import (
	"path"

	"github.com/translab/translab/translab-golib/errors"
	"github.com/translab/translab/translab-golib/fileutil"
	"github.com/translab/translab/translab-golib/guidance"
	"github.com/translab/translab/translab-golib/subword"
)

// ArtifactName returns the published filename for a prediction decoded with
// the given weights: the prediction's base name keyed by the weight label.
func ArtifactName(pred string, w guidance.Weights) string {
	return path.Base(pred) + "." + w.Label()
}

// Publish copies the prediction file into cfg.ResultsDir under its
// weight-derived name, then writes a detokenized copy (subword joiners
// merged) into cfg.MergedDir. Re-publishing with identical weights
// overwrites the same artifacts.
func Publish(cfg Config, w guidance.Weights, pred string) (published, merged string, err error) {
	name := ArtifactName(pred, w)

	published = fileutil.Join(cfg.ResultsDir, name)
	if err := fileutil.Copy(published, pred); err != nil {
		return "", "", errors.Wrapf(err, "error publishing %s", pred)
	}

	merged = fileutil.Join(cfg.MergedDir, name)
	if err := mergeFile(merged, published); err != nil {
		return "", "", errors.Wrapf(err, "error merging %s", published)
	}
	return published, merged, nil
}

func mergeFile(dst, src string) (err error) {
	r, err := fileutil.NewReader(src)
	if err != nil {
		return err
	}
	defer errors.Defer(&err, r.Close)

	w, err := fileutil.NewBufferedWriter(dst)
	if err != nil {
		return err
	}
	defer errors.Defer(&err, w.Close)

	return subword.Merge(w, r)
}
