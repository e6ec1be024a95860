package experiment

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/translab/translab/translab-golib/errors"
	"github.com/translab/translab/translab-golib/guidance"
	"github.com/translab/translab/translab-golib/onmt"
)

func testConfig(t *testing.T) (Config, func()) {
	dir, err := ioutil.TempDir("", "experiment-test")
	require.NoError(t, err)

	src := filepath.Join(dir, "test.bpe.de")
	corpus := "das Hau@@ s ist rot\nein gr@@ ün@@ es Feld\nEnde@@\n"
	require.NoError(t, ioutil.WriteFile(src, []byte(corpus), 0666))

	cfg := Config{
		SrcLang:    "de",
		TgtLang:    "en",
		Model:      filepath.Join(dir, "model.pt"),
		Src:        src,
		Pieces:     filepath.Join(dir, "pieces.pkl"),
		ResultsDir: filepath.Join(dir, "results"),
		MergedDir:  filepath.Join(dir, "merged"),
		RunDB:      filepath.Join(dir, "runs"),
	}
	return cfg, func() { os.RemoveAll(dir) }
}

// echoTranslate stands in for the framework: it copies the source corpus to
// the output path unchanged.
func echoTranslate(opts onmt.TranslateOptions, logPath string) (onmt.Report, error) {
	buf, err := ioutil.ReadFile(opts.Src)
	if err != nil {
		return onmt.Report{}, err
	}
	if err := ioutil.WriteFile(opts.Output, buf, 0666); err != nil {
		return onmt.Report{}, err
	}
	return onmt.Report{PredAvgScore: -0.5, PredPPL: 1.65}, nil
}

func countLines(t *testing.T, path string) (int, string) {
	buf, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	content := string(buf)
	return strings.Count(content, "\n"), content
}

func TestRun_EndToEnd(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	runner := Runner{Translate: echoTranslate}
	info, err := runner.Run(cfg, guidance.Default())
	require.NoError(t, err)

	require.Equal(t, StatusFinished, info.Status)
	assert.InDelta(t, -0.5, info.Report.PredAvgScore, 1e-9)

	// exactly one published and one merged artifact
	published, err := ioutil.ReadDir(cfg.ResultsDir)
	require.NoError(t, err)
	require.Len(t, published, 1)
	merged, err := ioutil.ReadDir(cfg.MergedDir)
	require.NoError(t, err)
	require.Len(t, merged, 1)

	n, content := countLines(t, info.Published)
	assert.Equal(t, 3, n)
	assert.Contains(t, content, "Hau@@ s")

	n, content = countLines(t, info.Merged)
	assert.Equal(t, 3, n)
	assert.NotContains(t, content, "@@")
	assert.Contains(t, content, "das Haus ist rot")
}

func TestRun_ArtifactNamesEncodeWeights(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	runner := Runner{Translate: echoTranslate}

	w := guidance.Default()
	info, err := runner.Run(cfg, w)
	require.NoError(t, err)
	assert.Equal(t, "test.bpe.de.pred.1pt0_1pt0_5pt0_5pt0", filepath.Base(info.Published))

	w.NGram = 1.1
	other, err := runner.Run(cfg, w)
	require.NoError(t, err)
	assert.NotEqual(t, filepath.Base(info.Published), filepath.Base(other.Published))

	// identical weights overwrite the same artifact
	again, err := runner.Run(cfg, guidance.Default())
	require.NoError(t, err)
	assert.Equal(t, info.Published, again.Published)

	entries, err := ioutil.ReadDir(cfg.ResultsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRun_WritesRunRecord(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	runner := Runner{Translate: echoTranslate}
	info, err := runner.Run(cfg, guidance.Default())
	require.NoError(t, err)

	record, err := ioutil.ReadFile(filepath.Join(cfg.RunDB, info.Name+".run.json"))
	require.NoError(t, err)
	assert.Contains(t, string(record), `"Status": "finished"`)
	assert.NotZero(t, info.ArgsHash)
}

func TestRun_TranslateFailure(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	runner := Runner{Translate: func(onmt.TranslateOptions, string) (onmt.Report, error) {
		return onmt.Report{}, errors.New("decoder crashed")
	}}

	info, err := runner.Run(cfg, guidance.Default())
	require.Error(t, err)
	assert.Equal(t, StatusError, info.Status)
	assert.Contains(t, info.Error, "decoder crashed")

	// failed runs are still recorded
	_, statErr := os.Stat(filepath.Join(cfg.RunDB, info.Name+".run.json"))
	assert.NoError(t, statErr)
}

func TestRun_DistinctOutputsPerSweepCombination(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	runner := Runner{Translate: echoTranslate}
	for _, w := range guidance.Sweep(guidance.Default(), []float64{0.5, 1.0}) {
		run := cfg
		run.Output = cfg.Src + "." + w.Label() + ".pred"
		_, err := runner.Run(run, w)
		require.NoError(t, err)
	}

	entries, err := ioutil.ReadDir(cfg.ResultsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
