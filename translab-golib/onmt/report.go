package onmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/translab/translab/translab-golib/errors"
)

// Report holds the score summary the translation entry point prints on
// completion.
type Report struct {
	PredAvgScore float64
	PredPPL      float64

	// Gold scores are only present when a reference target was supplied.
	HasGold      bool
	GoldAvgScore float64
	GoldPPL      float64
}

// ParseReport scans the translation entry point's stdout for its final score
// lines, e.g. "PRED AVG SCORE: -0.8531, PRED PPL: 2.3472". A missing PRED
// line is an error; GOLD lines are optional.
func ParseReport(r io.Reader) (Report, error) {
	var report Report
	var sawPred bool

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "PRED AVG SCORE:"):
			if _, err := fmt.Sscanf(line, "PRED AVG SCORE: %f, PRED PPL: %f",
				&report.PredAvgScore, &report.PredPPL); err != nil {
				return Report{}, errors.Wrapf(err, "malformed score line %q", line)
			}
			sawPred = true
		case strings.HasPrefix(line, "GOLD AVG SCORE:"):
			if _, err := fmt.Sscanf(line, "GOLD AVG SCORE: %f, GOLD PPL: %f",
				&report.GoldAvgScore, &report.GoldPPL); err != nil {
				return Report{}, errors.Wrapf(err, "malformed score line %q", line)
			}
			report.HasGold = true
		}
	}
	if err := scanner.Err(); err != nil {
		return Report{}, err
	}

	if !sawPred {
		return Report{}, errors.Errorf("no PRED score line in translation output")
	}
	return report, nil
}
