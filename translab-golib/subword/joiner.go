// Package subword handles the joiner markers left behind by subword
// segmentation. A segmented corpus marks every split word with a trailing
// joiner ("Hau@@ s"); merging removes the marker and rejoins the pieces.
package subword

import (
	"bufio"
	"io"
	"strings"

	"github.com/translab/translab/translab-golib/errors"
)

// Joiner is the marker appended to a subword unit that continues in the next
// token.
const Joiner = "@@"

// MergeLine removes subword segmentation from a single line (without
// trailing newline): every mid-line "@@ " is deleted, as is a bare "@@" at
// end of line. The operation is idempotent.
func MergeLine(line string) string {
	line = strings.ReplaceAll(line, Joiner+" ", "")
	return strings.TrimSuffix(line, Joiner)
}

// Merge copies r to w line by line, merging subword units. The line count is
// preserved.
func Merge(w io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	out := bufio.NewWriter(w)

	for scanner.Scan() {
		if _, err := out.WriteString(MergeLine(scanner.Text())); err != nil {
			return err
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "error scanning segmented input")
	}
	return out.Flush()
}
