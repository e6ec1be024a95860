package subword

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mergeLineTC struct {
	in       string
	expected string
}

func TestMergeLine(t *testing.T) {
	tcs := []mergeLineTC{
		{in: "Hau@@ s", expected: "Haus"},
		{in: "Hau@@", expected: "Hau"},
		{in: "das Hau@@ s ist gr@@ ün", expected: "das Haus ist grün"},
		{in: "kein Marker", expected: "kein Marker"},
		{in: "", expected: ""},
		{in: "a@@ b@@ c@@", expected: "abc"},
	}

	for _, tc := range tcs {
		assert.Equal(t, tc.expected, MergeLine(tc.in), "input: %q", tc.in)
	}
}

func TestMergeLine_Idempotent(t *testing.T) {
	for _, in := range []string{"Hau@@ s", "Hau@@", "a@@@@ b", "plain"} {
		once := MergeLine(in)
		assert.Equal(t, once, MergeLine(once), "input: %q", in)
	}
}

func TestMerge(t *testing.T) {
	in := "Hau@@ s\nein gr@@ ün@@ es Feld\nEnde@@\n"

	var out bytes.Buffer
	require.NoError(t, Merge(&out, strings.NewReader(in)))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Haus", lines[0])
	assert.Equal(t, "ein grünes Feld", lines[1])
	assert.Equal(t, "Ende", lines[2])
	assert.NotContains(t, out.String(), Joiner)
}
