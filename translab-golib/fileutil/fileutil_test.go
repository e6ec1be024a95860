package fileutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "s3://bucket/a/b", Join("s3://bucket", "a", "b"))
	assert.Equal(t, "/data/de-en/test.bpe.de", Join("/data", "de-en", "test.bpe.de"))
	assert.Equal(t, "", Join())
}

func TestJoin_DoesNotMutateArgs(t *testing.T) {
	parts := []string{"s3://bucket", "key"}
	Join(parts...)
	assert.Equal(t, "s3://bucket", parts[0])
}

func TestDir(t *testing.T) {
	assert.Equal(t, "s3://bucket/a", Dir("s3://bucket/a/b"))
	assert.Equal(t, "/data/de-en", Dir("/data/de-en/test.bpe.de"))
}

func TestNewReader(t *testing.T) {
	dir, err := ioutil.TempDir("", "")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "foo")
	err = ioutil.WriteFile(path, nil, 0777)
	require.NoError(t, err)

	f, err := NewReader(path)
	require.NoError(t, err)
	defer f.Close()
	assert.IsType(t, &os.File{}, f)

	g, err := NewReader(filepath.Join(dir, "bar"))
	assert.Error(t, err)
	assert.Nil(t, g)
}

func TestCopy(t *testing.T) {
	dir, err := ioutil.TempDir("", "")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "src")
	require.NoError(t, ioutil.WriteFile(src, []byte("ein Satz\n"), 0666))

	dst := filepath.Join(dir, "results", "copied")
	require.NoError(t, Copy(dst, src))

	buf, err := ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "ein Satz\n", string(buf))
}

func TestExists(t *testing.T) {
	tmpFile, err := ioutil.TempFile("", "")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	assert.True(t, Exists(tmpFile.Name()))
	assert.False(t, Exists(tmpFile.Name()+".missing"))
	assert.False(t, Exists("s3://bucket/key"))
}
