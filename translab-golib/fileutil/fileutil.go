package fileutil

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/translab/translab/translab-golib/awsutil"
	"github.com/translab/translab/translab-golib/errors"
)

// NamedWriteCloser is a file-like object extending io.WriteCloser with a
// string Name() similar to os.File.Name()
type NamedWriteCloser interface {
	io.WriteCloser
	Name() string
}

// NewReader opens a local or remote path for reading. If the path looks like
// "s3://bucket/path/to/object" then this will read an object from S3.
// Otherwise, this will read a path from the local filesystem.
func NewReader(path string) (io.ReadCloser, error) {
	if awsutil.IsS3URI(path) {
		return awsutil.NewS3Reader(path)
	}
	return os.Open(path)
}

// NewBufferedWriter opens a local or remote path for writing. If the path
// starts with "s3://", then this will write to a local buffer, copying to s3
// on close. Otherwise, this will write to the local FS.
func NewBufferedWriter(path string) (NamedWriteCloser, error) {
	if awsutil.IsS3URI(path) {
		return awsutil.NewBufferedS3Writer(path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// ReadFile reads the contents of a local or remote path.
func ReadFile(path string) ([]byte, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ioutil.ReadAll(r)
}

// Copy copies the contents of src to dst; either side may be a local path or
// an s3 uri.
func Copy(dst, src string) (err error) {
	r, err := NewReader(src)
	if err != nil {
		return errors.Wrapf(err, "error opening %s", src)
	}
	defer errors.Defer(&err, r.Close)

	w, err := NewBufferedWriter(dst)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", dst)
	}
	defer errors.Defer(&err, w.Close)

	_, err = io.Copy(w, r)
	return errors.WrapfOrNil(err, "error copying %s to %s", src, dst)
}

// Exists reports whether a local path exists on disk. S3 uris always report
// false; callers are expected to overwrite remote artifacts.
func Exists(path string) bool {
	if awsutil.IsS3URI(path) {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// ListDir returns the fully qualified names for the members of the provided
// directory. If the directory is local these will simply be the paths, if
// the directory is on s3 then these will be s3 uris for the keys under it.
func ListDir(path string) ([]string, error) {
	if awsutil.IsS3URI(path) {
		trimmed := strings.TrimPrefix(path, "s3://")
		parts := strings.SplitN(trimmed, "/", 2)
		bucket := parts[0]
		var prefix string
		if len(parts) > 1 {
			prefix = parts[1]
		}

		keys, err := awsutil.S3ListObjects("us-west-1", bucket, prefix)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading from s3 path %s", path)
		}

		var paths []string
		for _, key := range keys {
			paths = append(paths, Join("s3://", bucket, key))
		}
		return paths, nil
	}

	entries, err := ioutil.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading dir %s", path)
	}

	var paths []string
	for _, entry := range entries {
		paths = append(paths, Join(path, entry.Name()))
	}
	return paths, nil
}
