package awsutil

import (
	"io"
	"io/ioutil"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/translab/translab/translab-golib/envutil"
	"github.com/translab/translab/translab-golib/errors"
)

var defaultRegion = envutil.GetenvDefault("AWS_REGION", "us-west-1")

// IsS3URI returns true if the path is an s3 uri.
func IsS3URI(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

// ValidateURI parses a uri of the form s3://bucket-name/path/to/object and
// checks that it names a bucket and a key.
func ValidateURI(uri string) (*url.URL, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid s3 uri %s", uri)
	}
	if u.Scheme != "s3" {
		return nil, errors.Errorf("invalid s3 uri %s: scheme must be s3", uri)
	}
	if u.Host == "" || strings.TrimPrefix(u.Path, "/") == "" {
		return nil, errors.Errorf("invalid s3 uri %s: must name a bucket and key", uri)
	}
	return u, nil
}

func newClient(region string) (*s3.S3, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return s3.New(sess, aws.NewConfig().WithRegion(region)), nil
}

// NewS3Reader returns an io.ReadCloser that reads the contents of the object
// pointed to by uri.
func NewS3Reader(uri string) (io.ReadCloser, error) {
	u, err := ValidateURI(uri)
	if err != nil {
		return nil, err
	}

	client, err := newClient(defaultRegion)
	if err != nil {
		return nil, err
	}

	key := strings.TrimPrefix(u.Path, "/")
	out, err := client.GetObject(&s3.GetObjectInput{
		Bucket: &u.Host,
		Key:    &key,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting %s", uri)
	}
	return out.Body, nil
}

// S3ListObjects lists the keys under the given prefix.
func S3ListObjects(region, bucket, prefix string) ([]string, error) {
	client, err := newClient(region)
	if err != nil {
		return nil, err
	}

	var keys []string
	err = client.ListObjectsV2Pages(&s3.ListObjectsV2Input{
		Bucket: &bucket,
		Prefix: &prefix,
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, *obj.Key)
		}
		return true
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error listing s3://%s/%s", bucket, prefix)
	}
	return keys, nil
}

// BufferedS3Writer buffers writes to a local temp file and uploads the
// object on Close.
type BufferedS3Writer struct {
	uri string
	tmp *os.File
}

// NewBufferedS3Writer returns a writer destined for the given s3 uri.
func NewBufferedS3Writer(uri string) (*BufferedS3Writer, error) {
	if _, err := ValidateURI(uri); err != nil {
		return nil, err
	}
	tmp, err := ioutil.TempFile("", "s3-upload")
	if err != nil {
		return nil, err
	}
	return &BufferedS3Writer{uri: uri, tmp: tmp}, nil
}

func (w *BufferedS3Writer) Write(buf []byte) (int, error) {
	return w.tmp.Write(buf)
}

// Name returns the destination uri.
func (w *BufferedS3Writer) Name() string {
	return w.uri
}

func (w *BufferedS3Writer) Close() error {
	defer os.Remove(w.tmp.Name())
	defer w.tmp.Close()

	if _, err := w.tmp.Seek(0, io.SeekStart); err != nil {
		return err
	}

	u, err := ValidateURI(w.uri)
	if err != nil {
		return err
	}

	client, err := newClient(defaultRegion)
	if err != nil {
		return err
	}

	key := strings.TrimPrefix(u.Path, "/")
	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket: &u.Host,
		Key:    &key,
		Body:   w.tmp,
	})
	return errors.WrapfOrNil(err, "error uploading %s", w.uri)
}
