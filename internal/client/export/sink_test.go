package export

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "jack.png", FileName("jack"))
	assert.Equal(t, "a_b.png", FileName("a/b"))
	assert.Equal(t, "___etc.png", FileName("../etc"))
	assert.Equal(t, "chart.png", FileName(""))
}

func TestFileSink_Put(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	s := NewFileSink(dir)

	loc, err := s.Put(context.Background(), "jack.png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "jack.png"), loc)

	got, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), got)
}

func TestFileSink_RejectsTraversal(t *testing.T) {
	s := NewFileSink(t.TempDir())

	for _, name := range []string{"", "..", "../x.png", "a/b.png"} {
		_, err := s.Put(context.Background(), name, nil)
		require.ErrorIs(t, err, ErrInvalidName, name)
	}
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Sink_Put(t *testing.T) {
	api := &fakeS3{}
	s := NewS3SinkWithAPI(api, "charts", "exports/2026")

	loc, err := s.Put(context.Background(), "jack.png", []byte("png"))
	require.NoError(t, err)

	assert.Equal(t, "s3://charts/exports/2026/jack.png", loc)
	assert.Equal(t, "charts", aws.ToString(api.input.Bucket))
	assert.Equal(t, "exports/2026/jack.png", aws.ToString(api.input.Key))
	assert.Equal(t, "image/png", aws.ToString(api.input.ContentType))
	assert.Equal(t, []byte("png"), api.body)
}

func TestS3Sink_PutError(t *testing.T) {
	boom := errors.New("denied")
	s := NewS3SinkWithAPI(&fakeS3{err: boom}, "charts", "")

	_, err := s.Put(context.Background(), "jack.png", nil)
	require.ErrorIs(t, err, boom)
}

func TestNewS3Sink_StaticCredentials(t *testing.T) {
	s, err := NewS3Sink(context.Background(), S3Config{
		Bucket:       "charts",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000",
		AccessKey:    "admin",
		SecretKey:    "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "charts", s.bucket)
}
