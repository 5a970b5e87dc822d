package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/pkg/config"
)

func TestLocalStorage_Upload(t *testing.T) {
	dir := t.TempDir()
	st, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	url, err := st.Upload(context.Background(), "profile-photos/u1/foto 1.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/profile-photos/u1/foto%201.png", url)

	got, err := os.ReadFile(filepath.Join(dir, "profile-photos", "u1", "foto 1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(got))
}

func TestLocalStorage_RechazaSalirDelDirectorio(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)
	for _, key := range []string{"../fuera.png", "/etc/passwd", "a/../../b"} {
		_, err := st.Upload(context.Background(), key, []byte("x"), "image/png")
		assert.Error(t, err, key)
	}
}

type fakePutter struct {
	in  *s3.PutObjectInput
	err error
}

func (f *fakePutter) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Storage_Upload(t *testing.T) {
	putter := &fakePutter{}
	st := &S3Storage{bucket: "fotos", baseURL: s3BaseURL(config.StorageConfig{S3Bucket: "fotos", S3Region: "sa-east-1"}), svc: putter}

	url, err := st.Upload(context.Background(), "profile-photos/u1/a.jpg", []byte("jpg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://fotos.s3.sa-east-1.amazonaws.com/profile-photos/u1/a.jpg", url)
	assert.Equal(t, "fotos", aws.StringValue(putter.in.Bucket))
	assert.Equal(t, "image/jpeg", aws.StringValue(putter.in.ContentType))
	body, err := io.ReadAll(putter.in.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpg", string(body))

	putter.err = errors.New("AccessDenied")
	_, err = st.Upload(context.Background(), "k", []byte("x"), "image/png")
	assert.Error(t, err)
}

func TestS3BaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com", s3BaseURL(config.StorageConfig{PublicBaseURL: "https://cdn.example.com"}))
	assert.Equal(t, "http://minio:9000/fotos", s3BaseURL(config.StorageConfig{S3Endpoint: "http://minio:9000/", S3Bucket: "fotos"}))
}
