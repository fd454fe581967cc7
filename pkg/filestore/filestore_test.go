package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSaveDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocal(dir)
	require.NoError(t, err)

	uri, err := store.Save(t.Context(), "Resume.PDF", []byte("%PDF"), "application/pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(uri, ".pdf"))
	assert.Equal(t, dir, filepath.Dir(uri))

	data, err := os.ReadFile(uri)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))

	other, err := store.Save(t.Context(), "Resume.PDF", []byte("x"), "")
	require.NoError(t, err)
	assert.NotEqual(t, uri, other)

	require.NoError(t, store.Delete(t.Context(), uri))
	_, err = os.Stat(uri)
	assert.ErrorIs(t, err, os.ErrNotExist)
	// second delete is a no-op
	require.NoError(t, store.Delete(t.Context(), uri))

	assert.Error(t, store.Delete(t.Context(), filepath.Join(t.TempDir(), "elsewhere.pdf")))
}

func TestS3SaveDelete(t *testing.T) {
	bucket := os.Getenv("S3_TEST_BUCKET")
	if bucket == "" {
		t.Skip("S3_TEST_BUCKET not set")
	}
	store, err := NewS3(t.Context(), S3Config{
		Bucket:      bucket,
		Region:      os.Getenv("S3_TEST_REGION"),
		EndpointURL: os.Getenv("S3_TEST_ENDPOINT"),
		AccessKey:   os.Getenv("S3_TEST_ACCESS_KEY"),
		SecretKey:   os.Getenv("S3_TEST_SECRET_KEY"),
		Prefix:      "test/",
	})
	require.NoError(t, err)

	uri, err := store.Save(t.Context(), "cv.docx", []byte("docx"), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "s3://"+bucket+"/test/"))
	require.NoError(t, store.Delete(t.Context(), uri))
	assert.Error(t, store.Delete(t.Context(), "s3://other-bucket/key"))
}
