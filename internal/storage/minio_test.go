package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, publicURL string) *MinioStorage {
	t.Helper()
	s, err := NewMinioStorage(Options{
		Endpoint:  "localhost:9000",
		Region:    "us-east-1",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "survey-photos",
		PathStyle: true,
		PublicURL: publicURL,
	})
	require.NoError(t, err)
	return s
}

func TestObjectURL(t *testing.T) {
	s := newTestStorage(t, "")
	assert.Equal(t, "http://localhost:9000/survey-photos/surveys/s1/a.jpg", s.ObjectURL("surveys/s1/a.jpg"))
}

func TestObjectURLPublicOverride(t *testing.T) {
	s := newTestStorage(t, "https://cdn.example.com")
	assert.Equal(t, "https://cdn.example.com/survey-photos/surveys/s1/a.jpg", s.ObjectURL("surveys/s1/a.jpg"))
}

func TestNewMinioStorageRejectsBadPublicURL(t *testing.T) {
	_, err := NewMinioStorage(Options{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "survey-photos",
		PublicURL: "cdn.example.com", // no scheme
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}

// Presigning is a local signature computation, so it can be exercised without
// a running store.
func TestPresignPut(t *testing.T) {
	s := newTestStorage(t, "")

	signed, err := s.PresignPut(context.Background(), "surveys/s1/a.jpg", "image/jpeg", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/survey-photos/surveys/s1/a.jpg", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	// Content-Type must be part of the signed headers so the client cannot
	// swap it after the fact.
	assert.Contains(t, strings.ToLower(u.Query().Get("X-Amz-SignedHeaders")), "content-type")
}

func TestPresignPutRewritesAuthority(t *testing.T) {
	s := newTestStorage(t, "https://files.example.com")

	signed, err := s.PresignPut(context.Background(), "surveys/s1/a.jpg", "image/jpeg", time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "files.example.com", u.Host)
	assert.Equal(t, "/survey-photos/surveys/s1/a.jpg", u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
