package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrConfiguration is returned when the storage configuration cannot yield a
// usable public URL base.
var ErrConfiguration = errors.New("invalid storage configuration")

// Options configures a MinioStorage.
type Options struct {
	Endpoint  string // host[:port] the server uses to reach the store
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PathStyle bool
	// PublicURL, when set, replaces the authority of every URL handed to
	// clients (signed or constructed) while preserving path and query. Needed
	// when the store sits behind a reverse proxy or CDN reachable under a
	// different address than Endpoint.
	PublicURL string
}

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	publicBase *url.URL // nil when no override is configured
}

// NewMinioStorage creates a MinIO client from opts. No remote call is made;
// bucket provisioning is the operator's responsibility.
func NewMinioStorage(opts Options) (*MinioStorage, error) {
	lookup := minio.BucketLookupAuto
	if opts.PathStyle {
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:       opts.UseSSL,
		Region:       opts.Region,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	var publicBase *url.URL
	if opts.PublicURL != "" {
		publicBase, err = url.Parse(opts.PublicURL)
		if err != nil {
			return nil, fmt.Errorf("%w: parse public url: %v", ErrConfiguration, err)
		}
		if publicBase.Scheme == "" || publicBase.Host == "" {
			return nil, fmt.Errorf("%w: public url %q must include scheme and host", ErrConfiguration, opts.PublicURL)
		}
	}

	return &MinioStorage{
		client:     client,
		bucket:     opts.Bucket,
		publicBase: publicBase,
	}, nil
}

// PresignPut mints a signed PUT URL scoped to (bucket, key, contentType,
// expires). Signing is a local cryptographic computation against the static
// credentials; the store is not contacted.
func (s *MinioStorage) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	extra := http.Header{}
	if contentType != "" {
		extra.Set("Content-Type", contentType)
	}

	signed, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, key, expires, url.Values{}, extra)
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}

	return rewriteAuthority(signed, s.publicBase).String(), nil
}

// ObjectURL returns the stable public URL for the given key, path-style:
// {base}/{bucket}/{key}. The base is the public override when configured,
// otherwise the internal endpoint.
func (s *MinioStorage) ObjectURL(key string) string {
	base := s.client.EndpointURL()
	if s.publicBase != nil {
		base = s.publicBase
	}
	return fmt.Sprintf("%s://%s/%s/%s", base.Scheme, base.Host, s.bucket, key)
}

// Upload streams reader to the store under key. size must be the exact byte
// count (pass -1 only if the size is genuinely unknown).
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Delete removes the object at key from the bucket.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// rewriteAuthority swaps the scheme and host of u for those of base, keeping
// path and query intact. A nil base returns u unchanged.
func rewriteAuthority(u, base *url.URL) *url.URL {
	if base == nil {
		return u
	}
	rewritten := *u
	rewritten.Scheme = base.Scheme
	rewritten.Host = base.Host
	return &rewritten
}
