// Package upload implements the two-phase photo upload protocol. A client
// first obtains a time-limited signed grant and pushes the photo bytes
// directly to the object store, then confirms the upload so the reference is
// reconciled into the survey record's metadata.
package upload

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	minExpirySeconds     = 60
	maxExpirySeconds     = 3600
	defaultExpirySeconds = 900

	defaultContentType = "application/octet-stream"
)

var (
	// ErrInvalidArgument covers malformed or missing input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrKeyMismatch is an ErrInvalidArgument for a file key outside the
	// survey's namespace. Surfaced as a plain client error so callers cannot
	// probe for foreign keys.
	ErrKeyMismatch = fmt.Errorf("%w: file_key does not match survey_id", ErrInvalidArgument)
	// ErrNotFound is returned when the survey record does not exist.
	ErrNotFound = errors.New("survey not found")
	// ErrUpstream is returned when the object store cannot sign a grant.
	ErrUpstream = errors.New("object store unavailable")
)

// SurveyStore is the metadata-store surface the coordinator needs.
type SurveyStore interface {
	Exists(ctx context.Context, id string) (bool, error)
	AppendPhoto(ctx context.Context, id, photoURL string) error
}

// ObjectStore is the object-store surface the coordinator needs.
type ObjectStore interface {
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	ObjectURL(key string) string
}

// Header is a request header the client must send verbatim on the direct PUT
// so the grant signature stays valid.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Grant authorizes exactly one upload attempt to exactly one object key. It is
// never persisted; expiry is enforced by the object store at PUT time.
type Grant struct {
	UploadURL       string   `json:"upload_url"`
	FileKey         string   `json:"file_key"`
	ExpiresIn       int64    `json:"expires_in"`
	RequiredHeaders []Header `json:"required_headers"`
}

// Coordinator mediates between the metadata store and the object store. It
// holds no state of its own and never retries: every failure surfaces to the
// caller before any side effect is attempted.
//
// Two consistency gaps are deliberate and must stay visible: confirmation
// trusts the client's claim that the PUT succeeded (no existence check against
// the store), and nothing reclaims blobs for grants that are issued but never
// confirmed.
type Coordinator struct {
	surveys SurveyStore
	objects ObjectStore
}

// NewCoordinator creates a Coordinator over the two injected collaborators.
func NewCoordinator(surveys SurveyStore, objects ObjectStore) *Coordinator {
	return &Coordinator{surveys: surveys, objects: objects}
}

// RequestGrant validates the survey exists and mints a signed PUT grant for a
// fresh object key under the survey's namespace. expiresIn is clamped into
// [60, 3600] seconds; values <= 0 mean unspecified and fall back to 900. Each
// call mints an independent key, so repeated calls are harmless.
func (c *Coordinator) RequestGrant(ctx context.Context, surveyID, filename, contentType string, expiresIn int64) (*Grant, error) {
	surveyID = strings.TrimSpace(surveyID)
	filename = strings.TrimSpace(filename)
	if surveyID == "" || filename == "" {
		return nil, fmt.Errorf("%w: survey_id and filename are required", ErrInvalidArgument)
	}

	exists, err := c.surveys.Exists(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("check survey: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	key := objectKey(surveyID, filename)
	expiry := clampExpiry(expiresIn)
	if contentType == "" {
		contentType = defaultContentType
	}

	uploadURL, err := c.objects.PresignPut(ctx, key, contentType, time.Duration(expiry)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &Grant{
		UploadURL: uploadURL,
		FileKey:   key,
		ExpiresIn: expiry,
		RequiredHeaders: []Header{
			{Name: "Content-Type", Value: contentType},
		},
	}, nil
}

// Confirm reconciles a client-claimed completed upload into the survey
// record: the key's ownership prefix is checked, the survey's existence is
// re-checked, and the resolved public URL is appended to the record in a
// single atomic metadata update.
//
// Confirming the same key twice appends the reference twice. There is no
// dedup key today; any future change to that must be deliberate.
func (c *Coordinator) Confirm(ctx context.Context, surveyID, fileKey string) error {
	surveyID = strings.TrimSpace(surveyID)
	fileKey = strings.TrimSpace(fileKey)
	if surveyID == "" || fileKey == "" {
		return fmt.Errorf("%w: survey_id and file_key are required", ErrInvalidArgument)
	}

	// Ownership boundary: a crafted key must not attach an object uploaded
	// for one survey onto another survey's record.
	if !strings.HasPrefix(fileKey, "surveys/"+surveyID+"/") {
		return ErrKeyMismatch
	}

	exists, err := c.surveys.Exists(ctx, surveyID)
	if err != nil {
		return fmt.Errorf("check survey: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	photoURL := c.objects.ObjectURL(fileKey)
	if err := c.surveys.AppendPhoto(ctx, surveyID, photoURL); err != nil {
		return fmt.Errorf("record photo reference: %w", err)
	}
	return nil
}

// objectKey derives "surveys/{surveyID}/{token}{ext}". The token is a fresh
// v4 UUID (122 random bits), which keeps keys unguessable and collision-free.
func objectKey(surveyID, filename string) string {
	return fmt.Sprintf("surveys/%s/%s%s", surveyID, uuid.NewString(), path.Ext(filename))
}

// clampExpiry folds out-of-range client input back into the allowed window
// instead of rejecting it.
func clampExpiry(seconds int64) int64 {
	switch {
	case seconds <= 0:
		return defaultExpirySeconds
	case seconds < minExpirySeconds:
		return minExpirySeconds
	case seconds > maxExpirySeconds:
		return maxExpirySeconds
	default:
		return seconds
	}
}
