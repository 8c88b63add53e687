package upload

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestGrantKeyShape(t *testing.T) {
	surveys := newFakeSurveyStore("s1")
	objects := &fakeObjectStore{}
	coord := NewCoordinator(surveys, objects)

	grant, err := coord.RequestGrant(context.Background(), "s1", "photo.jpg", "image/jpeg", 0)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^surveys/s1/[^/]+\.jpg$`), grant.FileKey)
	assert.Equal(t, int64(900), grant.ExpiresIn)
	assert.NotEmpty(t, grant.UploadURL)
	require.Len(t, grant.RequiredHeaders, 1)
	assert.Equal(t, Header{Name: "Content-Type", Value: "image/jpeg"}, grant.RequiredHeaders[0])

	// Repeated calls mint independent keys.
	again, err := coord.RequestGrant(context.Background(), "s1", "photo.jpg", "image/jpeg", 0)
	require.NoError(t, err)
	assert.NotEqual(t, grant.FileKey, again.FileKey)
}

func TestRequestGrantContentTypeDefault(t *testing.T) {
	objects := &fakeObjectStore{}
	coord := NewCoordinator(newFakeSurveyStore("s1"), objects)

	grant, err := coord.RequestGrant(context.Background(), "s1", "readme", "", 0)
	require.NoError(t, err)

	assert.Equal(t, "application/octet-stream", grant.RequiredHeaders[0].Value)
	require.Len(t, objects.calls, 1)
	assert.Equal(t, "application/octet-stream", objects.calls[0].contentType)
	// No extension on the filename, none on the key.
	assert.Regexp(t, `^surveys/s1/[^/.]+$`, grant.FileKey)
}

func TestRequestGrantExpiryClamp(t *testing.T) {
	tests := []struct {
		name      string
		expiresIn int64
		want      int64
	}{
		{"unspecified defaults", 0, 900},
		{"below minimum", 5, 60},
		{"above maximum", 999999, 3600},
		{"at minimum", 60, 60},
		{"at maximum", 3600, 3600},
		{"in range", 1200, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objects := &fakeObjectStore{}
			coord := NewCoordinator(newFakeSurveyStore("s1"), objects)

			grant, err := coord.RequestGrant(context.Background(), "s1", "photo.jpg", "image/jpeg", tt.expiresIn)
			require.NoError(t, err)

			assert.Equal(t, tt.want, grant.ExpiresIn)
			require.Len(t, objects.calls, 1)
			assert.Equal(t, time.Duration(tt.want)*time.Second, objects.calls[0].expires)
		})
	}
}

func TestRequestGrantMissingFields(t *testing.T) {
	objects := &fakeObjectStore{}
	coord := NewCoordinator(newFakeSurveyStore("s1"), objects)

	for _, args := range [][2]string{{"", "photo.jpg"}, {"s1", ""}, {"  ", "  "}} {
		_, err := coord.RequestGrant(context.Background(), args[0], args[1], "", 0)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
	assert.Empty(t, objects.calls)
}

func TestRequestGrantUnknownSurvey(t *testing.T) {
	objects := &fakeObjectStore{}
	coord := NewCoordinator(newFakeSurveyStore(), objects)

	_, err := coord.RequestGrant(context.Background(), "ghost", "photo.jpg", "", 0)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, objects.calls)
}

func TestRequestGrantPresignFailure(t *testing.T) {
	objects := &fakeObjectStore{presignErr: errors.New("signer broken")}
	coord := NewCoordinator(newFakeSurveyStore("s1"), objects)

	_, err := coord.RequestGrant(context.Background(), "s1", "photo.jpg", "", 0)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestConfirmAppendsReferenceAndDecrements(t *testing.T) {
	surveys := newFakeSurveyStore("s1")
	surveys.records["s1"].awaiting = 1
	coord := NewCoordinator(surveys, &fakeObjectStore{})

	err := coord.Confirm(context.Background(), "s1", "surveys/s1/abc.jpg")
	require.NoError(t, err)

	rec := surveys.records["s1"]
	require.Len(t, rec.photoURLs, 1)
	assert.Equal(t, "http://localhost:9000/survey-photos/surveys/s1/abc.jpg", rec.photoURLs[0])
	assert.Equal(t, int32(0), rec.awaiting)
}

func TestConfirmCounterFloorsAtZero(t *testing.T) {
	surveys := newFakeSurveyStore("s1")
	coord := NewCoordinator(surveys, &fakeObjectStore{})

	require.NoError(t, coord.Confirm(context.Background(), "s1", "surveys/s1/a.jpg"))
	require.NoError(t, coord.Confirm(context.Background(), "s1", "surveys/s1/b.jpg"))

	rec := surveys.records["s1"]
	assert.Len(t, rec.photoURLs, 2)
	assert.Equal(t, int32(0), rec.awaiting)
}

// Confirming the same key twice appends the reference twice. This pins the
// current behavior so introducing dedup later is a visible change.
func TestConfirmDuplicateKeyAppendsTwice(t *testing.T) {
	surveys := newFakeSurveyStore("s1")
	coord := NewCoordinator(surveys, &fakeObjectStore{})

	require.NoError(t, coord.Confirm(context.Background(), "s1", "surveys/s1/same.jpg"))
	require.NoError(t, coord.Confirm(context.Background(), "s1", "surveys/s1/same.jpg"))

	rec := surveys.records["s1"]
	require.Len(t, rec.photoURLs, 2)
	assert.Equal(t, rec.photoURLs[0], rec.photoURLs[1])
}

func TestConfirmKeyOutsideSurveyNamespace(t *testing.T) {
	surveys := newFakeSurveyStore("X", "Y")
	coord := NewCoordinator(surveys, &fakeObjectStore{})

	err := coord.Confirm(context.Background(), "X", "surveys/Y/abc.jpg")
	assert.ErrorIs(t, err, ErrKeyMismatch)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Empty(t, surveys.records["X"].photoURLs)
	assert.Empty(t, surveys.records["Y"].photoURLs)
}

func TestConfirmMissingFields(t *testing.T) {
	coord := NewCoordinator(newFakeSurveyStore("s1"), &fakeObjectStore{})

	assert.ErrorIs(t, coord.Confirm(context.Background(), "", "surveys/s1/a.jpg"), ErrInvalidArgument)
	assert.ErrorIs(t, coord.Confirm(context.Background(), "s1", ""), ErrInvalidArgument)
}

func TestConfirmUnknownSurvey(t *testing.T) {
	coord := NewCoordinator(newFakeSurveyStore(), &fakeObjectStore{})

	err := coord.Confirm(context.Background(), "ghost", "surveys/ghost/a.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfirmPersistenceFailure(t *testing.T) {
	surveys := newFakeSurveyStore("s1")
	surveys.appendErr = errors.New("connection reset")
	coord := NewCoordinator(surveys, &fakeObjectStore{})

	err := coord.Confirm(context.Background(), "s1", "surveys/s1/a.jpg")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrNotFound)
}
