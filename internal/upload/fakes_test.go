package upload

import (
	"context"
	"errors"
	"time"
)

// fakeRecord mirrors the metadata the protocol touches.
type fakeRecord struct {
	photoURLs []string
	awaiting  int32
}

type fakeSurveyStore struct {
	records   map[string]*fakeRecord
	existsErr error
	appendErr error
}

func newFakeSurveyStore(ids ...string) *fakeSurveyStore {
	records := map[string]*fakeRecord{}
	for _, id := range ids {
		records[id] = &fakeRecord{}
	}
	return &fakeSurveyStore{records: records}
}

func (f *fakeSurveyStore) Exists(_ context.Context, id string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.records[id]
	return ok, nil
}

func (f *fakeSurveyStore) AppendPhoto(_ context.Context, id, photoURL string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	rec, ok := f.records[id]
	if !ok {
		return errors.New("no row updated")
	}
	rec.photoURLs = append(rec.photoURLs, photoURL)
	if rec.awaiting > 0 {
		rec.awaiting--
	}
	return nil
}

type presignCall struct {
	key         string
	contentType string
	expires     time.Duration
}

type fakeObjectStore struct {
	presignErr error
	calls      []presignCall
}

func (f *fakeObjectStore) PresignPut(_ context.Context, key, contentType string, expires time.Duration) (string, error) {
	f.calls = append(f.calls, presignCall{key: key, contentType: contentType, expires: expires})
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "http://localhost:9000/survey-photos/" + key + "?X-Amz-Signature=test", nil
}

func (f *fakeObjectStore) ObjectURL(key string) string {
	return "http://localhost:9000/survey-photos/" + key
}
