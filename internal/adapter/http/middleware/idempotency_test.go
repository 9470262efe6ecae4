package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeIdempotencyStore struct {
	checkAndSetFn func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	updateFn      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func (s *fakeIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if s.checkAndSetFn == nil {
		return false, nil, nil
	}
	return s.checkAndSetFn(ctx, key, response, ttl)
}

func (s *fakeIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, key, response, ttl)
}

func TestIdempotencyMiddleware_ReplaysCachedResponse(t *testing.T) {
	cached := []byte(`{"id":"01A","balance_after":"700"}`)
	store := &fakeIdempotencyStore{
		checkAndSetFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return true, cached, nil
		},
	}
	mw := NewIdempotencyMiddleware(store, time.Minute)

	var called bool
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements/expense", bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rr := httptest.NewRecorder()

	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rr, req)

	if called {
		t.Fatalf("handler should not run on replay")
	}
	if rr.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatalf("expected replay header")
	}
	if rr.Body.String() != string(cached) {
		t.Fatalf("expected cached body, got %s", rr.Body.String())
	}
}

func TestIdempotencyMiddleware_SkipsRequestsWithoutKey(t *testing.T) {
	store := &fakeIdempotencyStore{
		checkAndSetFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			t.Fatalf("store should not be consulted without a key")
			return false, nil, nil
		},
	}
	mw := NewIdempotencyMiddleware(store, time.Minute)

	var called bool
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rr, req)

	if !called {
		t.Fatalf("handler should run without idempotency key")
	}
}

func TestIdempotencyMiddleware_FailsClosedOnStoreError(t *testing.T) {
	var called bool
	store := &fakeIdempotencyStore{
		checkAndSetFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return false, nil, context.DeadlineExceeded
		},
	}
	mw := NewIdempotencyMiddleware(store, time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "key-err")
	rr := httptest.NewRecorder()

	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rr, req)

	if called {
		t.Fatalf("handler should not be called when store errors")
	}
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}

func TestIdempotencyMiddleware_DoesNotCacheFailedResponses(t *testing.T) {
	var updated bool
	store := &fakeIdempotencyStore{
		updateFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) error {
			updated = true
			return nil
		},
	}
	mw := NewIdempotencyMiddleware(store, time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "key-fail")
	rr := httptest.NewRecorder()

	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid movement"}`))
	})).ServeHTTP(rr, req)

	if updated {
		t.Fatalf("failed responses must not be cached for replay")
	}
}
