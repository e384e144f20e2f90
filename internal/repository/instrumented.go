package repository

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/kyd-academy/feedback-api/pkg/errors"
)

// ObserveKVFunc receives one observation per store call.
type ObserveKVFunc func(op string, err error, duration time.Duration)

type instrumentedStore struct {
	inner   Store
	observe ObserveKVFunc
}

// NewInstrumentedStore decorates a Store with per-call observations. A key
// miss is reported as a successful call.
func NewInstrumentedStore(inner Store, observe ObserveKVFunc) Store {
	if observe == nil {
		return inner
	}
	return &instrumentedStore{inner: inner, observe: observe}
}

func (s *instrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	val, err := s.inner.Get(ctx, key)
	observed := err
	if errors.Is(err, apperrors.ErrKeyMissing) {
		observed = nil
	}
	s.observe("get", observed, time.Since(start))
	return val, err
}

func (s *instrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.inner.Set(ctx, key, value)
	s.observe("set", err, time.Since(start))
	return err
}

func (s *instrumentedStore) Del(ctx context.Context, key string) error {
	start := time.Now()
	err := s.inner.Del(ctx, key)
	s.observe("del", err, time.Since(start))
	return err
}
