package retrier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/projectcalico/k8st/internal/retrier"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retrier.Do(context.Background(), 3, time.Millisecond, func(context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Do returned %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retrier.Do(context.Background(), 5, time.Millisecond, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do returned %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestDoExhaustionReturnsLastError(t *testing.T) {
	t.Parallel()

	sentinelErr := errors.New("still failing")
	calls := 0
	err := retrier.Do(context.Background(), 4, time.Millisecond, func(context.Context) error {
		calls++
		return sentinelErr
	})
	if err == nil {
		t.Fatal("Do returned nil, want error")
	}
	if !errors.Is(err, sentinelErr) {
		t.Errorf("Do error %v does not wrap the last attempt error", err)
	}
	if calls != 4 {
		t.Errorf("fn called %d times, want 4", calls)
	}
}

func TestDoRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retrier.Do(ctx, 100, 10*time.Millisecond, func(context.Context) error {
		calls++
		if calls == 2 {
			cancel()
		}
		return errors.New("keep going")
	})
	if err == nil {
		t.Fatal("Do returned nil after cancellation, want error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do error %v does not wrap context.Canceled", err)
	}
	if calls > 3 {
		t.Errorf("fn called %d times after cancellation, want few", calls)
	}
}

func TestDoRejectsNonPositiveAttempts(t *testing.T) {
	t.Parallel()

	err := retrier.Do(context.Background(), 0, time.Millisecond, func(context.Context) error {
		t.Error("fn should not be called")
		return nil
	})
	if err == nil {
		t.Error("Do with 0 attempts returned nil, want error")
	}
}
