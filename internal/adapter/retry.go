package adapter

import (
	"context"
	"errors"
	"time"
)

// defaultRetryDelays is the fixed backoff schedule applied when the config
// carries none. Three retries, no jitter.
var defaultRetryDelays = []time.Duration{
	350 * time.Millisecond,
	900 * time.Millisecond,
	1800 * time.Millisecond,
}

// sleeper suspends for d or until ctx is done. Injectable so tests can
// observe the schedule without waiting it out.
type sleeper func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retrier re-runs an operation on a fixed delay schedule. Only [*APIError]
// values reporting Retryable() are retried; everything else (including
// [ErrSyncTokenExpired]) propagates immediately. Exhausting the schedule
// re-raises the last error.
type retrier struct {
	delays []time.Duration
	sleep  sleeper
}

func newRetrier(delays []time.Duration) *retrier {
	if len(delays) == 0 {
		delays = defaultRetryDelays
	}

	return &retrier{delays: delays, sleep: defaultSleep}
}

func (r *retrier) do(ctx context.Context, op func() error) error {
	attempt := 0

	for {
		err := op()
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.Retryable() || attempt >= len(r.delays) {
			return err
		}

		if sleepErr := r.sleep(ctx, r.delays[attempt]); sleepErr != nil {
			return errors.Join(sleepErr, err)
		}
		attempt++
	}
}
