// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"
)

// DefaultRefreshInterval is used when the configured interval is not positive.
const DefaultRefreshInterval = time.Minute

type tokenRefreshJob struct {
	refresher TokenRefresher
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTokenRefreshJob creates a job that calls refresher.RefreshIfExpiring on
// a ticker. If interval is zero or negative it defaults to
// [DefaultRefreshInterval]. The job is idle until Start is called.
func NewTokenRefreshJob(refresher TokenRefresher, interval time.Duration) ClientTokenRefreshJob {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &tokenRefreshJob{refresher: refresher, interval: interval}
}

// Start implements ClientTokenRefreshJob. It stops any previously running
// job, then launches a background goroutine that checks the tokens right away
// and then every interval. Errors are logged by the refresher and do not stop
// the job. The goroutine exits when ctx is cancelled or Stop is called.
func (j *tokenRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		_, _ = j.refresher.RefreshIfExpiring(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.refresher.RefreshIfExpiring(jobCtx)
			}
		}
	}()
}

// Stop implements ClientTokenRefreshJob. It cancels the background
// goroutine's context and blocks until the goroutine has fully exited. Safe
// to call when the job is not running (no-op in that case).
func (j *tokenRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
