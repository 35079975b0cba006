// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs bounded batches of independent jobs.
package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs jobs with at most Size of them in flight.
type Pool struct {
	size int
}

// NewPool creates a Pool. A non-positive size selects runtime.NumCPU().
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{size: size}
}

// Size returns the concurrency limit.
func (p *Pool) Size() int {
	return p.size
}

// Run calls job(ctx, i) for every i in [0, n). The first error cancels the
// context passed to the remaining jobs, stops scheduling new ones and is
// returned once every started job has finished. Jobs that observe a cancelled
// context should return ctx.Err().
func (p *Pool) Run(ctx context.Context, n int, job func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return job(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// The parent may have been cancelled between the last job and Wait.
	return ctx.Err()
}
