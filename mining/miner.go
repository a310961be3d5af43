// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining implements the AequiHash worker pool: disjoint
// nonce-range partitioning across workers, a bounded candidate-submission
// channel, and cooperative cancellation.
package mining

import (
	"context"

	"github.com/moinecalixte-cyber/aequitas/aequihash"
	"github.com/moinecalixte-cyber/aequitas/wire"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// checkpointInterval is how many hash attempts a worker makes between
// cancellation checks, per the concurrency model.
const checkpointInterval = 10_000

// Candidate is a solved header ready for submission to the validator: the
// nonce a worker found and the digest it produced.
type Candidate struct {
	Nonce  uint64
	Digest [32]byte
}

// Job describes the header a pool of workers should search for a valid
// nonce against.
type Job struct {
	Header     wire.BlockHeader
	Epoch      *aequihash.Epoch
	Difficulty uint64

	// NonceRangeWidth is the number of nonces assigned to each worker;
	// worker i searches [i*NonceRangeWidth, (i+1)*NonceRangeWidth).
	NonceRangeWidth uint64
}

// Pool runs NumWorkers goroutines, each scanning a disjoint nonce range of
// the same job, and reports the first valid solution found through a
// bounded channel. Losing nonces are discarded; the pool stops all workers
// as soon as one wins or ctx is canceled.
type Pool struct {
	NumWorkers int
	log        *zap.Logger
}

// NewPool constructs a worker pool of the given width.
func NewPool(numWorkers int, log *zap.Logger) *Pool {
	if log == nil {
		log = zap.NewNop()
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Pool{NumWorkers: numWorkers, log: log}
}

// Mine searches job's nonce space until a worker finds a solution meeting
// job.Difficulty or ctx is canceled. The winning candidate is the first
// one delivered; every other in-flight worker is canceled immediately.
func (p *Pool) Mine(ctx context.Context, job Job) (*Candidate, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	found := make(chan Candidate, 1)
	group, gctx := errgroup.WithContext(ctx)

	headerHash := job.Header.PowHeaderHash()
	target := aequihash.Target(job.Difficulty)

	for i := 0; i < p.NumWorkers; i++ {
		workerID := uint64(i)
		start := workerID * job.NonceRangeWidth
		end := start + job.NonceRangeWidth

		group.Go(func() error {
			return searchRange(gctx, headerHash, job.Epoch, target, start, end, found)
		})
	}

	go func() {
		_ = group.Wait()
		close(found)
	}()

	select {
	case cand, ok := <-found:
		cancel()
		if !ok {
			return nil, ctx.Err()
		}
		p.log.Info("mining worker found a solution", zap.Uint64("nonce", cand.Nonce))
		return &cand, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// searchRange scans nonces in [start, end) for one whose AequiHash light
// digest meets target, checking for cancellation every checkpointInterval
// attempts. A found solution is sent to found (non-blocking: the channel
// is buffered for exactly one winner) and the function returns nil.
func searchRange(ctx context.Context, headerHash [32]byte, epoch *aequihash.Epoch, target [32]byte, start, end uint64, found chan<- Candidate) error {
	for nonce := start; nonce < end; nonce++ {
		if nonce-start != 0 && (nonce-start)%checkpointInterval == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		digest := aequihash.HashLight(headerHash, nonce, epoch)
		if aequihash.MeetsTarget(digest, target) {
			select {
			case found <- Candidate{Nonce: nonce, Digest: digest}:
			default:
			}
			return nil
		}
	}
	return nil
}
