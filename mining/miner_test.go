// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"context"
	"testing"
	"time"

	"github.com/moinecalixte-cyber/aequitas/aequihash"
	"github.com/moinecalixte-cyber/aequitas/wire"
	"github.com/stretchr/testify/require"
)

func tinyEpoch() *aequihash.Epoch {
	return aequihash.NewEpochWithCacheSize(0, 1<<10)
}

func TestMineFindsSolutionAtDifficultyOne(t *testing.T) {
	pool := NewPool(2, nil)

	job := Job{
		Header:          wire.BlockHeader{Height: 1},
		Epoch:           tinyEpoch(),
		Difficulty:      1,
		NonceRangeWidth: 64,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cand, err := pool.Mine(ctx, job)
	require.NoError(t, err)
	require.NotNil(t, cand)
}

func TestMineRespectsCancellation(t *testing.T) {
	pool := NewPool(1, nil)

	job := Job{
		Header: wire.BlockHeader{Height: 1},
		Epoch:  tinyEpoch(),
		// An unreachable difficulty guarantees no nonce in the (tiny)
		// search range will ever satisfy the target.
		Difficulty:      ^uint64(0),
		NonceRangeWidth: 1 << 20,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	cand, err := pool.Mine(ctx, job)
	require.Error(t, err)
	require.Nil(t, cand)
}
