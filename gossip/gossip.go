// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gossip defines the pub/sub boundary between a node and its
// peers: two topics, block announcements and transaction announcements,
// each with independent admission rules.
package gossip

import (
	"context"
	"sync"

	"github.com/moinecalixte-cyber/aequitas/chainhash"
	"github.com/moinecalixte-cyber/aequitas/wire"
)

// Topic names peers subscribe to.
const (
	TopicBlocks       = "aequitas/blocks/1"
	TopicTransactions = "aequitas/tx/1"
)

// Sink is anything that accepts a published message for a topic.
type Sink interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// Source is anything that delivers messages for topics it has been told
// to watch.
type Source interface {
	Subscribe(ctx context.Context, topic string) (<-chan []byte, error)
}

// BlockValidator checks a gossiped block and, if it is valid, applies it to
// the local ledger. It is the same surface
// blockchain.Chain.ApplyBlock exposes, kept as an interface here so gossip
// has no import-time dependency on the ledger package.
type BlockValidator interface {
	ApplyBlock(block *wire.Block) error
}

// Router is an in-memory Sink and Source, useful for single-process tests
// and as the default wiring before a real transport is plugged in. It
// fans every publish out to all subscribers of that topic.
type Router struct {
	mu   sync.Mutex
	subs map[string][]chan []byte

	mu2      sync.Mutex
	seenTx   map[chainhash.Hash]struct{}
	seenCap  int
	seenList []chainhash.Hash
}

// NewRouter constructs an empty in-memory router. seenCap bounds the
// transaction dedupe set; once full, the oldest entry is evicted to make
// room for the newest, following a simple FIFO policy.
func NewRouter(seenCap int) *Router {
	if seenCap < 1 {
		seenCap = 1
	}
	return &Router{
		subs:    make(map[string][]chan []byte),
		seenTx:  make(map[chainhash.Hash]struct{}),
		seenCap: seenCap,
	}
}

// Subscribe returns a channel that receives every payload later published
// to topic.
func (r *Router) Subscribe(ctx context.Context, topic string) (<-chan []byte, error) {
	ch := make(chan []byte, 64)
	r.mu.Lock()
	r.subs[topic] = append(r.subs[topic], ch)
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		defer r.mu.Unlock()
		subs := r.subs[topic]
		for i, c := range subs {
			if c == ch {
				r.subs[topic] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		close(ch)
	}()

	return ch, nil
}

// Publish fans payload out to every current subscriber of topic. A slow or
// full subscriber is skipped rather than allowed to block the publisher.
func (r *Router) Publish(ctx context.Context, topic string, payload []byte) error {
	r.mu.Lock()
	subs := append([]chan []byte(nil), r.subs[topic]...)
	r.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- payload:
		default:
		}
	}
	return nil
}

// AdmitTransaction reports whether hash has not already been seen on the
// transaction topic, recording it as seen either way a prior admission
// does not re-announce. This is the dedupe gate mempool admission applies
// before a transaction is relayed further.
func (r *Router) AdmitTransaction(hash chainhash.Hash) bool {
	r.mu2.Lock()
	defer r.mu2.Unlock()

	if _, ok := r.seenTx[hash]; ok {
		return false
	}

	if len(r.seenList) >= r.seenCap {
		oldest := r.seenList[0]
		r.seenList = r.seenList[1:]
		delete(r.seenTx, oldest)
	}
	r.seenTx[hash] = struct{}{}
	r.seenList = append(r.seenList, hash)
	return true
}
