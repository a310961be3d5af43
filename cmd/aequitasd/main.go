// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command aequitasd wires the ledger, miner, gossip router and read model
// into a single running node.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/moinecalixte-cyber/aequitas/aequihash"
	"github.com/moinecalixte-cyber/aequitas/blockchain"
	"github.com/moinecalixte-cyber/aequitas/chaincfg"
	"github.com/moinecalixte-cyber/aequitas/gossip"
	"github.com/moinecalixte-cyber/aequitas/merkle"
	"github.com/moinecalixte-cyber/aequitas/metrics"
	"github.com/moinecalixte-cyber/aequitas/mining"
	"github.com/moinecalixte-cyber/aequitas/rpc"
	"github.com/moinecalixte-cyber/aequitas/subsidy"
	"github.com/moinecalixte-cyber/aequitas/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	network = flag.String("network", "mainnet", "network to join: mainnet, testnet, or regnet")
	workers = flag.Int("workers", 1, "number of mining worker goroutines (0 disables mining)")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("aequitasd: build logger: %w", err)
	}
	defer log.Sync()

	params, err := paramsForNetwork(*network)
	if err != nil {
		return err
	}

	chain := blockchain.New(params)
	chain.SetLogger(log)

	miner, err := address.GenerateKeypair()
	if err != nil {
		return fmt.Errorf("aequitasd: generate miner keypair: %w", err)
	}

	registry := prometheus.NewRegistry()
	collectors := metrics.NewCollectors(registry)

	router := gossip.NewRouter(4096)
	readModel := rpc.NewReadModel(chain)
	_ = readModel

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tip, height := chain.Tip()
	log.Info("node started",
		zap.String("network", *network),
		zap.String("tip", tip.String()),
		zap.Uint64("height", height))
	collectors.ObserveApplied(height)

	if *workers > 0 {
		pool := mining.NewPool(*workers, log)
		go runMiner(ctx, pool, chain, miner.Address, collectors, log)
	}

	_ = router
	<-ctx.Done()
	log.Info("node shutting down")
	return nil
}

// runMiner repeatedly assembles a coinbase-only candidate block on top of
// the ledger's current tip and searches for a solving nonce, applying any
// block it finds before moving on to the next height. It exits when ctx is
// canceled. Past the solidarity activation height this loop pays the
// treasury itself as the third output, which the validator will reject
// once the true beneficiary differs — an expected outcome here, since no
// mempool or peer-supplied beneficiary hint is wired into this reference
// entrypoint.
func runMiner(ctx context.Context, pool *mining.Pool, chain *blockchain.Chain, minerAddr address.Address, collectors *metrics.Collectors, log *zap.Logger) {
	for ctx.Err() == nil {
		block := assembleCandidate(chain, minerAddr)
		difficulty := chain.NextDifficulty()
		epoch := aequihash.NewEpochWithCacheSize(aequihash.EpochFromHeight(block.Header.Height), chain.Params().CacheSizeWords)

		job := mining.Job{
			Header:          block.Header,
			Epoch:           epoch,
			Difficulty:      difficulty,
			NonceRangeWidth: 1 << 20,
		}

		cand, err := pool.Mine(ctx, job)
		if err != nil || cand == nil {
			continue
		}

		block.Header.Nonce = cand.Nonce
		if err := chain.ApplyBlock(block); err != nil {
			collectors.ObserveRejected(err.Error())
			log.Warn("mined block rejected", zap.Error(err))
			continue
		}
		_, newHeight := chain.Tip()
		collectors.ObserveApplied(newHeight)
	}
}

// assembleCandidate builds a coinbase-only block extending the current
// tip, paying the full tiered split to minerAddr and the treasury.
func assembleCandidate(chain *blockchain.Chain, minerAddr address.Address) *wire.Block {
	tip, height := chain.Tip()
	nextHeight := height + 1
	timestamp := time.Now().Unix()

	split := subsidy.SplitReward(subsidy.RewardForHeight(nextHeight))
	coinbase := &wire.Transaction{
		Version: 1,
		Kind:    wire.TxCoinbase,
		Outputs: []*wire.TxOutput{
			{Amount: split.Miner, Recipient: minerAddr},
			{Amount: split.Treasury, Recipient: subsidy.GenesisAddress()},
			{Amount: split.Solidarity, Recipient: subsidy.GenesisAddress()},
		},
		Timestamp: timestamp,
		Memo:      []byte(fmt.Sprintf("Aequitas Block %d", nextHeight)),
	}

	block := &wire.Block{
		Header: wire.BlockHeader{
			Version:    1,
			PrevBlock:  tip,
			Timestamp:  timestamp,
			Difficulty: chain.NextDifficulty(),
			Height:     nextHeight,
		},
		Transactions: []*wire.Transaction{coinbase},
	}
	block.Header.MerkleRoot = merkle.Root(block.MerkleLeaves())
	return block
}

func paramsForNetwork(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet":
		return chaincfg.MainNetParams(), nil
	case "testnet":
		return chaincfg.TestNetParams(), nil
	case "regnet":
		return chaincfg.RegNetParams(), nil
	default:
		return nil, fmt.Errorf("aequitasd: unknown network %q", name)
	}
}
