// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subsidy

import "github.com/moinecalixte-cyber/aequitas/address"

// SelectBeneficiary chooses the solidarity beneficiary from candidates,
// the ordered (by ascending block height, i.e. oldest first) list of
// coinbase-first-output recipients in the scanned window. balanceOf
// reports a candidate's current ledger balance.
//
// Selection always returns the first-seen candidate among those tied for
// the smallest balance: candidates is scanned in order and only a
// strictly smaller balance displaces the current best, so the result is
// deterministic and reproducible across nodes — unlike a hash-map-based
// scan, whose iteration order is not guaranteed. If candidates is empty,
// fallback is returned.
func SelectBeneficiary(candidates []address.Address, balanceOf func(address.Address) uint64, fallback address.Address) address.Address {
	seen := make(map[address.Address]bool, len(candidates))
	best := fallback
	var bestBalance uint64
	found := false

	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true

		bal := balanceOf(c)
		if !found || bal < bestBalance {
			best = c
			bestBalance = bal
			found = true
		}
	}
	return best
}
