// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsErrorCodeMatchesOnlyExpectedCode(t *testing.T) {
	err := ruleError(ErrDoubleSpend, "spent twice")
	require.True(t, IsErrorCode(err, ErrDoubleSpend))
	require.False(t, IsErrorCode(err, ErrMissingUtxo))
}

func TestIsErrorCodeRejectsNonRuleError(t *testing.T) {
	require.False(t, IsErrorCode(nil, ErrDoubleSpend))
}

func TestErrorCodeStringKnownAndUnknown(t *testing.T) {
	require.Equal(t, "DoubleSpend", ErrDoubleSpend.String())
	require.Contains(t, ErrorCode(999).String(), "999")
}
