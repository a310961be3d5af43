// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorCode identifies a kind of rule violation returned by the block
// validator. The zero value is ErrInvalidPrevHash.
type ErrorCode int

// The closed set of chain-validation error codes, per the error handling
// design: a rejection never leaves the ledger mutated.
const (
	ErrInvalidPrevHash ErrorCode = iota
	ErrInvalidHeight
	ErrInvalidDifficulty
	ErrInvalidMerkleRoot
	ErrInsufficientProofOfWork
	ErrNoCoinbase
	ErrInvalidCoinbaseAmount
	ErrInvalidSolidarityRecipient
	ErrDoubleSpend
	ErrMissingUtxo
	ErrTransactionInvalid
)

var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidPrevHash:           "InvalidPrevHash",
	ErrInvalidHeight:             "InvalidHeight",
	ErrInvalidDifficulty:         "InvalidDifficulty",
	ErrInvalidMerkleRoot:         "InvalidMerkleRoot",
	ErrInsufficientProofOfWork:   "InsufficientProofOfWork",
	ErrNoCoinbase:                "NoCoinbase",
	ErrInvalidCoinbaseAmount:     "InvalidCoinbaseAmount",
	ErrInvalidSolidarityRecipient: "InvalidSolidarityRecipient",
	ErrDoubleSpend:               "DoubleSpend",
	ErrMissingUtxo:               "MissingUtxo",
	ErrTransactionInvalid:        "TransactionInvalid",
}

func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(e))
}

// RuleError identifies a rule violation encountered while validating a
// candidate block or transaction. It carries both a machine-checkable
// ErrorCode and a human-readable description.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// IsErrorCode reports whether err is a RuleError carrying the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	rerr, ok := err.(RuleError)
	return ok && rerr.ErrorCode == c
}
