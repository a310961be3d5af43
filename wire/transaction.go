// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"
	"io"

	"github.com/moinecalixte-cyber/aequitas/address"
	"github.com/moinecalixte-cyber/aequitas/chainhash"
)

// TxKind identifies the purpose of a transaction.
type TxKind uint8

// The set of transaction kinds a conforming node must recognize.
const (
	TxTransfer TxKind = iota
	TxCoinbase
	TxVote
	TxProposal
)

func (k TxKind) String() string {
	switch k {
	case TxTransfer:
		return "transfer"
	case TxCoinbase:
		return "coinbase"
	case TxVote:
		return "vote"
	case TxProposal:
		return "proposal"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Transaction validation errors, reported to the caller that introduced the
// offending transaction; none of them carry any ledger state change.
var (
	ErrNoInputs           = errors.New("transaction: no inputs")
	ErrNoOutputs          = errors.New("transaction: no outputs")
	ErrInvalidSignature   = errors.New("transaction: invalid signature")
	ErrInvalidPublicKey   = errors.New("transaction: invalid public key")
	ErrMemoTooLarge       = errors.New("transaction: memo too large")
	ErrCoinbaseWithInputs = errors.New("transaction: coinbase must not have inputs")
)

// TxInput references a previous output by (transaction hash, output index)
// and carries the Ed25519 proof of ownership over the spending transaction.
type TxInput struct {
	PrevTxHash  chainhash.Hash
	OutputIndex uint32
	Signature   []byte // 64 bytes once signed
	PublicKey   []byte // 32 bytes
}

// NewTxInput creates an unsigned input referencing the given previous
// output.
func NewTxInput(prevTxHash chainhash.Hash, outputIndex uint32) *TxInput {
	return &TxInput{PrevTxHash: prevTxHash, OutputIndex: outputIndex}
}

// Sign populates the input's signature and public key by signing message
// with kp.
func (in *TxInput) Sign(kp *address.Keypair, message []byte) {
	in.Signature = kp.Sign(message)
	in.PublicKey = append([]byte(nil), kp.Public...)
}

// Verify checks the input's embedded signature against message using its
// embedded public key.
func (in *TxInput) Verify(message []byte) error {
	if len(in.PublicKey) != ed25519.PublicKeySize {
		return ErrInvalidPublicKey
	}
	if len(in.Signature) != ed25519.SignatureSize {
		return ErrInvalidSignature
	}
	if !ed25519.Verify(in.PublicKey, message, in.Signature) {
		return ErrInvalidSignature
	}
	return nil
}

func (in *TxInput) serialize(w io.Writer) error {
	if _, err := w.Write(in.PrevTxHash[:]); err != nil {
		return err
	}
	if err := writeUint32(w, in.OutputIndex); err != nil {
		return err
	}
	if err := writeVarBytes(w, in.Signature); err != nil {
		return err
	}
	return writeVarBytes(w, in.PublicKey)
}

func (in *TxInput) deserialize(r io.Reader) error {
	if _, err := io.ReadFull(r, in.PrevTxHash[:]); err != nil {
		return err
	}
	idx, err := readUint32(r)
	if err != nil {
		return err
	}
	in.OutputIndex = idx
	if in.Signature, err = readVarBytes(r, ed25519.SignatureSize); err != nil {
		return err
	}
	in.PublicKey, err = readVarBytes(r, ed25519.PublicKeySize)
	return err
}

// TxOutput specifies a recipient and an amount, denominated in units of
// 10^-9 AEQ.
type TxOutput struct {
	Amount    uint64
	Recipient address.Address
}

func (out *TxOutput) serialize(w io.Writer) error {
	if err := writeUint64(w, out.Amount); err != nil {
		return err
	}
	_, err := w.Write(out.Recipient[:])
	return err
}

func (out *TxOutput) deserialize(r io.Reader) error {
	amt, err := readUint64(r)
	if err != nil {
		return err
	}
	out.Amount = amt
	_, err = io.ReadFull(r, out.Recipient[:])
	return err
}

// Transaction is the full Aequitas transaction structure: version, kind,
// ordered inputs and outputs, a signed timestamp and an optional memo.
type Transaction struct {
	Version   uint32
	Kind      TxKind
	Inputs    []*TxInput
	Outputs   []*TxOutput
	Timestamp int64
	Memo      []byte
}

// NewTransfer builds a version-1 transfer transaction from the given inputs
// and outputs. Inputs must still be signed with SigningMessage before the
// transaction is valid.
func NewTransfer(inputs []*TxInput, outputs []*TxOutput, timestamp int64) *Transaction {
	return &Transaction{
		Version:   1,
		Kind:      TxTransfer,
		Inputs:    inputs,
		Outputs:   outputs,
		Timestamp: timestamp,
	}
}

// NewCoinbase builds a coinbase transaction paying reward to recipient. The
// memo encodes the block height so that coinbase hashes never collide
// across heights.
func NewCoinbase(recipient address.Address, reward uint64, height uint64, timestamp int64) *Transaction {
	return &Transaction{
		Version:   1,
		Kind:      TxCoinbase,
		Outputs:   []*TxOutput{{Amount: reward, Recipient: recipient}},
		Timestamp: timestamp,
		Memo:      []byte(fmt.Sprintf("Aequitas Block %d", height)),
	}
}

// TotalOutputAmount sums every output's amount.
func (tx *Transaction) TotalOutputAmount() uint64 {
	var total uint64
	for _, out := range tx.Outputs {
		total += out.Amount
	}
	return total
}

// SigningMessage returns the canonical byte sequence that every input's
// signature must cover: version LE || per-input(prev_tx_hash ||
// output_index LE) || per-output(amount LE || recipient bytes) ||
// timestamp LE || memo.
func (tx *Transaction) SigningMessage() []byte {
	var buf bytes.Buffer
	_ = writeUint32(&buf, tx.Version)

	for _, in := range tx.Inputs {
		buf.Write(in.PrevTxHash[:])
		_ = writeUint32(&buf, in.OutputIndex)
	}
	for _, out := range tx.Outputs {
		_ = writeUint64(&buf, out.Amount)
		buf.Write(out.Recipient[:])
	}
	_ = writeInt64(&buf, tx.Timestamp)
	buf.Write(tx.Memo)
	return buf.Bytes()
}

// Serialize writes the canonical full encoding of tx, including input
// signatures and public keys, to w.
func (tx *Transaction) Serialize(w io.Writer) error {
	if err := writeUint32(w, tx.Version); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(tx.Kind)}); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(tx.Inputs))); err != nil {
		return err
	}
	for _, in := range tx.Inputs {
		if err := in.serialize(w); err != nil {
			return err
		}
	}
	if err := writeUint32(w, uint32(len(tx.Outputs))); err != nil {
		return err
	}
	for _, out := range tx.Outputs {
		if err := out.serialize(w); err != nil {
			return err
		}
	}
	if err := writeInt64(w, tx.Timestamp); err != nil {
		return err
	}
	return writeVarBytes(w, tx.Memo)
}

// DeserializeTransaction reads a transaction previously written by
// Serialize.
func DeserializeTransaction(r io.Reader) (*Transaction, error) {
	tx := &Transaction{}
	var err error
	if tx.Version, err = readUint32(r); err != nil {
		return nil, err
	}
	var kind [1]byte
	if _, err := io.ReadFull(r, kind[:]); err != nil {
		return nil, err
	}
	tx.Kind = TxKind(kind[0])

	numIn, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	tx.Inputs = make([]*TxInput, numIn)
	for i := range tx.Inputs {
		in := &TxInput{}
		if err := in.deserialize(r); err != nil {
			return nil, err
		}
		tx.Inputs[i] = in
	}

	numOut, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	tx.Outputs = make([]*TxOutput, numOut)
	for i := range tx.Outputs {
		out := &TxOutput{}
		if err := out.deserialize(r); err != nil {
			return nil, err
		}
		tx.Outputs[i] = out
	}

	if tx.Timestamp, err = readInt64(r); err != nil {
		return nil, err
	}
	if tx.Memo, err = readVarBytes(r, MaxMemoSize); err != nil {
		return nil, err
	}
	return tx, nil
}

// Bytes returns the canonical serialization of tx.
func (tx *Transaction) Bytes() []byte {
	var buf bytes.Buffer
	// Serialize never fails writing into a bytes.Buffer.
	_ = tx.Serialize(&buf)
	return buf.Bytes()
}

// Hash returns the Keccak-256 hash of the transaction's canonical
// serialization, including signatures.
func (tx *Transaction) Hash() chainhash.Hash {
	return chainhash.HashH(tx.Bytes())
}

// Validate applies the structural and signature rules of §4.3. Coinbase
// transactions skip signature verification entirely; other kinds require
// non-empty inputs/outputs and a valid signature on every input.
func (tx *Transaction) Validate() error {
	if tx.Kind == TxCoinbase {
		if len(tx.Inputs) != 0 {
			return ErrCoinbaseWithInputs
		}
		if len(tx.Outputs) == 0 {
			return ErrNoOutputs
		}
		return nil
	}

	if len(tx.Inputs) == 0 {
		return ErrNoInputs
	}
	if len(tx.Outputs) == 0 {
		return ErrNoOutputs
	}
	if len(tx.Memo) > MaxMemoSize {
		return ErrMemoTooLarge
	}

	message := tx.SigningMessage()
	for _, in := range tx.Inputs {
		if err := in.Verify(message); err != nil {
			return err
		}
	}
	return nil
}
