package main

import (
	"bytes"
	"encoding/binary"
	"errors"

	"koban_token/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeVarUint uses varints to keep counts and balances compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeVarInt mirrors writeVarUint but keeps sign info for timestamps.
func (w *binWriter) writeVarInt(v int64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutVarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount scaling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeVarInt(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing, so later parsing is easyer.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readVarInt() (int64, error) {
	val, n := binary.Varint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readAmount() (Amount, error) {
	v, err := r.readVarInt()
	return Amount(v), err
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	return AddressFromString(s), err
}

// -----------------------------------------------------------------------------
// Record Codecs
// -----------------------------------------------------------------------------

// EncodeHolder packs a Holder into bytes so storage stays lean and no json noise leaks.
// Example payload: EncodeHolder(&Holder{Address: AddressFromString("hive:alice"), Balance: 3})
func EncodeHolder(h *Holder) []byte {
	w := newWriter()
	w.writeAddress(h.Address)
	w.writeVarUint(h.Balance)
	w.writeAmount(h.SnapshotIndex)
	w.writeAmount(h.UnclaimedCredit)
	w.writeVarInt(h.LastClaimedAt)
	return w.bytes()
}

// DecodeHolder rehydrates a Holder from its binary form.
// Example payload: DecodeHolder(EncodeHolder(&Holder{Balance: 2}))
func DecodeHolder(data []byte) (*Holder, error) {
	r := newReader(data)
	h := &Holder{}
	var err error
	if h.Address, err = r.readAddress(); err != nil {
		return nil, err
	}
	if h.Balance, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if h.SnapshotIndex, err = r.readAmount(); err != nil {
		return nil, err
	}
	if h.UnclaimedCredit, err = r.readAmount(); err != nil {
		return nil, err
	}
	if h.LastClaimedAt, err = r.readVarInt(); err != nil {
		return nil, err
	}
	return h, nil
}

// EncodeLedger serializes the global issuance record.
func EncodeLedger(l *Ledger) []byte {
	w := newWriter()
	w.writeVarUint(l.TotalIssued)
	w.writeAmount(l.CumulativeIndex)
	return w.bytes()
}

// DecodeLedger mirrors EncodeLedger for reads.
func DecodeLedger(data []byte) (*Ledger, error) {
	r := newReader(data)
	l := &Ledger{}
	var err error
	if l.TotalIssued, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if l.CumulativeIndex, err = r.readAmount(); err != nil {
		return nil, err
	}
	return l, nil
}
