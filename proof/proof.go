// Package proof decodes the fixed-layout peptide proof byte string into its
// typed header fields. It performs the length guard that is step 1 of the
// verification pipeline and nothing else: every multi-byte integer is
// decoded big-endian from an absolute offset, with explicit bounds checks.
package proof

import (
	"encoding/binary"
	"fmt"
)

// Offsets and lengths of the fixed-size proof header, per the peptide
// prover's wire format. All fields up to and including EventEnd occupy
// exactly MinHeaderLength bytes.
const (
	offAppHash       = 0
	lenAppHash       = 32
	offSignature     = 32
	lenSignature     = 64
	offRecoveryID    = 96
	offSrcChainID    = 97
	lenSrcChainID    = 4
	offPeptideHeight = 101
	lenPeptideHeight = 8
	offBlockNumber   = 109
	lenBlockNumber   = 8
	offTxIndex       = 117
	lenTxIndex       = 2
	offLogIndex      = 119
	offNumTopics     = 120
	offEventEnd      = 121
	lenEventEnd      = 2
	offRawEvent      = 123

	// MinHeaderLength is the minimum size of a proof: the fixed header
	// before any event or membership-proof bytes.
	MinHeaderLength = offRawEvent
)

// Header is the proof's fixed-offset header, fully decoded, plus the
// original proof bytes so callers can slice the raw event and membership
// proof without re-deriving offsets.
type Header struct {
	AppHash       [32]byte
	Signature     [64]byte
	RecoveryID    byte
	SrcChainID    uint32
	PeptideHeight uint64
	BlockNumber   uint64
	TxIndex       uint16
	LogIndex      byte
	NumTopics     byte
	EventEnd      uint16

	raw []byte
}

// LengthError reports that the proof was shorter than some required size.
// Got and Needed mirror spec.md's InvalidProof{got, needed} failure.
type LengthError struct {
	Got, Needed int
}

func (e *LengthError) Error() string {
	return "proof: too short"
}

// ParseHeader validates the minimum proof length, reads the fixed header
// fields, and validates that the declared EventEnd lies within the proof and
// not before the end of the fixed header. It does not validate NumTopics or
// the raw event body beyond EventEnd bounds: that is event.Parse's job, once
// the caller has sliced raw[123:EventEnd].
func ParseHeader(raw []byte) (*Header, error) {
	if len(raw) < MinHeaderLength {
		return nil, &LengthError{Got: len(raw), Needed: MinHeaderLength}
	}

	h := &Header{raw: raw}
	copy(h.AppHash[:], raw[offAppHash:offAppHash+lenAppHash])
	copy(h.Signature[:], raw[offSignature:offSignature+lenSignature])
	h.RecoveryID = raw[offRecoveryID]
	h.SrcChainID = binary.BigEndian.Uint32(raw[offSrcChainID : offSrcChainID+lenSrcChainID])
	h.PeptideHeight = binary.BigEndian.Uint64(raw[offPeptideHeight : offPeptideHeight+lenPeptideHeight])
	h.BlockNumber = binary.BigEndian.Uint64(raw[offBlockNumber : offBlockNumber+lenBlockNumber])
	h.TxIndex = binary.BigEndian.Uint16(raw[offTxIndex : offTxIndex+lenTxIndex])
	h.LogIndex = raw[offLogIndex]
	h.NumTopics = raw[offNumTopics]
	h.EventEnd = binary.BigEndian.Uint16(raw[offEventEnd : offEventEnd+lenEventEnd])

	if int(h.EventEnd) > len(raw) {
		return nil, &LengthError{Got: len(raw), Needed: int(h.EventEnd)}
	}
	if int(h.EventEnd) < MinHeaderLength {
		return nil, fmt.Errorf("proof: event_end %d lies inside the %d-byte header", h.EventEnd, MinHeaderLength)
	}

	return h, nil
}

// PeptideHeightBytes returns the big-endian 8-byte encoding of PeptideHeight,
// as it appears verbatim in the proof and as the signature domain separator
// expects it.
func (h *Header) PeptideHeightBytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h.PeptideHeight)
	return b
}

// RawEvent returns proof[123:EventEnd], the bytes that keccak256-hash into
// the membership leaf value and that event.Parse decodes.
func (h *Header) RawEvent() []byte {
	return h.raw[offRawEvent:h.EventEnd]
}

// MembershipProof returns proof[EventEnd:], the path list membership.Verify
// folds against AppHash.
func (h *Header) MembershipProof() []byte {
	return h.raw[h.EventEnd:]
}
