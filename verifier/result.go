// Package verifier orchestrates the proof-verification pipeline: header
// parsing, signature recovery, key reconstruction, membership folding, and
// event decoding, in that order, short-circuiting on the first failure.
package verifier

import (
	"fmt"

	"github.com/davidt58/peptide-event-verifier/event"
	"github.com/davidt58/peptide-event-verifier/eth"
)

// Kind discriminates the outcome of Verify. Callers switch on Kind rather
// than type-asserting an error, since a proof's result is a value with
// several data-bearing shapes, not a single error condition.
type Kind int

const (
	KindValid Kind = iota
	KindInvalidProof
	KindInvalidSignature
	KindRecoveredInvalidSignerAddress
	KindInvalidMembershipProof
	KindInvalidStateRoot
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindInvalidProof:
		return "invalid proof"
	case KindInvalidSignature:
		return "invalid signature"
	case KindRecoveredInvalidSignerAddress:
		return "recovered invalid signer address"
	case KindInvalidMembershipProof:
		return "invalid membership proof"
	case KindInvalidStateRoot:
		return "invalid state root"
	default:
		return "unknown"
	}
}

// Result is the outcome of Verify: a Kind tag plus the fields that Kind
// populates. Only the fields documented for the current Kind are
// meaningful; the rest are left at their zero value.
type Result struct {
	Kind Kind

	// KindValid
	ChainID uint32
	Event   event.Event

	// KindInvalidProof
	Got, Needed int

	// KindInvalidSignature / KindInvalidMembershipProof, and KindInvalidProof
	// failures that are not a length fault (Got and Needed are then zero)
	Reason string

	// KindRecoveredInvalidSignerAddress
	Recovered eth.Address

	// KindInvalidStateRoot
	Computed [32]byte
}

// String renders a human-readable form of Result, suitable for logging or
// for the publish layer to ship to a webhook as a plain message.
func (r Result) String() string {
	switch r.Kind {
	case KindValid:
		return fmt.Sprintf("valid: chain_id=%d contract=%s", r.ChainID, r.Event.EmittingContract.Hex())
	case KindInvalidProof:
		return fmt.Sprintf("invalid proof: got %d bytes, at least %d are needed", r.Got, r.Needed)
	case KindInvalidSignature:
		return fmt.Sprintf("invalid signature: %s", r.Reason)
	case KindRecoveredInvalidSignerAddress:
		return fmt.Sprintf("recovered invalid signer address: %s", r.Recovered.Hex())
	case KindInvalidMembershipProof:
		return fmt.Sprintf("invalid membership proof: %s", r.Reason)
	case KindInvalidStateRoot:
		return fmt.Sprintf("invalid state root: computed %x", r.Computed)
	default:
		return "unknown result"
	}
}
