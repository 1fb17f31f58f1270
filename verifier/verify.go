package verifier

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/davidt58/peptide-event-verifier/event"
	"github.com/davidt58/peptide-event-verifier/eth"
	"github.com/davidt58/peptide-event-verifier/keybuilder"
	"github.com/davidt58/peptide-event-verifier/membership"
	"github.com/davidt58/peptide-event-verifier/proof"
	"github.com/davidt58/peptide-event-verifier/sigrecovery"
)

// Verify runs the full pipeline over raw proof bytes: header length guard,
// signature recovery against expectedSigner, membership folding against the
// proof's own app_hash, and event decoding. It never panics; every stage's
// bounds are checked explicitly and a failure at any stage short-circuits
// the remaining stages.
func Verify(proofBytes []byte, clientType string, expectedSigner eth.Address, peptideChainID uint64) Result {
	header, err := proof.ParseHeader(proofBytes)
	if err != nil {
		if lenErr, ok := err.(*proof.LengthError); ok {
			return Result{Kind: KindInvalidProof, Got: lenErr.Got, Needed: lenErr.Needed}
		}
		return Result{Kind: KindInvalidProof, Reason: err.Error()}
	}

	digest := sigrecovery.Digest(header.AppHash, header.PeptideHeightBytes(), peptideChainID)
	recovered, err := sigrecovery.Recover(digest, header.Signature, header.RecoveryID)
	if err != nil {
		return Result{Kind: KindInvalidSignature, Reason: err.Error()}
	}
	if !recovered.Equal(expectedSigner) {
		return Result{Kind: KindRecoveredInvalidSignerAddress, Recovered: recovered}
	}

	key := keybuilder.Build(header.SrcChainID, clientType, header.BlockNumber, header.TxIndex, header.LogIndex)
	value := crypto.Keccak256(header.RawEvent())

	computed, err := membership.Verify(header.MembershipProof(), key, value)
	if err != nil {
		return Result{Kind: KindInvalidMembershipProof, Reason: err.Error()}
	}
	if computed != header.AppHash {
		return Result{Kind: KindInvalidStateRoot, Computed: computed}
	}

	evt, err := event.Parse(header.RawEvent(), header.NumTopics)
	if err != nil {
		return Result{Kind: KindInvalidProof, Reason: err.Error()}
	}

	return Result{Kind: KindValid, ChainID: header.SrcChainID, Event: evt}
}
