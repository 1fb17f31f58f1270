// Package sigrecovery verifies the ECDSA signature over a proof's app_hash
// and recovers the signing address, following the same secp256k1 recovery
// path the teacher's signer package uses, adapted to the prover's
// domain-separated digest.
package sigrecovery

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/davidt58/peptide-event-verifier/eth"
)

// MinRecoveryIDRaw and MaxRecoveryIDRaw bound the accepted values of the
// proof's raw recovery-id byte: 27 or 28, matching the original program's
// secp256k1_recover primitive, which only accepts v of 0 or 1.
const (
	MinRecoveryIDRaw = 27
	MaxRecoveryIDRaw = 28
)

// InvalidRecoveryIDError reports a recovery-id byte outside
// [MinRecoveryIDRaw, MaxRecoveryIDRaw].
type InvalidRecoveryIDError struct {
	Got byte
}

func (e *InvalidRecoveryIDError) Error() string {
	return fmt.Sprintf("sigrecovery: recovery id %d is outside the valid range [%d, %d]", e.Got, MinRecoveryIDRaw, MaxRecoveryIDRaw)
}

// RecoverFailedError wraps the underlying secp256k1 recovery failure.
type RecoverFailedError struct {
	cause error
}

func (e *RecoverFailedError) Error() string {
	return fmt.Sprintf("sigrecovery: signature recovery failed: %v", e.cause)
}

func (e *RecoverFailedError) Unwrap() error {
	return e.cause
}

// Digest computes the domain-separated digest that the proof's signature is
// over: keccak256(32 zero bytes || chain_id_32 || keccak256(app_hash ||
// peptide_height)). Binding peptide_height and peptide_chain_id into the
// signed message prevents a proof signed for one height or chain from being
// replayed against another.
func Digest(appHash [32]byte, peptideHeight [8]byte, peptideChainID uint64) [32]byte {
	messageHash := crypto.Keccak256(appHash[:], peptideHeight[:])

	chainID32 := uint256.NewInt(peptideChainID).Bytes32()

	var zero [32]byte
	digest := crypto.Keccak256(zero[:], chainID32[:], messageHash)

	var out [32]byte
	copy(out[:], digest)
	return out
}

// Recover verifies an (r, s, recoveryIDRaw) signature over digest and
// returns the recovered signer address. recoveryIDRaw is the proof's raw
// byte (27 or 28, not 0 or 1); Recover subtracts 27 to obtain the v the
// underlying secp256k1 recovery expects.
func Recover(digest [32]byte, signature [64]byte, recoveryIDRaw byte) (eth.Address, error) {
	if recoveryIDRaw < MinRecoveryIDRaw || recoveryIDRaw > MaxRecoveryIDRaw {
		return eth.Address{}, &InvalidRecoveryIDError{Got: recoveryIDRaw}
	}
	v := recoveryIDRaw - MinRecoveryIDRaw

	sig := make([]byte, 65)
	copy(sig[:64], signature[:])
	sig[64] = v

	pubKey, err := crypto.SigToPub(digest[:], sig)
	if err != nil {
		return eth.Address{}, &RecoverFailedError{cause: err}
	}

	addr := crypto.PubkeyToAddress(*pubKey)
	return eth.NewAddress(addr.Bytes())
}
