// Package config holds the Go analogue of the on-chain account the
// original Solana program keeps per configured client: the expected
// client type, signer address, and peptide chain id a proof is checked
// against.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/davidt58/peptide-event-verifier/errors"
	"github.com/davidt58/peptide-event-verifier/eth"
)

// MaxClientTypeLength is the largest UTF-8 byte length accepted for
// ClientType, mirroring the original program's fixed-size account field.
const MaxClientTypeLength = 32

// AccountConfig holds the parameters a proof is verified against: the
// client type that must appear in its storage key, the signer address its
// recovered signature must match, and the peptide chain id bound into its
// signature digest.
type AccountConfig struct {
	ClientType     string
	SignerAddr     eth.Address
	PeptideChainID uint64
}

// NewAccountConfig builds an AccountConfig, validating ClientType and
// SignerAddr.
func NewAccountConfig(clientType string, signerAddr eth.Address, peptideChainID uint64) (*AccountConfig, error) {
	cfg := &AccountConfig{
		ClientType:     clientType,
		SignerAddr:     signerAddr,
		PeptideChainID: peptideChainID,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that ClientType is non-empty, valid UTF-8, and no longer
// than MaxClientTypeLength bytes, and that SignerAddr is not the zero
// address.
func (c *AccountConfig) Validate() error {
	if c.ClientType == "" {
		return errors.ErrMissingRequiredField("ClientType")
	}
	if !utf8.ValidString(c.ClientType) {
		return errors.ErrInvalidConfiguration("ClientType must be valid UTF-8")
	}
	if len(c.ClientType) > MaxClientTypeLength {
		return errors.ErrInvalidConfiguration(fmt.Sprintf("ClientType must be at most %d bytes, got %d", MaxClientTypeLength, len(c.ClientType)))
	}
	if c.SignerAddr.IsZero() {
		return errors.ErrMissingRequiredField("SignerAddr")
	}
	return nil
}

// String returns a human-readable representation of the configuration.
func (c *AccountConfig) String() string {
	return fmt.Sprintf("AccountConfig{ClientType: %s, SignerAddr: %s, PeptideChainID: %d}",
		c.ClientType, c.SignerAddr.Hex(), c.PeptideChainID)
}
