package config

import (
	"os"
	"strconv"

	"github.com/davidt58/peptide-event-verifier/errors"
	"github.com/davidt58/peptide-event-verifier/eth"
)

// LoadFromEnv builds an AccountConfig from CLIENT_TYPE, SIGNER_ADDR, and
// PEPTIDE_CHAIN_ID environment variables. Callers that want .env support
// load it first with godotenv, the way cmd/proofctl does.
func LoadFromEnv() (*AccountConfig, error) {
	clientType := os.Getenv("CLIENT_TYPE")
	if clientType == "" {
		return nil, errors.ErrMissingRequiredField("CLIENT_TYPE")
	}

	signerAddrStr := os.Getenv("SIGNER_ADDR")
	if signerAddrStr == "" {
		return nil, errors.ErrMissingRequiredField("SIGNER_ADDR")
	}
	signerAddr, err := eth.AddressFromHex(signerAddrStr)
	if err != nil {
		return nil, errors.NewVerifierConfigError("invalid SIGNER_ADDR", err)
	}

	chainIDStr := os.Getenv("PEPTIDE_CHAIN_ID")
	if chainIDStr == "" {
		return nil, errors.ErrMissingRequiredField("PEPTIDE_CHAIN_ID")
	}
	chainID, err := strconv.ParseUint(chainIDStr, 10, 64)
	if err != nil {
		return nil, errors.NewVerifierConfigError("invalid PEPTIDE_CHAIN_ID", err)
	}

	return NewAccountConfig(clientType, signerAddr, chainID)
}
