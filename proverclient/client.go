// Package proverclient is a thin HTTP client for a remote proof
// verification service: load proof chunks into its cache, then ask it to
// verify the accumulated proof, the HTTP analogue of the original tool's
// Solana RPC client (tools/proverctl/src/prover_client.rs) submitting
// instructions to the on-chain program.
package proverclient

import (
	"github.com/davidt58/peptide-event-verifier/errors"
	"github.com/davidt58/peptide-event-verifier/eth"
	"github.com/davidt58/peptide-event-verifier/httpclient"
)

// Client talks to a remote proof verification service over HTTP.
type Client struct {
	httpClient *httpclient.Client
}

// NewClient creates a Client targeting baseURL.
func NewClient(baseURL string) *Client {
	return &Client{httpClient: httpclient.NewClient(baseURL)}
}

// initializeRequest registers a client type's signer and chain id with the
// service, the HTTP analogue of sending the program's Initialize
// instruction.
type initializeRequest struct {
	ClientType     string `json:"client_type"`
	SignerAddr     string `json:"signer_addr"`
	PeptideChainID uint64 `json:"peptide_chain_id"`
}

// Initialize registers clientType, signerAddr and peptideChainID with the
// service.
func (c *Client) Initialize(clientType string, signerAddr eth.Address, peptideChainID uint64) error {
	if clientType == "" {
		return errors.ErrMissingRequiredField("clientType")
	}
	req := initializeRequest{
		ClientType:     clientType,
		SignerAddr:     signerAddr.Hex(),
		PeptideChainID: peptideChainID,
	}
	return c.httpClient.PostJSON(Initialize, nil, req, nil)
}

// loadProofRequest carries one chunk of proof bytes to append to the
// service's cache. json.Marshal renders []byte as base64.
type loadProofRequest struct {
	Chunk []byte `json:"chunk"`
}

// loadProofResponse reports the cache's total accumulated size after the
// chunk was appended.
type loadProofResponse struct {
	TotalBytes int `json:"total_bytes"`
}

// LoadProof appends chunk to the service's proof cache and returns the
// cache's new total size.
func (c *Client) LoadProof(chunk []byte) (int, error) {
	if len(chunk) == 0 {
		return 0, errors.ErrMissingRequiredField("chunk")
	}
	var resp loadProofResponse
	if err := c.httpClient.PostJSON(LoadProof, nil, loadProofRequest{Chunk: chunk}, &resp); err != nil {
		return 0, err
	}
	return resp.TotalBytes, nil
}

// verifyRequest asks the service to verify its accumulated proof cache
// against clientType's configured signer and chain id.
type verifyRequest struct {
	ClientType string `json:"client_type"`
}

// VerifyResponse is the wire shape of a verifier.Result, mirroring the
// payload publish.Publisher ships to a webhook.
type VerifyResponse struct {
	Kind      string `json:"kind"`
	ChainID   uint32 `json:"chain_id,omitempty"`
	Contract  string `json:"contract,omitempty"`
	Got       int    `json:"got,omitempty"`
	Needed    int    `json:"needed,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Recovered string `json:"recovered,omitempty"`
	Computed  string `json:"computed,omitempty"`
}

// Verify asks the service to verify its accumulated proof cache for
// clientType and returns the result.
func (c *Client) Verify(clientType string) (*VerifyResponse, error) {
	if clientType == "" {
		return nil, errors.ErrMissingRequiredField("clientType")
	}
	var resp VerifyResponse
	if err := c.httpClient.PostJSON(Verify, nil, verifyRequest{ClientType: clientType}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearCache empties the service's proof cache.
func (c *Client) ClearCache() error {
	_, err := c.httpClient.Post(ClearCache, nil, nil)
	return err
}
