package proverclient

// API endpoints exposed by the remote proof verification service.
const (
	// Initialize registers a client type's signer address and chain id.
	Initialize = "/initialize"

	// LoadProof appends a chunk of proof bytes to the service's cache.
	LoadProof = "/load-proof"

	// Verify runs verifier.Verify against the accumulated cache and
	// returns the resulting verifier.Result.
	Verify = "/verify"

	// ClearCache empties the service's proof cache.
	ClearCache = "/clear-cache"
)
