// Package keybuilder reconstructs the storage key that a proof's event is
// expected to be filed under, so membership.Verify can fold the proof's path
// against that key instead of trusting one embedded in the wire format.
package keybuilder

import "fmt"

// Build returns the storage key for an event at the given coordinates:
// "chain/{srcChainID}/storedLogs/{clientType}/{blockNumber}/{txIndex}/{logIndex}".
func Build(srcChainID uint32, clientType string, blockNumber uint64, txIndex uint16, logIndex byte) string {
	return fmt.Sprintf("chain/%d/storedLogs/%s/%d/%d/%d", srcChainID, clientType, blockNumber, txIndex, logIndex)
}
