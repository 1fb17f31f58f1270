// Package event parses the raw EVM log bytes carried inside a proof into
// their structured form: emitting contract, indexed topics, and unindexed
// data.
package event

import (
	"fmt"

	"github.com/davidt58/peptide-event-verifier/eth"
)

// MaxTopics is the largest number of indexed topics an EVM log event may
// carry in this wire format.
const MaxTopics = 4

const topicLength = 32

// Event is a parsed EVM log: the contract that emitted it, its indexed
// topics concatenated as one byte string, and its unindexed data.
type Event struct {
	EmittingContract eth.Address
	Topics           []byte
	UnindexedData    []byte
}

// NumTopics returns the number of 32-byte topics packed into Topics.
func (e Event) NumTopics() int {
	return len(e.Topics) / topicLength
}

// Parse decodes rawEvent (the proof's event-payload bytes,
// proof[123:event_end]) into an Event. rawEvent must be at least
// 20+32*numTopics bytes long; numTopics must not exceed MaxTopics.
func Parse(rawEvent []byte, numTopics byte) (Event, error) {
	if numTopics > MaxTopics {
		return Event{}, fmt.Errorf("event: num_topics %d exceeds maximum of %d", numTopics, MaxTopics)
	}

	topicsEnd := eth.AddressLength + topicLength*int(numTopics)
	if len(rawEvent) < topicsEnd {
		return Event{}, fmt.Errorf("event: raw event too short: got %d bytes, need at least %d", len(rawEvent), topicsEnd)
	}

	contract, err := eth.NewAddress(rawEvent[:eth.AddressLength])
	if err != nil {
		return Event{}, fmt.Errorf("event: invalid emitting contract: %w", err)
	}

	topics := make([]byte, topicsEnd-eth.AddressLength)
	copy(topics, rawEvent[eth.AddressLength:topicsEnd])

	data := make([]byte, len(rawEvent)-topicsEnd)
	copy(data, rawEvent[topicsEnd:])

	return Event{
		EmittingContract: contract,
		Topics:           topics,
		UnindexedData:    data,
	}, nil
}
