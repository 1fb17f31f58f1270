// Package eth holds the small value types shared by the proof-verification
// pipeline: a fixed-size EVM address with hex constructors matching the
// on-chain peptide prover's conventions.
package eth

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AddressLength is the length in bytes of an EVM address.
const AddressLength = 20

// Address is an immutable 20-byte EVM address.
type Address [AddressLength]byte

// ZeroAddress is the all-zero EVM address.
var ZeroAddress = Address{}

// NewAddress builds an Address from exactly 20 bytes.
func NewAddress(b []byte) (Address, error) {
	var addr Address
	if len(b) != AddressLength {
		return addr, &invalidLengthError{got: len(b), want: AddressLength}
	}
	copy(addr[:], b)
	return addr, nil
}

// AddressFromHex parses a hex string into an Address. The "0x" prefix is
// optional. Inputs shorter than 20 bytes are left-zero-padded; inputs longer
// than 20 bytes keep only the right-most 20 bytes, matching how the peptide
// prover's EthAddress::from_hex behaves.
func AddressFromHex(s string) (Address, error) {
	var addr Address
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 != 0 {
		s = "0" + s
	}

	raw, err := hexutil.Decode("0x" + s)
	if err != nil {
		return addr, &hexParseError{input: s, cause: err}
	}

	if len(raw) >= AddressLength {
		copy(addr[:], raw[len(raw)-AddressLength:])
	} else {
		copy(addr[AddressLength-len(raw):], raw)
	}
	return addr, nil
}

// Bytes returns the address as a newly allocated byte slice.
func (a Address) Bytes() []byte {
	out := make([]byte, AddressLength)
	copy(out, a[:])
	return out
}

// Hex renders the address as lower-case hex with a "0x" prefix.
func (a Address) Hex() string {
	return "0x" + hexutil.Encode(a[:])[2:]
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Hex()
}

// Equal reports whether two addresses are byte-for-byte identical.
func (a Address) Equal(other Address) bool {
	return a == other
}

// IsZero reports whether the address is the all-zero address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

type invalidLengthError struct {
	got, want int
}

func (e *invalidLengthError) Error() string {
	return fmt.Sprintf("eth: invalid address length: got %d bytes, want %d", e.got, e.want)
}

type hexParseError struct {
	input string
	cause error
}

func (e *hexParseError) Error() string {
	return fmt.Sprintf("eth: invalid hex address %q: %v", e.input, e.cause)
}

func (e *hexParseError) Unwrap() error {
	return e.cause
}
