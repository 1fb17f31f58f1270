package membership

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return b
}

// TestVerify_S1 folds the real s1 fixture's membership proof and checks the
// computed root matches that proof's app_hash.
func TestVerify_S1(t *testing.T) {
	mp := mustDecode(t, "0102020aabababababababab")
	rawEvent := mustDecode(t, "70abbbaf7fc18b3672c52397c4df070bf9cdd8c9ddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef00000000000000000000000000000000000000000000000000000000000003e8")
	wantRoot := mustDecode(t, "0ea1e7ed43ba4ab3fb8295904b8c577e1ca4e8d70149b9f6a4572d320c8a7397")

	value := crypto.Keccak256(rawEvent)
	key := "chain/84532/storedLogs/proof_api/123456/7/2"

	root, err := Verify(mp, key, value)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !bytes.Equal(root[:], wantRoot) {
		t.Errorf("computed root = %x, want %x", root, wantRoot)
	}
}

func TestVerify_WrongKeyProducesDifferentRoot(t *testing.T) {
	mp := mustDecode(t, "0102020aabababababababab")
	rawEvent := mustDecode(t, "70abbbaf7fc18b3672c52397c4df070bf9cdd8c9ddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef00000000000000000000000000000000000000000000000000000000000003e8")
	wantRoot := mustDecode(t, "0ea1e7ed43ba4ab3fb8295904b8c577e1ca4e8d70149b9f6a4572d320c8a7397")

	value := crypto.Keccak256(rawEvent)
	root, err := Verify(mp, "chain/84532/storedLogs/proof_api/123456/7/3", value)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if bytes.Equal(root[:], wantRoot) {
		t.Error("expected a different root for a different key")
	}
}

func TestVerify_StructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		proof  []byte
		reason string
	}{
		{"empty proof", []byte{}, "can't read start of first path"},
		{"one byte", []byte{0x01}, "can't read start of first path"},
		{"p0_start beyond proof", []byte{0x01, 0xFF}, "can't read first path"},
		{"p0_start zero", []byte{0x01, 0x00, 0x00, 0x00}, "can't read first path"},
		{"p0_start one", []byte{0x01, 0x01, 0x00, 0x00}, "can't read first path"},
		{"n steps but no room for ss/se", []byte{0x01, 0x02, 0x02}, "can't read path"},
		{"se exceeds proof length", []byte{0x01, 0x02, 0x02, 0xFF}, "can't read path"},
		{"ss greater than se", []byte{0x01, 0x02, 0x05, 0x03, 0x00, 0x00, 0x00}, "can't read path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify(tt.proof, "some/key", []byte("value"))
			if err == nil {
				t.Fatal("expected a structural error")
			}
			se, ok := err.(*StructuralError)
			if !ok {
				t.Fatalf("expected *StructuralError, got %T", err)
			}
			if se.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", se.Reason, tt.reason)
			}
		})
	}
}
