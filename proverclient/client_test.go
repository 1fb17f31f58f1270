package proverclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davidt58/peptide-event-verifier/eth"
)

func TestClient_Initialize(t *testing.T) {
	var gotReq initializeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != Initialize {
			t.Errorf("path = %s, want %s", r.URL.Path, Initialize)
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	addr, err := eth.AddressFromHex("0xaa6474c957cafbdfca978c83b05479f6718f2947")
	if err != nil {
		t.Fatalf("AddressFromHex failed: %v", err)
	}

	client := NewClient(server.URL)
	if err := client.Initialize("proof_api", addr, 901); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if gotReq.ClientType != "proof_api" {
		t.Errorf("ClientType = %s, want proof_api", gotReq.ClientType)
	}
	if gotReq.PeptideChainID != 901 {
		t.Errorf("PeptideChainID = %d, want 901", gotReq.PeptideChainID)
	}
	if gotReq.SignerAddr != addr.Hex() {
		t.Errorf("SignerAddr = %s, want %s", gotReq.SignerAddr, addr.Hex())
	}
}

func TestClient_Initialize_EmptyClientType(t *testing.T) {
	client := NewClient("https://example.com")
	if err := client.Initialize("", eth.Address{}, 1); err == nil {
		t.Error("expected error for empty client type")
	}
}

func TestClient_LoadProof(t *testing.T) {
	var gotReq loadProofRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != LoadProof {
			t.Errorf("path = %s, want %s", r.URL.Path, LoadProof)
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(loadProofResponse{TotalBytes: len(gotReq.Chunk)})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	chunk := []byte{1, 2, 3, 4}
	total, err := client.LoadProof(chunk)
	if err != nil {
		t.Fatalf("LoadProof failed: %v", err)
	}
	if total != len(chunk) {
		t.Errorf("total = %d, want %d", total, len(chunk))
	}
	if len(gotReq.Chunk) != len(chunk) {
		t.Errorf("server received chunk of length %d, want %d", len(gotReq.Chunk), len(chunk))
	}
}

func TestClient_LoadProof_Empty(t *testing.T) {
	client := NewClient("https://example.com")
	if _, err := client.LoadProof(nil); err == nil {
		t.Error("expected error for empty chunk")
	}
}

func TestClient_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != Verify {
			t.Errorf("path = %s, want %s", r.URL.Path, Verify)
		}
		json.NewEncoder(w).Encode(VerifyResponse{Kind: "valid", ChainID: 901, Contract: "0xabc"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Verify("proof_api")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if resp.Kind != "valid" || resp.ChainID != 901 || resp.Contract != "0xabc" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestClient_Verify_EmptyClientType(t *testing.T) {
	client := NewClient("https://example.com")
	if _, err := client.Verify(""); err == nil {
		t.Error("expected error for empty client type")
	}
}

func TestClient_ClearCache(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.URL.Path != ClearCache {
			t.Errorf("path = %s, want %s", r.URL.Path, ClearCache)
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.ClearCache(); err != nil {
		t.Fatalf("ClearCache failed: %v", err)
	}
	if !called {
		t.Error("expected server to be called")
	}
}
