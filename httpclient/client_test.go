package httpclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	baseURL := "https://api.example.com"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Client should not be nil")
	}
	if client.GetBaseURL() != baseURL {
		t.Errorf("BaseURL = %s, want %s", client.GetBaseURL(), baseURL)
	}
}

func TestNewClientWithTimeout(t *testing.T) {
	timeout := 10 * time.Second
	client := NewClientWithTimeout("https://api.example.com", timeout)

	if client.httpClient.Timeout != timeout {
		t.Errorf("Timeout = %v, want %v", client.httpClient.Timeout, timeout)
	}
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %s, want GET", r.Method)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "success"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	data, err := client.Get("/test", nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	var response map[string]string
	if err := json.Unmarshal(data, &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["message"] != "success" {
		t.Errorf("message = %s, want success", response["message"])
	}
}

func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		var requestBody map[string]string
		if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if requestBody["test"] != "data" {
			t.Errorf("request body test = %s, want data", requestBody["test"])
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "created"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	data, err := client.Post("/test", nil, map[string]string{"test": "data"})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	var response map[string]string
	if err := json.Unmarshal(data, &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["message"] != "created" {
		t.Errorf("message = %s, want created", response["message"])
	}
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"id": 123, "name": "test"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var result map[string]interface{}
	if err := client.GetJSON("/test", nil, &result); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if result["name"] != "test" {
		t.Errorf("name = %v, want test", result["name"])
	}
}

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"id": 456, "message": "created"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var result map[string]interface{}
	if err := client.PostJSON("/test", nil, map[string]string{"test": "data"}, &result); err != nil {
		t.Fatalf("PostJSON failed: %v", err)
	}
	if result["message"] != "created" {
		t.Errorf("message = %v, want created", result["message"])
	}
}

func TestClient_ErrorHandling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad request"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Get("/test", nil); err == nil {
		t.Error("expected error for 400 status code")
	}
}

func TestClient_WithHeaders(t *testing.T) {
	const expectedKey, expectedValue = "test-key", "test-value"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(expectedKey) != expectedValue {
			t.Errorf("header %s = %s, want %s", expectedKey, r.Header.Get(expectedKey), expectedValue)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "success"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Get("/test", map[string]string{expectedKey: expectedValue}); err != nil {
		t.Fatalf("Get with headers failed: %v", err)
	}
}

func TestClient_SetTimeout(t *testing.T) {
	client := NewClient("https://api.example.com")
	newTimeout := 5 * time.Second
	client.SetTimeout(newTimeout)

	if client.httpClient.Timeout != newTimeout {
		t.Errorf("Timeout = %v, want %v", client.httpClient.Timeout, newTimeout)
	}
}
