// Package publish ships a verifier.Result to a configured webhook as an
// HMAC-SHA256-authenticated JSON POST, the same authentication scheme the
// teacher's config.BuilderConfig.GenerateBuilderHeaders used for the
// Builder API.
package publish

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/davidt58/peptide-event-verifier/errors"
	"github.com/davidt58/peptide-event-verifier/httpclient"
	"github.com/davidt58/peptide-event-verifier/verifier"
)

const resultPath = "/results"

// Publisher posts verification results to a webhook, signing each request
// with HMAC-SHA256 over timestamp+method+path+body.
type Publisher struct {
	client *httpclient.Client
	secret string
}

// NewPublisher creates a Publisher for webhookURL, authenticated with
// secret (expected to be base64-encoded, matching the teacher's builder
// secret convention).
func NewPublisher(webhookURL, secret string) *Publisher {
	return &Publisher{
		client: httpclient.NewClient(httpclient.NormalizeURL(webhookURL)),
		secret: secret,
	}
}

// resultPayload is the wire shape posted to the webhook: the result kind
// as a string plus whichever fields that kind populates.
type resultPayload struct {
	Kind      string `json:"kind"`
	ChainID   uint32 `json:"chain_id,omitempty"`
	Contract  string `json:"contract,omitempty"`
	Got       int    `json:"got,omitempty"`
	Needed    int    `json:"needed,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Recovered string `json:"recovered,omitempty"`
	Computed  string `json:"computed,omitempty"`
}

func toPayload(r verifier.Result) resultPayload {
	p := resultPayload{Kind: r.Kind.String()}
	switch r.Kind {
	case verifier.KindValid:
		p.ChainID = r.ChainID
		p.Contract = r.Event.EmittingContract.Hex()
	case verifier.KindInvalidProof:
		p.Got = r.Got
		p.Needed = r.Needed
		if r.Reason != "" {
			p.Reason = r.Reason
		}
	case verifier.KindInvalidSignature, verifier.KindInvalidMembershipProof:
		p.Reason = r.Reason
	case verifier.KindRecoveredInvalidSignerAddress:
		p.Recovered = r.Recovered.Hex()
	case verifier.KindInvalidStateRoot:
		p.Computed = fmt.Sprintf("%x", r.Computed)
	}
	return p
}

// Publish POSTs result to the configured webhook, authenticated with an
// HMAC-SHA256 signature over the request.
func (p *Publisher) Publish(result verifier.Result) error {
	payload := toPayload(result)

	headers, err := p.generateHeaders("POST", resultPath, payload)
	if err != nil {
		return err
	}

	return p.client.PostJSON(resultPath, headers, payload, nil)
}

// generateHeaders builds the HMAC-SHA256 authentication headers for a
// request, signing timestamp+method+path+body the way the teacher's
// Builder API integration did.
func (p *Publisher) generateHeaders(method, path string, body interface{}) (map[string]string, error) {
	if p.secret == "" {
		return nil, errors.ErrMissingRequiredField("secret")
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	var bodyStr string
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, errors.ErrJSONMarshalFailed(err)
		}
		bodyStr = string(bodyBytes)
	}

	message := timestamp + method + path + bodyStr

	secretBytes, err := base64.StdEncoding.DecodeString(p.secret)
	if err != nil {
		return nil, errors.NewVerifierClientError("failed to decode webhook secret", err)
	}

	h := hmac.New(sha256.New, secretBytes)
	h.Write([]byte(message))
	signature := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return map[string]string{
		"X-Verifier-Signature": signature,
		"X-Verifier-Timestamp": timestamp,
		"Content-Type":         "application/json",
	}, nil
}
