// Package x402 implements the pay-per-request protocol spoken between the
// content gate, the payment facilitator and paying clients. Amounts cross the
// wire as strings in atomic units because Go has no uint256.
package x402

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

const (
	// ProtocolVersion is the x402 protocol version this package speaks.
	ProtocolVersion = 1

	// PaymentHeader carries the payment proof on gated requests. The gate
	// never parses it; the value is forwarded verbatim to the facilitator.
	PaymentHeader = "X-Payment"

	// ChallengeHeader and ChallengeScheme form the 402 challenge returned
	// when payment is required but cannot be settled.
	ChallengeHeader = "WWW-Authenticate"
	ChallengeScheme = "x402-payment-required"
)

// Asset identifies the payment token and its fixed decimal precision.
type Asset struct {
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
}

// Price is an amount in the asset's atomic units.
type Price struct {
	Amount string `json:"amount"`
	Asset  Asset  `json:"asset"`
}

// PriceFor converts a decimal price in whole asset units into atomic units,
// e.g. 1.5 with 6 decimals becomes "1500000". Fractions below one atomic
// unit are truncated.
func PriceFor(amount decimal.Decimal, asset Asset) Price {
	return Price{
		Amount: amount.Shift(int32(asset.Decimals)).Truncate(0).String(),
		Asset:  asset,
	}
}

// SettleRequest is the payload submitted to the facilitator's settle
// endpoint.
type SettleRequest struct {
	X402Version int    `json:"x402Version"`
	ResourceURL string `json:"resourceUrl"`
	Method      string `json:"method"`
	PaymentData string `json:"paymentData,omitempty"`
	PayTo       string `json:"payTo"`
	Network     string `json:"network"`
	Price       Price  `json:"price"`
}

// SettlementResult is the facilitator's verdict: an HTTP status plus the raw
// body and headers to relay to the caller when the status is not 200.
type SettlementResult struct {
	Status  int
	Body    []byte
	Headers map[string]string
}

// Accepted reports whether the settlement authorizes content release.
func (r *SettlementResult) Accepted() bool {
	return r != nil && r.Status == http.StatusOK
}

// PaymentRequirements describes one payment option a resource server
// accepts, carried inside a 402 challenge body.
type PaymentRequirements struct {
	Scheme            string `json:"scheme"`
	Network           string `json:"network"`
	MaxAmountRequired string `json:"maxAmountRequired"`
	Resource          string `json:"resource"`
	Description       string `json:"description,omitempty"`
	MimeType          string `json:"mimeType,omitempty"`
	PayTo             string `json:"payTo"`
	MaxTimeoutSeconds int    `json:"maxTimeoutSeconds"`
	Asset             string `json:"asset"`
}

// PaymentRequiredResponse is the machine-readable 402 challenge body.
type PaymentRequiredResponse struct {
	X402Version int                   `json:"x402Version"`
	Accepts     []PaymentRequirements `json:"accepts"`
	Error       string                `json:"error,omitempty"`
}

// PaymentPayload is the header-level envelope for a payment proof.
type PaymentPayload struct {
	X402Version int    `json:"x402Version"`
	Scheme      string `json:"scheme"`
	Network     string `json:"network"`
	Payload     string `json:"payload"`
}

// Encode serializes the payload for transport in the payment header.
func (p *PaymentPayload) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Authorization is the transfer authorization a signer commits to, shaped
// after EIP-3009 transferWithAuthorization parameters.
type Authorization struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	ValidAfter  int64  `json:"validAfter"`
	ValidBefore int64  `json:"validBefore"`
	Nonce       string `json:"nonce"`
}

// SignedPayment couples an authorization with its ECDSA signature.
type SignedPayment struct {
	Authorization Authorization `json:"authorization"`
	Signature     string        `json:"signature"`
}
