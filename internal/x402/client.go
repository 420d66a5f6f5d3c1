package x402

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrMaxSpendExceeded is returned when a challenge demands more than the
// caller authorized the client to spend.
var ErrMaxSpendExceeded = errors.New("x402: required amount exceeds max spend")

// Client wraps an HTTP client with automatic payment of x402 challenges.
// On a 402 carrying a parseable challenge it signs a proof and retries the
// request exactly once; everything else passes through untouched. Transport
// and signing errors propagate to the caller.
type Client struct {
	httpc    *http.Client
	signer   Signer
	maxSpend decimal.Decimal // atomic units of the offered asset
	log      zerolog.Logger
}

// NewClient creates a payment-capable client. maxSpend bounds the atomic
// amount the client will ever authorize for a single request.
func NewClient(httpc *http.Client, signer Signer, maxSpend decimal.Decimal, log zerolog.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		httpc:    httpc,
		signer:   signer,
		maxSpend: maxSpend,
		log:      log,
	}
}

// Get issues a payment-wrapped GET request.
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Do issues the request, paying a 402 challenge at most once.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusPaymentRequired {
		return resp, nil
	}

	challenge, body, err := readChallenge(resp)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		// A 402 without payment options cannot be paid; hand it back with
		// the body restored.
		resp.Body = io.NopCloser(bytes.NewReader(body))
		return resp, nil
	}

	required, err := decimal.NewFromString(challenge.MaxAmountRequired)
	if err != nil {
		return nil, fmt.Errorf("x402: invalid challenge amount %q: %w", challenge.MaxAmountRequired, err)
	}
	if required.GreaterThan(c.maxSpend) {
		return nil, fmt.Errorf("%w: required %s, limit %s", ErrMaxSpendExceeded, required, c.maxSpend)
	}

	payload, err := c.signer.SignPayment(req.Context(), *challenge)
	if err != nil {
		return nil, fmt.Errorf("x402: sign payment: %w", err)
	}
	header, err := payload.Encode()
	if err != nil {
		return nil, fmt.Errorf("x402: encode payment header: %w", err)
	}

	c.log.Debug().
		Str("resource", challenge.Resource).
		Str("amount", challenge.MaxAmountRequired).
		Str("network", challenge.Network).
		Msg("retrying request with payment proof")

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		retryBody, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = retryBody
	}
	retry.Header.Set(PaymentHeader, header)

	return c.httpc.Do(retry)
}

// readChallenge consumes a 402 response body and extracts the first payment
// option, if any. The raw body is returned so it can be restored when the
// response must be handed back unpaid.
func readChallenge(resp *http.Response) (*PaymentRequirements, []byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("x402: read challenge body: %w", err)
	}

	var challenge PaymentRequiredResponse
	if err := json.Unmarshal(body, &challenge); err != nil || len(challenge.Accepts) == 0 {
		return nil, body, nil
	}
	return &challenge.Accepts[0], body, nil
}
