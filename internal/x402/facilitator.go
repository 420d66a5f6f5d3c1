package x402

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// FacilitatorClient settles payment proofs against a remote facilitator over
// HTTP. Any facilitator satisfying the settle contract is pluggable; the
// client never inspects proofs itself.
//
// The facilitator must treat a given proof as consumable at most once. The
// gate performs no settlement deduplication of its own, so replay safety is
// part of the facilitator's contract.
type FacilitatorClient struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewFacilitatorClient creates a facilitator client for the given base URL.
func NewFacilitatorClient(baseURL string, timeout time.Duration, log zerolog.Logger) *FacilitatorClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FacilitatorClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Settle submits a payment proof with its requirements and returns the
// facilitator's verdict. Single attempt: retry policy belongs to the caller,
// never to the gate.
func (c *FacilitatorClient) Settle(ctx context.Context, req SettleRequest) (*SettlementResult, error) {
	if req.X402Version == 0 {
		req.X402Version = ProtocolVersion
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal settle request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/settle", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build settle request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("facilitator settle: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read settle response: %w", err)
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("network", req.Network).
		Str("pay_to", req.PayTo).
		Msg("facilitator settle round-trip")

	return &SettlementResult{
		Status:  resp.StatusCode,
		Body:    body,
		Headers: relayableHeaders(resp.Header),
	}, nil
}

// relayableHeaders flattens upstream headers, dropping transport-level ones
// that must not be replayed to the gate's caller.
func relayableHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		switch k {
		case "Content-Length", "Transfer-Encoding", "Connection", "Date", "Keep-Alive":
			continue
		}
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
