package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"creator-paygate/internal/core/domain"
	"creator-paygate/internal/core/ports"
	"creator-paygate/internal/metrics"
	"creator-paygate/internal/x402"
	"creator-paygate/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccessGrantedMessage confirms a settled payment on the delivery response.
const AccessGrantedMessage = "Payment successful! Access granted."

// GateConfig carries the settlement parameters the gate stamps onto
// challenges and settle requests.
type GateConfig struct {
	Network         string
	Asset           x402.Asset
	ResourceBaseURL string // e.g. https://gate.example.com

	// SettleTimeout bounds a single settlement round trip. Zero means the
	// facilitator client's own timeout applies.
	SettleTimeout time.Duration
}

// GateServiceImpl implements ports.GateService: it decides, per request,
// between releasing content, issuing a 402 challenge, and relaying a
// facilitator verdict.
type GateServiceImpl struct {
	contentRepo ports.ContentRepository
	blobs       ports.BlobStore
	facilitator ports.Facilitator // nil when settlement is not configured
	cfg         GateConfig
	rec         metrics.Recorder
	log         zerolog.Logger
}

// NewGateService creates a new GateServiceImpl. facilitator may be nil, in
// which case priced content is never released.
func NewGateService(
	contentRepo ports.ContentRepository,
	blobs ports.BlobStore,
	facilitator ports.Facilitator,
	cfg GateConfig,
	rec metrics.Recorder,
	log zerolog.Logger,
) *GateServiceImpl {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &GateServiceImpl{
		contentRepo: contentRepo,
		blobs:       blobs,
		facilitator: facilitator,
		cfg:         cfg,
		rec:         rec,
		log:         log,
	}
}

// Access runs the gate state machine for one request.
//
// Unknown content is a plain 404; its existence is not hinted at via a
// challenge. Free content is released immediately. Priced content without a
// payment header earns a 402 challenge. A payment header is forwarded, never
// inspected, to the facilitator, and a non-accepted verdict is relayed to
// the caller byte for byte.
func (s *GateServiceImpl) Access(ctx context.Context, req ports.AccessRequest) (*ports.AccessResult, error) {
	content, err := s.contentRepo.GetByID(ctx, req.ContentID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get content: %w", err))
	}
	if content == nil {
		return nil, apperror.ErrContentNotFound()
	}

	// A download of non-file content is a 404 before anything else: no
	// challenge goes out and no proof ever reaches the facilitator.
	if req.RequireFile && !content.IsFile() {
		return nil, apperror.ErrNotAFile()
	}

	if content.IsFree() {
		s.rec.IncCounter(metrics.EventAccessFree, s.labels())
		return s.deliver(ctx, content, "")
	}

	if req.PaymentHeader == "" || s.facilitator == nil {
		s.rec.IncCounter(metrics.EventChallengeIssued, s.labels())
		return &ports.AccessResult{Relay: s.challenge(content)}, nil
	}

	price := x402.PriceFor(content.Price, s.cfg.Asset)
	settleReq := x402.SettleRequest{
		X402Version: x402.ProtocolVersion,
		ResourceURL: s.resourceURL(content),
		Method:      req.Method,
		PaymentData: req.PaymentHeader,
		PayTo:       content.PayeeAddress,
		Network:     s.cfg.Network,
		Price:       price,
	}

	if s.cfg.SettleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SettleTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := s.facilitator.Settle(ctx, settleReq)
	s.rec.ObserveLatency("settle", time.Since(start), s.labels())
	if err != nil {
		s.rec.IncCounter(metrics.EventSettleError, s.labels())
		s.log.Error().Err(err).
			Str("content_id", content.ID.String()).
			Msg("settlement failed")
		return nil, apperror.ErrFacilitatorUnreachable(err)
	}

	if !result.Accepted() {
		s.rec.IncCounter(metrics.EventSettleRejected, s.labels())
		s.log.Info().
			Str("content_id", content.ID.String()).
			Int("status", result.Status).
			Msg("settlement rejected, relaying verdict")
		return &ports.AccessResult{Relay: result}, nil
	}

	s.rec.IncCounter(metrics.EventSettleAccepted, s.labels())
	s.log.Info().
		Str("content_id", content.ID.String()).
		Str("amount", price.Amount).
		Str("pay_to", content.PayeeAddress).
		Msg("payment settled")

	return s.deliver(ctx, content, AccessGrantedMessage)
}

// deliver loads the payload and wraps it in a granted result.
func (s *GateServiceImpl) deliver(ctx context.Context, content *domain.Content, message string) (*ports.AccessResult, error) {
	res := &ports.AccessResult{Content: content, Message: message}
	if content.IsFile() {
		data, err := s.blobs.Get(ctx, content.BlobLocator)
		if err != nil {
			return nil, apperror.ErrBlobUnavailable(err)
		}
		res.Payload = data
	}
	s.rec.IncCounter(metrics.EventAccessGranted, s.labels())
	return res, nil
}

// challenge builds the 402 relay for priced content.
func (s *GateServiceImpl) challenge(content *domain.Content) *x402.SettlementResult {
	price := x402.PriceFor(content.Price, s.cfg.Asset)
	body, _ := json.Marshal(x402.PaymentRequiredResponse{
		X402Version: x402.ProtocolVersion,
		Error:       "Payment required",
		Accepts: []x402.PaymentRequirements{{
			Scheme:            "exact",
			Network:           s.cfg.Network,
			MaxAmountRequired: price.Amount,
			Resource:          s.resourceURL(content),
			Description:       content.Title,
			PayTo:             content.PayeeAddress,
			MaxTimeoutSeconds: 300,
			Asset:             s.cfg.Asset.Address,
		}},
	})
	return &x402.SettlementResult{
		Status: http.StatusPaymentRequired,
		Body:   body,
		Headers: map[string]string{
			x402.ChallengeHeader: x402.ChallengeScheme,
			"Content-Type":       "application/json",
		},
	}
}

func (s *GateServiceImpl) resourceURL(content *domain.Content) string {
	return fmt.Sprintf("%s/content/%s", s.cfg.ResourceBaseURL, content.ID)
}

func (s *GateServiceImpl) labels() map[string]string {
	return map[string]string{"network": s.cfg.Network}
}
