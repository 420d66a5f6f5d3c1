package service

import (
	"context"
	"errors"
	"time"

	"creator-paygate/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// SweepService watches the chain event log for token transfers landing in
// managed wallets and forwards them through the registry so the split pays
// out. It replays the log from the beginning on startup, so wallets created
// before the sweeper ran are picked up too.
type SweepService struct {
	registry   *ledger.Registry
	events     *ledger.Log
	controller common.Address
	interval   time.Duration
	log        zerolog.Logger

	cursor  int
	tracked map[common.Address]bool
}

// NewSweepService creates a sweeper over the given registry and event log.
func NewSweepService(
	registry *ledger.Registry,
	events *ledger.Log,
	controller common.Address,
	interval time.Duration,
	log zerolog.Logger,
) *SweepService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &SweepService{
		registry:   registry,
		events:     events,
		controller: controller,
		interval:   interval,
		log:        log,
		tracked:    make(map[common.Address]bool),
	}
}

// Run sweeps on the configured interval until the context is cancelled.
func (s *SweepService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sweep worker stopped")
			return
		case <-ticker.C:
			if n, err := s.SweepOnce(ctx); err != nil {
				s.log.Error().Err(err).Msg("sweep pass failed")
			} else if n > 0 {
				s.log.Info().Int("forwarded", n).Msg("sweep pass complete")
			}
		}
	}
}

// SweepOnce consumes new log entries and forwards any transfer that landed
// in a tracked wallet. Returns the number of forwarded transfers. A transfer
// of a disallowed token is logged and skipped; it stays in the wallet until
// the asset is allowed and a later deposit triggers another sweep.
func (s *SweepService) SweepOnce(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	events, next := s.events.After(s.cursor)
	forwarded := 0

	for _, evt := range events {
		switch e := evt.(type) {
		case ledger.WalletCreatedEvent:
			s.tracked[e.Wallet] = true
		case ledger.TokenTransferEvent:
			if !s.tracked[e.To] {
				continue
			}
			err := s.registry.ExecuteForwardTransfer(s.controller, e.To, e.Token, e.Amount)
			switch {
			case err == nil:
				forwarded++
			case errors.Is(err, ledger.ErrTokenNotAllowed):
				s.log.Warn().
					Str("wallet", e.To.Hex()).
					Str("token", e.Token.Hex()).
					Msg("skipping transfer of disallowed token")
			case errors.Is(err, ledger.ErrInsufficientFunds):
				// Already swept by an earlier pass covering the same deposit.
			default:
				s.cursor = next
				return forwarded, err
			}
		}
	}

	s.cursor = next
	return forwarded, nil
}
