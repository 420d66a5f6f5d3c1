package ledger

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

const (
	EventTypePaymentReceived = "wallet.payment.received"
	EventTypePaymentSplit    = "wallet.payment.split"
	EventTypeWalletCreated   = "registry.wallet.created"
	EventTypeTokenTransfer   = "token.transfer"
)

// Event is a typed record of ledger activity.
type Event interface {
	EventType() string
}

// Emitter receives events as contract calls commit.
type Emitter interface {
	Emit(Event)
}

// NoopEmitter drops all events.
type NoopEmitter struct{}

func (NoopEmitter) Emit(Event) {}

// PaymentReceivedEvent marks funds arriving at a wallet, before the split.
type PaymentReceivedEvent struct {
	Wallet common.Address
	Payer  common.Address
	Amount *big.Int
}

func (PaymentReceivedEvent) EventType() string { return EventTypePaymentReceived }

// PaymentSplitEvent records both legs of a completed split.
type PaymentSplitEvent struct {
	Wallet         common.Address
	Creator        common.Address
	CreatorAmount  *big.Int
	PlatformAmount *big.Int
}

func (PaymentSplitEvent) EventType() string { return EventTypePaymentSplit }

// WalletCreatedEvent announces a new space wallet.
type WalletCreatedEvent struct {
	SpaceID string
	Creator common.Address
	Wallet  common.Address
}

func (WalletCreatedEvent) EventType() string { return EventTypeWalletCreated }

// TokenTransferEvent mirrors an ERC20 Transfer log.
type TokenTransferEvent struct {
	Token  common.Address
	From   common.Address
	To     common.Address
	Amount *big.Int
}

func (TokenTransferEvent) EventType() string { return EventTypeTokenTransfer }

// Log is an append-only emitter with a cursor API, standing in for the
// chain's event log. The sweep worker reads it incrementally the way an
// indexer tracks its last processed block.
type Log struct {
	mu     sync.Mutex
	events []Event
}

// NewLog creates an empty event log.
func NewLog() *Log {
	return &Log{}
}

// Emit appends an event.
func (l *Log) Emit(evt Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, evt)
}

// After returns all events recorded past the cursor along with the new
// cursor position.
func (l *Log) After(cursor int) ([]Event, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(l.events) {
		return nil, len(l.events)
	}
	batch := make([]Event, len(l.events)-cursor)
	copy(batch, l.events[cursor:])
	return batch, len(l.events)
}
