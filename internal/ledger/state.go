// Package ledger reimplements the on-chain fund-splitting contracts as Go
// engines over an in-process chain state: one SmartWallet per creator space,
// created and indexed by a Registry. Calls execute under the state's single
// lock, mirroring the chain's serialized-transaction model: an observer sees
// either pre- or post-split balances, never an intermediate.
package ledger

import (
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidAmount     = errors.New("no payment")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

// State holds native and token balances for every address in the simulated
// chain. All contract calls serialize on its lock.
type State struct {
	mu      sync.Mutex
	emitter Emitter

	native map[common.Address]*big.Int
	tokens map[common.Address]map[common.Address]*big.Int // token -> holder -> balance
}

// NewState creates an empty chain state emitting to the given emitter.
func NewState(emitter Emitter) *State {
	if emitter == nil {
		emitter = NoopEmitter{}
	}
	return &State{
		emitter: emitter,
		native:  make(map[common.Address]*big.Int),
		tokens:  make(map[common.Address]map[common.Address]*big.Int),
	}
}

// withLock runs fn as one serialized chain call.
func (s *State) withLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *State) emit(evt Event) {
	s.emitter.Emit(evt)
}

// Mint credits native currency to an address. Test and genesis helper.
func (s *State) Mint(addr common.Address, amount *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creditNative(addr, amount)
}

// MintToken credits token units to an address. Test and genesis helper.
func (s *State) MintToken(token, addr common.Address, amount *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creditToken(token, addr, amount)
}

// NativeBalance returns a copy of an address's native balance.
func (s *State) NativeBalance(addr common.Address) *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyBalance(s.native[addr])
}

// TokenBalance returns a copy of an address's balance of the given token.
func (s *State) TokenBalance(token, addr common.Address) *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyBalance(s.tokens[token][addr])
}

// TransferToken moves token units between externally-owned addresses, the
// analog of an ERC20 transfer landing in a wallet. Emits a TokenTransfer
// event for the sweep worker to observe.
func (s *State) TransferToken(token, from, to common.Address, amount *big.Int) error {
	return s.withLock(func() error {
		if amount == nil || amount.Sign() <= 0 {
			return ErrInvalidAmount
		}
		if err := s.debitToken(token, from, amount); err != nil {
			return err
		}
		s.creditToken(token, to, amount)
		s.emit(TokenTransferEvent{Token: token, From: from, To: to, Amount: copyBalance(amount)})
		return nil
	})
}

// ---- unlocked primitives, callers hold the state lock ----

func (s *State) nativeBalance(addr common.Address) *big.Int {
	if b, ok := s.native[addr]; ok {
		return b
	}
	return big.NewInt(0)
}

func (s *State) tokenBalance(token, addr common.Address) *big.Int {
	if holders, ok := s.tokens[token]; ok {
		if b, ok := holders[addr]; ok {
			return b
		}
	}
	return big.NewInt(0)
}

func (s *State) creditNative(addr common.Address, amount *big.Int) {
	s.native[addr] = new(big.Int).Add(s.nativeBalance(addr), amount)
}

func (s *State) debitNative(addr common.Address, amount *big.Int) error {
	balance := s.nativeBalance(addr)
	if balance.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}
	s.native[addr] = new(big.Int).Sub(balance, amount)
	return nil
}

func (s *State) creditToken(token, addr common.Address, amount *big.Int) {
	if _, ok := s.tokens[token]; !ok {
		s.tokens[token] = make(map[common.Address]*big.Int)
	}
	s.tokens[token][addr] = new(big.Int).Add(s.tokenBalance(token, addr), amount)
}

func (s *State) debitToken(token, addr common.Address, amount *big.Int) error {
	balance := s.tokenBalance(token, addr)
	if balance.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}
	s.tokens[token][addr] = new(big.Int).Sub(balance, amount)
	return nil
}

func copyBalance(b *big.Int) *big.Int {
	if b == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(b)
}
