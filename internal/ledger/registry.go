package ledger

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrSpaceExists    = errors.New("space already exists")
	ErrWalletNotFound = errors.New("wallet not found")
)

// DefaultPlatformFeePercent is the fee applied to wallets created without an
// explicit override.
const DefaultPlatformFeePercent = 20

// Registry deploys and indexes one SmartWallet per space identifier and
// centralizes the fee and allowed-asset defaults stamped onto new wallets.
type Registry struct {
	controller     common.Address
	platformWallet common.Address

	platformFee   uint64
	allowedAssets map[common.Address]bool

	wallets map[string]*SmartWallet         // space id -> wallet
	byAddr  map[common.Address]*SmartWallet // wallet address -> wallet

	state *State
}

// NewRegistry deploys a registry on the given state.
func NewRegistry(state *State, controller, platformWallet common.Address) *Registry {
	return &Registry{
		controller:     controller,
		platformWallet: platformWallet,
		platformFee:    DefaultPlatformFeePercent,
		allowedAssets:  make(map[common.Address]bool),
		wallets:        make(map[string]*SmartWallet),
		byAddr:         make(map[common.Address]*SmartWallet),
		state:          state,
	}
}

func (r *Registry) requireController(caller common.Address) error {
	if caller != r.controller {
		return ErrNotController
	}
	return nil
}

// CreateWallet deploys a wallet for the space with the caller as creator. A
// space maps to at most one wallet: a second attempt fails without touching
// the mapping. The new wallet inherits the registry's controller, platform
// wallet, fee and allowed assets.
func (r *Registry) CreateWallet(caller common.Address, spaceID string) (*SmartWallet, error) {
	var wallet *SmartWallet
	err := r.state.withLock(func() error {
		if _, exists := r.wallets[spaceID]; exists {
			return ErrSpaceExists
		}
		addr := walletAddress(spaceID, caller)
		wallet = NewSmartWallet(r.state, addr, r.controller, caller, r.platformWallet, r.platformFee)
		for asset := range r.allowedAssets {
			wallet.allowedAssets[asset] = true
		}
		r.wallets[spaceID] = wallet
		r.byAddr[addr] = wallet
		r.state.emit(WalletCreatedEvent{SpaceID: spaceID, Creator: caller, Wallet: addr})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// WalletFor returns the wallet deployed for a space, if any.
func (r *Registry) WalletFor(spaceID string) (*SmartWallet, bool) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	w, ok := r.wallets[spaceID]
	return w, ok
}

// WalletAt returns the wallet deployed at an address, if any.
func (r *Registry) WalletAt(addr common.Address) (*SmartWallet, bool) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	w, ok := r.byAddr[addr]
	return w, ok
}

// AddAllowedAsset adds an asset to the default template for new wallets.
func (r *Registry) AddAllowedAsset(caller, asset common.Address) error {
	return r.state.withLock(func() error {
		if err := r.requireController(caller); err != nil {
			return err
		}
		r.allowedAssets[asset] = true
		return nil
	})
}

// RemoveAllowedAsset removes an asset from the default template.
func (r *Registry) RemoveAllowedAsset(caller, asset common.Address) error {
	return r.state.withLock(func() error {
		if err := r.requireController(caller); err != nil {
			return err
		}
		delete(r.allowedAssets, asset)
		return nil
	})
}

// IsAllowedAsset reports whether an asset is in the default template.
func (r *Registry) IsAllowedAsset(asset common.Address) bool {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return r.allowedAssets[asset]
}

// SetPlatformFee updates the default fee percent for new wallets. Values
// above 100 are rejected.
func (r *Registry) SetPlatformFee(caller common.Address, feePercent uint64) error {
	return r.state.withLock(func() error {
		if err := r.requireController(caller); err != nil {
			return err
		}
		if feePercent > 100 {
			return ErrFeeTooHigh
		}
		r.platformFee = feePercent
		return nil
	})
}

// PlatformFee returns the default fee percent.
func (r *Registry) PlatformFee() uint64 {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return r.platformFee
}

// ExecuteForwardTransfer drives forwardTransfer on a managed wallet, used
// for operational sweeps. Controller-only.
func (r *Registry) ExecuteForwardTransfer(caller, walletAddr, asset common.Address, amount *big.Int) error {
	if err := func() error {
		r.state.mu.Lock()
		defer r.state.mu.Unlock()
		return r.requireController(caller)
	}(); err != nil {
		return err
	}
	wallet, ok := r.WalletAt(walletAddr)
	if !ok {
		return ErrWalletNotFound
	}
	return wallet.ForwardTransfer(r.controller, asset, amount)
}

// walletAddress derives a deterministic address for a space wallet, the way
// a CREATE2 deployment would.
func walletAddress(spaceID string, creator common.Address) common.Address {
	digest := crypto.Keccak256([]byte(spaceID), creator.Bytes())
	return common.BytesToAddress(digest[12:])
}
