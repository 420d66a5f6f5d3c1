package ledger

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNotController      = errors.New("not controller")
	ErrTokenNotAllowed    = errors.New("token not allowed")
	ErrFeeTooHigh         = errors.New("fee exceeds 100 percent")
	ErrCreatorTokenNotSet = errors.New("creator token not set")
)

// SmartWallet escrows a creator space's earnings and splits every inbound
// amount between creator and platform in the same call that receives it.
// Nothing is ever retained past the triggering call. Only the controller may
// mutate configuration or trigger forwarding.
//
// The platform fee is a whole percent in [0,100]:
// platformAmount = amount * fee / 100 (integer floor),
// creatorAmount = amount - platformAmount.
type SmartWallet struct {
	addr           common.Address
	controller     common.Address
	creator        common.Address
	platformWallet common.Address

	platformFee   uint64
	allowedAssets map[common.Address]bool

	creatorToken          common.Address
	creatorTokenSet       bool
	allowOnlyCreatorToken bool

	state *State
}

// NewSmartWallet deploys a wallet bound to the given state.
func NewSmartWallet(state *State, addr, controller, creator, platformWallet common.Address, platformFee uint64) *SmartWallet {
	return &SmartWallet{
		addr:           addr,
		controller:     controller,
		creator:        creator,
		platformWallet: platformWallet,
		platformFee:    platformFee,
		allowedAssets:  make(map[common.Address]bool),
		state:          state,
	}
}

func (w *SmartWallet) Address() common.Address        { return w.addr }
func (w *SmartWallet) Creator() common.Address        { return w.creator }
func (w *SmartWallet) PlatformWallet() common.Address { return w.platformWallet }

// PlatformFee returns the current fee percent.
func (w *SmartWallet) PlatformFee() uint64 {
	w.state.mu.Lock()
	defer w.state.mu.Unlock()
	return w.platformFee
}

// requireController enforces the access gate on every privileged call; the
// stored controller is consulted each time, never cached by callers.
func (w *SmartWallet) requireController(caller common.Address) error {
	if caller != w.controller {
		return ErrNotController
	}
	return nil
}

func (w *SmartWallet) split(amount *big.Int) (creatorAmount, platformAmount *big.Int) {
	platformAmount = new(big.Int).Mul(amount, new(big.Int).SetUint64(w.platformFee))
	platformAmount.Div(platformAmount, big.NewInt(100))
	creatorAmount = new(big.Int).Sub(amount, platformAmount)
	return creatorAmount, platformAmount
}

// Receive is the implicit entry point for inbound native currency: the
// payer's funds are split and both legs paid out atomically. On any failure
// the whole receipt reverts; no balance is retained by the wallet.
func (w *SmartWallet) Receive(payer common.Address, amount *big.Int) error {
	return w.state.withLock(func() error {
		if amount == nil || amount.Sign() <= 0 {
			return ErrInvalidAmount
		}
		if err := w.state.debitNative(payer, amount); err != nil {
			return err
		}
		creatorAmount, platformAmount := w.split(amount)
		w.state.creditNative(w.creator, creatorAmount)
		w.state.creditNative(w.platformWallet, platformAmount)

		w.state.emit(PaymentReceivedEvent{Wallet: w.addr, Payer: payer, Amount: copyBalance(amount)})
		w.state.emit(PaymentSplitEvent{
			Wallet:         w.addr,
			Creator:        w.creator,
			CreatorAmount:  creatorAmount,
			PlatformAmount: platformAmount,
		})
		return nil
	})
}

// ForwardTransfer pulls amount of asset from the wallet's own balance and
// pays out both split legs. Controller-only; the asset must be allowed, or
// must equal the creator token when that restriction is active.
func (w *SmartWallet) ForwardTransfer(caller, asset common.Address, amount *big.Int) error {
	return w.state.withLock(func() error {
		if err := w.requireController(caller); err != nil {
			return err
		}
		if w.allowOnlyCreatorToken {
			if !w.creatorTokenSet || asset != w.creatorToken {
				return ErrTokenNotAllowed
			}
		} else if !w.allowedAssets[asset] {
			return ErrTokenNotAllowed
		}
		if amount == nil || amount.Sign() <= 0 {
			return ErrInvalidAmount
		}
		if err := w.state.debitToken(asset, w.addr, amount); err != nil {
			return err
		}
		creatorAmount, platformAmount := w.split(amount)
		w.state.creditToken(asset, w.creator, creatorAmount)
		w.state.creditToken(asset, w.platformWallet, platformAmount)

		w.state.emit(PaymentReceivedEvent{Wallet: w.addr, Payer: caller, Amount: copyBalance(amount)})
		w.state.emit(PaymentSplitEvent{
			Wallet:         w.addr,
			Creator:        w.creator,
			CreatorAmount:  creatorAmount,
			PlatformAmount: platformAmount,
		})
		return nil
	})
}

// AddAllowedAsset marks an asset eligible for forwarding. Idempotent.
func (w *SmartWallet) AddAllowedAsset(caller, asset common.Address) error {
	return w.state.withLock(func() error {
		if err := w.requireController(caller); err != nil {
			return err
		}
		w.allowedAssets[asset] = true
		return nil
	})
}

// RemoveAllowedAsset revokes an asset's eligibility. Idempotent.
func (w *SmartWallet) RemoveAllowedAsset(caller, asset common.Address) error {
	return w.state.withLock(func() error {
		if err := w.requireController(caller); err != nil {
			return err
		}
		delete(w.allowedAssets, asset)
		return nil
	})
}

// IsAllowedAsset reports whether the asset may be forwarded.
func (w *SmartWallet) IsAllowedAsset(asset common.Address) bool {
	w.state.mu.Lock()
	defer w.state.mu.Unlock()
	return w.allowedAssets[asset]
}

// SetCreatorToken pins the wallet to a single creator token and activates
// the only-creator-token restriction.
func (w *SmartWallet) SetCreatorToken(caller, token common.Address) error {
	return w.state.withLock(func() error {
		if err := w.requireController(caller); err != nil {
			return err
		}
		w.creatorToken = token
		w.creatorTokenSet = true
		w.allowOnlyCreatorToken = true
		return nil
	})
}

// CreatorToken returns the pinned creator token, failing when unset.
func (w *SmartWallet) CreatorToken() (common.Address, error) {
	w.state.mu.Lock()
	defer w.state.mu.Unlock()
	if !w.creatorTokenSet {
		return common.Address{}, ErrCreatorTokenNotSet
	}
	return w.creatorToken, nil
}

// AllowOnlyCreatorTokenOff clears the creator-token restriction.
func (w *SmartWallet) AllowOnlyCreatorTokenOff(caller common.Address) error {
	return w.state.withLock(func() error {
		if err := w.requireController(caller); err != nil {
			return err
		}
		w.allowOnlyCreatorToken = false
		return nil
	})
}

// UpdatePlatformFee changes the fee percent. Values above 100 are rejected
// before any state change.
func (w *SmartWallet) UpdatePlatformFee(caller common.Address, feePercent uint64) error {
	return w.state.withLock(func() error {
		if err := w.requireController(caller); err != nil {
			return err
		}
		if feePercent > 100 {
			return ErrFeeTooHigh
		}
		w.platformFee = feePercent
		return nil
	})
}
