package x402

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer derives a payment proof for a challenge. Implementations own the
// key material; callers only see the finished payload.
type Signer interface {
	Address() common.Address
	SignPayment(ctx context.Context, req PaymentRequirements) (*PaymentPayload, error)
}

// LocalSigner signs payment authorizations with an in-process secp256k1 key.
type LocalSigner struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

// NewLocalSigner creates a signer from a hex-encoded private key.
func NewLocalSigner(hexKey string) (*LocalSigner, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}
	return &LocalSigner{
		key:  key,
		addr: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the payer address derived from the signing key.
func (s *LocalSigner) Address() common.Address {
	return s.addr
}

// SignPayment builds an EIP-3009 style authorization for the full required
// amount and signs its keccak digest.
func (s *LocalSigner) SignPayment(_ context.Context, req PaymentRequirements) (*PaymentPayload, error) {
	var nonce [32]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	timeout := req.MaxTimeoutSeconds
	if timeout <= 0 {
		timeout = 300
	}
	now := time.Now().Unix()

	auth := Authorization{
		From:        s.addr.Hex(),
		To:          req.PayTo,
		Value:       req.MaxAmountRequired,
		ValidAfter:  now - 60, // tolerate clock skew
		ValidBefore: now + int64(timeout),
		Nonce:       hexutil.Encode(nonce[:]),
	}

	digest, err := authorizationDigest(auth)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		return nil, fmt.Errorf("sign authorization: %w", err)
	}

	signed, err := json.Marshal(SignedPayment{
		Authorization: auth,
		Signature:     hexutil.Encode(sig),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal signed payment: %w", err)
	}

	return &PaymentPayload{
		X402Version: ProtocolVersion,
		Scheme:      req.Scheme,
		Network:     req.Network,
		Payload:     base64.StdEncoding.EncodeToString(signed),
	}, nil
}

// authorizationDigest hashes the canonical JSON encoding of an
// authorization. Key order is fixed by the struct field order, so both sides
// derive the same digest.
func authorizationDigest(auth Authorization) ([]byte, error) {
	raw, err := json.Marshal(auth)
	if err != nil {
		return nil, fmt.Errorf("marshal authorization: %w", err)
	}
	return crypto.Keccak256(raw), nil
}
