package minter

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
)

// MintResult identifies a reserved credential mint.
type MintResult struct {
	Mint      string
	Creator   string
	Blockhash string
	Network   string
}

type blockhashSource interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
}

// SolanaMinter reserves a fresh mint keypair for each credential, anchored to
// the cluster's latest finalized blockhash. The issuing authority is recorded
// as the credential's creator.
type SolanaMinter struct {
	RPC       blockhashSource
	Authority solana.PrivateKey
	Network   string
}

func NewSolanaMinter(rpcURL, privateKeyBase58, network string) (*SolanaMinter, error) {
	authority, err := solana.PrivateKeyFromBase58(strings.TrimSpace(privateKeyBase58))
	if err != nil {
		return nil, fmt.Errorf("error parsing authority key: %w", err)
	}
	return &SolanaMinter{
		RPC:       rpc.New(rpcURL),
		Authority: authority,
		Network:   network,
	}, nil
}

func (m *SolanaMinter) Mint(ctx context.Context, walletAddress string) (*MintResult, error) {
	if _, err := solana.PublicKeyFromBase58(walletAddress); err != nil {
		return nil, apperrors.InvalidArgument("invalid wallet address %q", walletAddress)
	}

	latest, err := m.RPC.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return nil, apperrors.UpstreamUnavailable("fetching latest blockhash: %v", err)
	}
	if latest == nil || latest.Value == nil {
		return nil, apperrors.UpstreamUnavailable("empty blockhash response")
	}

	mint := solana.NewWallet()
	return &MintResult{
		Mint:      mint.PublicKey().String(),
		Creator:   m.Authority.PublicKey().String(),
		Blockhash: latest.Value.Blockhash.String(),
		Network:   m.Network,
	}, nil
}
