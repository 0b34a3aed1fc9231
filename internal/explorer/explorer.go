// Package explorer builds block explorer URLs for transactions and blocks.
package explorer

import (
	"strconv"
	"strings"
)

// Links maps chain identifiers to human-clickable explorer URLs.
type Links interface {
	TxURL(id string) string
	BlockURL(height uint64) string
}

const solscanBaseURL = "https://solscan.io"

// Solscan builds solscan.io links for one Solana cluster.
type Solscan struct {
	suffix string
}

var _ Links = Solscan{}

// NewSolscan returns a Solscan builder for cluster. Only "devnet" and
// "testnet" change the links; mainnet, empty and unknown values all point at
// mainnet.
func NewSolscan(cluster string) Solscan {
	return Solscan{suffix: clusterSuffix(cluster)}
}

func clusterSuffix(cluster string) string {
	switch c := strings.ToLower(strings.TrimSpace(cluster)); c {
	case "devnet", "testnet":
		return "?cluster=" + c
	default:
		return ""
	}
}

// TxURL returns the solscan page of a transaction signature.
func (s Solscan) TxURL(signature string) string {
	return solscanBaseURL + "/tx/" + signature + s.suffix
}

// BlockURL returns the solscan page of a slot.
func (s Solscan) BlockURL(slot uint64) string {
	return solscanBaseURL + "/block/" + strconv.FormatUint(slot, 10) + s.suffix
}

const (
	DefaultEVMTxBase    = "https://etherscan.io/tx"
	DefaultEVMBlockBase = "https://etherscan.io/block"
)

// EVM builds links for an etherscan-like explorer. Transaction and block
// bases are independent so explorers with different layouts are supported.
type EVM struct {
	txBase    string
	blockBase string
}

var _ Links = EVM{}

// NewEVM returns an EVM builder. Empty bases fall back to etherscan and
// trailing slashes are dropped.
func NewEVM(txBase, blockBase string) EVM {
	return EVM{
		txBase:    normalizeBase(txBase, DefaultEVMTxBase),
		blockBase: normalizeBase(blockBase, DefaultEVMBlockBase),
	}
}

func normalizeBase(base, fallback string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return fallback
	}
	return base
}

func (e EVM) TxURL(hash string) string {
	return e.txBase + "/" + hash
}

func (e EVM) BlockURL(height uint64) string {
	return e.blockBase + "/" + strconv.FormatUint(height, 10)
}
