package repository

import (
	"math/big"
	"regexp"
	"time"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var (
	hashRegex    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// Artifact is the persisted record of one verified transfer.
type Artifact struct {
	Summary        Summary        `json:"summary"`
	RawFullReceipt map[string]any `json:"raw_full_receipt"`
}

type Summary struct {
	RunID         string          `json:"run_id"`
	Sender        string          `json:"sender"`
	Receiver      string          `json:"receiver"`
	AmountEth     decimal.Decimal `json:"amount_eth"`
	AmountWei     *big.Int        `json:"amount_wei"`
	TxHash        string          `json:"tx_hash"`
	BlockNumber   uint64          `json:"block_number"`
	BlockHash     string          `json:"block_hash"`
	ChainHead     uint64          `json:"chain_head"`
	GasUsed       uint64          `json:"gas_used"`
	Status        uint64          `json:"status"`
	Confirmations uint64          `json:"confirmations"`
	Network       string          `json:"network"`
	Timestamp     time.Time       `json:"timestamp"`
}

func (a Artifact) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Summary),
		validation.Field(&a.RawFullReceipt, validation.Required),
	)
}

func (s Summary) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.RunID, validation.Required),
		validation.Field(&s.Sender, validation.Required, validation.Match(addressRegex)),
		validation.Field(&s.Receiver, validation.Required, validation.Match(addressRegex)),
		validation.Field(&s.AmountWei, validation.NotNil),
		validation.Field(&s.TxHash, validation.Required, validation.Match(hashRegex)),
		validation.Field(&s.BlockHash, validation.Required, validation.Match(hashRegex)),
		validation.Field(&s.Network, validation.Required),
		validation.Field(&s.Timestamp, validation.Required),
	)
}

// record is the part of a stored artifact needed for dedupe.
type record struct {
	Summary struct {
		TxHash string `json:"tx_hash"`
	} `json:"summary"`
}
