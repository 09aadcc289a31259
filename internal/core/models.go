package core

import (
	"ethsend/internal/ethereum"
	"ethsend/internal/repository"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateInit                 State = "init"
	StateConnected            State = "connected"
	StateAmountSelected       State = "amount_selected"
	StateSubmitted            State = "submitted"
	StateIncluded             State = "included"
	StateConfirmationsReached State = "confirmations_reached"
	StateVerified             State = "verified"
	StatePersisted            State = "persisted"
	StateFailed               State = "failed"
)

// TransferRequest describes the single transfer a run performs.
type TransferRequest struct {
	Sender    common.Address
	Recipient common.Address
	AmountEth decimal.Decimal
	AmountWei *big.Int
	ChainID   *big.Int
}

// TransferResult is what a run produced, successful or not. On failure State
// is StateFailed and FailedIn holds the last state reached.
type TransferResult struct {
	State         State
	FailedIn      State
	Request       *TransferRequest
	Submitted     *ethereum.SubmittedTransaction
	Receipt       *ethereum.Receipt
	Confirmation  ethereum.Confirmation
	BalanceBefore *big.Int
	BalanceAfter  *big.Int
	Artifact      *repository.Artifact
	ArtifactPath  string
	Persisted     bool
	SkipReason    error
}

type TransferConfig struct {
	Recipient           common.Address
	MinConfirmations    uint64
	ReceiptTimeout      time.Duration
	PollInterval        time.Duration
	ConfirmationTimeout time.Duration
	Network             string
	ChainID             *big.Int
	Location            *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}
