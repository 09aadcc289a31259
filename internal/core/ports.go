package core

import (
	"context"
	"crypto/ecdsa"
	"ethsend/internal/ethereum"
	"ethsend/internal/repository"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainClient . ChainClient
type ChainClient interface {
	Ping(ctx context.Context) error
	BalanceOf(ctx context.Context, address common.Address) (*big.Int, error)
	Submit(ctx context.Context, key *ecdsa.PrivateKey, recipient common.Address, amountWei *big.Int) (*ethereum.SubmittedTransaction, error)
	WaitForReceipt(ctx context.Context, hash common.Hash, timeout, interval time.Duration) (*ethereum.Receipt, error)
	WaitForConfirmations(ctx context.Context, receipt *ethereum.Receipt, depth uint64, interval time.Duration) (ethereum.Confirmation, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*ethereum.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name ArtifactRepository . ArtifactRepository
type ArtifactRepository interface {
	Exists(ctx context.Context, txHash string) (bool, error)
	Save(ctx context.Context, artifact *repository.Artifact) (string, error)
}

//counterfeiter:generate -o fake -fake-name ReceiptValidator . ReceiptValidator
type ReceiptValidator interface {
	Validate(receipt *ethereum.Receipt, expectedRecipient common.Address) error
}

//counterfeiter:generate -o fake -fake-name AmountSampler . AmountSampler
type AmountSampler interface {
	Sample() (decimal.Decimal, error)
}
