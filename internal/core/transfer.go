package core

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"ethsend/internal/ethereum"
	"ethsend/internal/repository"
	"ethsend/pkg/units"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCrossCheckMismatch error = errors.New("on-chain state does not match the request")
	ErrPersistenceSkipped error = errors.New("artifact already recorded")
)

// Transferer runs one transfer from submission to a persisted artifact.
type Transferer struct {
	logs      *zap.SugaredLogger
	chain     ChainClient
	artifacts ArtifactRepository
	validator ReceiptValidator
	sampler   AmountSampler
	cfg       TransferConfig
}

// NewTransferer is a constructor function for the Transferer type.
func NewTransferer(logger *zap.SugaredLogger, chain ChainClient, artifacts ArtifactRepository, validator ReceiptValidator, sampler AmountSampler, cfg TransferConfig) *Transferer {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	return &Transferer{
		logs:      logger,
		chain:     chain,
		artifacts: artifacts,
		validator: validator,
		sampler:   sampler,
		cfg:       cfg,
	}
}

// Run performs the transfer signed by key. The returned result is never nil;
// when err is not nil its State is StateFailed. A duplicate artifact is not an
// error: the result then carries ErrPersistenceSkipped as SkipReason.
func (t *Transferer) Run(ctx context.Context, key *ecdsa.PrivateKey) (*TransferResult, error) {
	result := &TransferResult{State: StateInit}

	if err := t.run(ctx, key, result); err != nil {
		t.logs.Errorw("transfer failed", "state", result.State, "error", err)
		result.FailedIn = result.State
		result.State = StateFailed
		return result, err
	}

	return result, nil
}

func (t *Transferer) run(ctx context.Context, key *ecdsa.PrivateKey, result *TransferResult) error {
	if err := t.chain.Ping(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	t.advance(result, StateConnected)

	before, err := t.chain.BalanceOf(ctx, t.cfg.Recipient)
	if err != nil {
		return fmt.Errorf("balance before: %w", err)
	}
	result.BalanceBefore = before
	t.logs.Infow("recipient balance before", "address", t.cfg.Recipient.Hex(), "wei", before.String())

	req, err := t.request(key)
	if err != nil {
		return err
	}
	result.Request = req
	t.logs.Infow("amount chosen", "eth", req.AmountEth.String(), "wei", req.AmountWei.String())
	t.advance(result, StateAmountSelected)

	submitted, err := t.chain.Submit(ctx, key, req.Recipient, req.AmountWei)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	result.Submitted = submitted
	t.advance(result, StateSubmitted)

	receipt, err := t.chain.WaitForReceipt(ctx, submitted.Hash, t.cfg.ReceiptTimeout, t.cfg.PollInterval)
	if err != nil {
		return fmt.Errorf("wait for inclusion: %w", err)
	}
	result.Receipt = receipt
	t.advance(result, StateIncluded)

	confirmation, err := t.waitForConfirmations(ctx, result)
	if err != nil {
		return err
	}
	result.Confirmation = confirmation
	t.logs.Infow("confirmations reached",
		"confirmations", confirmation.Confirmations,
		"block_number", confirmation.TargetBlock,
		"head", confirmation.Head)
	t.advance(result, StateConfirmationsReached)

	if err := t.verify(ctx, result); err != nil {
		return err
	}
	t.advance(result, StateVerified)

	return t.persist(ctx, result)
}

func (t *Transferer) request(key *ecdsa.PrivateKey) (*TransferRequest, error) {
	amount, err := t.sampler.Sample()
	if err != nil {
		return nil, fmt.Errorf("sample amount: %w", err)
	}

	wei, err := units.ToWei(amount)
	if err != nil {
		return nil, fmt.Errorf("convert amount: %w", err)
	}

	return &TransferRequest{
		Sender:    crypto.PubkeyToAddress(key.PublicKey),
		Recipient: t.cfg.Recipient,
		AmountEth: amount,
		AmountWei: wei,
		ChainID:   new(big.Int).Set(t.cfg.ChainID),
	}, nil
}

func (t *Transferer) waitForConfirmations(ctx context.Context, result *TransferResult) (ethereum.Confirmation, error) {
	if t.cfg.ConfirmationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.ConfirmationTimeout)
		defer cancel()
	}

	confirmation, err := t.chain.WaitForConfirmations(ctx, result.Receipt, t.cfg.MinConfirmations, t.cfg.PollInterval)
	if err != nil {
		return confirmation, fmt.Errorf("wait for confirmations: %w", err)
	}
	return confirmation, nil
}

// verify compares the recorded transaction, the receipt and the recipient
// balance against the request. Every comparison is exact.
func (t *Transferer) verify(ctx context.Context, result *TransferResult) error {
	req := result.Request
	hash := result.Submitted.Hash

	tx, err := t.chain.TransactionByHash(ctx, hash)
	if err != nil {
		return fmt.Errorf("look up transaction: %w", err)
	}
	switch {
	case tx.Pending:
		return fmt.Errorf("%w: transaction %s still pending", ErrCrossCheckMismatch, hash.Hex())
	case tx.To == nil || *tx.To != req.Recipient:
		return fmt.Errorf("%w: recipient is %v, expected %s", ErrCrossCheckMismatch, tx.To, req.Recipient.Hex())
	case tx.Value == nil || tx.Value.Cmp(req.AmountWei) != 0:
		return fmt.Errorf("%w: value is %v wei, expected %s", ErrCrossCheckMismatch, tx.Value, req.AmountWei)
	case tx.From != req.Sender:
		return fmt.Errorf("%w: sender is %s, expected %s", ErrCrossCheckMismatch, tx.From.Hex(), req.Sender.Hex())
	}
	t.logs.Infow("transaction fields verified", "tx_hash", hash.Hex())

	if err := t.validator.Validate(result.Receipt, req.Recipient); err != nil {
		return fmt.Errorf("validate receipt: %w", err)
	}

	after, err := t.chain.BalanceOf(ctx, req.Recipient)
	if err != nil {
		return fmt.Errorf("balance after: %w", err)
	}
	result.BalanceAfter = after
	t.logs.Infow("recipient balance after", "address", req.Recipient.Hex(), "wei", after.String())

	delta := new(big.Int).Sub(after, result.BalanceBefore)
	if delta.Cmp(req.AmountWei) != 0 {
		return fmt.Errorf("%w: balance changed by %s wei, expected %s", ErrCrossCheckMismatch, delta, req.AmountWei)
	}
	t.logs.Infow("balance verification passed", "delta_wei", delta.String())

	return nil
}

func (t *Transferer) persist(ctx context.Context, result *TransferResult) error {
	artifact := t.artifact(result)
	result.Artifact = artifact

	found, err := t.artifacts.Exists(ctx, artifact.Summary.TxHash)
	if err != nil {
		return fmt.Errorf("check for duplicate artifact: %w", err)
	}
	if found {
		result.SkipReason = ErrPersistenceSkipped
		t.logs.Warnw("transaction already recorded, artifact not saved", "tx_hash", artifact.Summary.TxHash)
		t.advance(result, StatePersisted)
		return nil
	}

	path, err := t.artifacts.Save(ctx, artifact)
	if err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}
	result.ArtifactPath = path
	result.Persisted = true
	t.logs.Infow("artifact written", "path", path)
	t.advance(result, StatePersisted)

	return nil
}

func (t *Transferer) artifact(result *TransferResult) *repository.Artifact {
	req := result.Request
	receipt := result.Receipt

	summary := repository.Summary{
		RunID:         uuid.NewString(),
		Sender:        req.Sender.Hex(),
		Receiver:      req.Recipient.Hex(),
		AmountEth:     req.AmountEth,
		AmountWei:     new(big.Int).Set(req.AmountWei),
		TxHash:        result.Submitted.Hash.Hex(),
		ChainHead:     result.Confirmation.Head,
		Confirmations: result.Confirmation.Confirmations,
		Network:       t.cfg.Network,
		Timestamp:     t.cfg.Now().In(t.cfg.Location),
	}
	if receipt.BlockNumber != nil {
		summary.BlockNumber = *receipt.BlockNumber
	}
	if receipt.BlockHash != nil {
		summary.BlockHash = receipt.BlockHash.Hex()
	}
	if receipt.GasUsed != nil {
		summary.GasUsed = *receipt.GasUsed
	}
	if receipt.Status != nil {
		summary.Status = *receipt.Status
	}

	return &repository.Artifact{
		Summary:        summary,
		RawFullReceipt: receipt.Raw,
	}
}

func (t *Transferer) advance(result *TransferResult, state State) {
	t.logs.Debugw("state changed", "from", result.State, "to", state)
	result.State = state
}
