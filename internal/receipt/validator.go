package receipt

import (
	"errors"
	"fmt"

	"ethsend/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
	"go.uber.org/zap"
)

var ErrValidation error = errors.New("receipt validation failed")

const (
	StatusFailure uint64 = 0
	StatusSuccess uint64 = 1
)

var requiredFields = []string{
	ethereum.FieldBlockNumber,
	ethereum.FieldStatus,
	ethereum.FieldTransactionHash,
	ethereum.FieldBlockHash,
	ethereum.FieldTo,
}

// Validator checks a receipt for structure first and business rules second,
// stopping at the first problem.
type Validator struct {
	logs *zap.SugaredLogger
}

func NewValidator(logger *zap.SugaredLogger) *Validator {
	return &Validator{
		logs: logger,
	}
}

func (v *Validator) Validate(r *ethereum.Receipt, expectedRecipient common.Address) error {
	if r == nil {
		return fmt.Errorf("%w: no receipt", ErrValidation)
	}

	for _, field := range requiredFields {
		if _, ok := r.Raw[field]; !ok {
			return fmt.Errorf("%w: missing field %s", ErrValidation, field)
		}
	}

	if err := newFields(r).validate(expectedRecipient); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	v.logs.Infow("receipt validation passed", "tx_hash", r.TxHash.Hex())
	return nil
}

// fields is the parsed receipt under its JSON names, so rule errors read
// like the node's payload.
type fields struct {
	BlockNumber *uint64         `json:"blockNumber"`
	Status      *uint64         `json:"status"`
	TxHash      *common.Hash    `json:"transactionHash"`
	BlockHash   *common.Hash    `json:"blockHash"`
	To          *common.Address `json:"to"`
}

func newFields(r *ethereum.Receipt) *fields {
	return &fields{
		BlockNumber: r.BlockNumber,
		Status:      r.Status,
		TxHash:      r.TxHash,
		BlockHash:   r.BlockHash,
		To:          r.To,
	}
}

// validate runs the rule groups in order and stops at the first failing one.
func (f *fields) validate(expectedRecipient common.Address) error {
	notInteger := validation.NotNil.Error("must be an integer")
	null := validation.NotNil.Error("is null")

	stages := []func() error{
		func() error {
			return validation.ValidateStruct(f,
				validation.Field(&f.BlockNumber, notInteger),
				validation.Field(&f.Status, notInteger),
			)
		},
		func() error {
			return validation.ValidateStruct(f,
				validation.Field(&f.Status,
					validation.In(StatusFailure, StatusSuccess).Error("must be 0 (failure) or 1 (success)"),
					validation.By(succeeded)),
			)
		},
		func() error {
			return validation.ValidateStruct(f,
				validation.Field(&f.TxHash, null),
				validation.Field(&f.BlockHash, null),
			)
		},
		func() error {
			return validation.ValidateStruct(f,
				validation.Field(&f.To, null, validation.By(sameAddress(expectedRecipient))),
			)
		},
	}

	for _, stage := range stages {
		if err := stage(); err != nil {
			return err
		}
	}
	return nil
}

func succeeded(value any) error {
	status, _ := value.(*uint64)
	if status != nil && *status != StatusSuccess {
		return errors.New("transaction failed on-chain")
	}
	return nil
}

// sameAddress compares bytes, so hex letter case does not matter.
func sameAddress(expected common.Address) validation.RuleFunc {
	return func(value any) error {
		to, _ := value.(*common.Address)
		if to != nil && *to != expected {
			return fmt.Errorf("recipient mismatch: expected %s, got %s", expected.Hex(), to.Hex())
		}
		return nil
	}
}
