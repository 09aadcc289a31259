package ethereum

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type SubmittedTransaction struct {
	Hash     common.Hash
	Nonce    uint64
	GasLimit uint64
	GasPrice *big.Int
	Payload  []byte // signed binary encoding as broadcast
}

type Transaction struct {
	Hash     common.Hash
	From     common.Address
	To       *common.Address
	Value    *big.Int
	Nonce    uint64
	Gas      uint64
	GasPrice *big.Int
	Pending  bool
}

// Receipt is a leniently parsed eth_getTransactionReceipt result. A field that
// is absent, null or not decodable is left nil; Raw keeps the node's JSON.
type Receipt struct {
	TxHash      *common.Hash
	BlockHash   *common.Hash
	BlockNumber *uint64
	Status      *uint64
	To          *common.Address
	From        *common.Address
	GasUsed     *uint64
	Raw         map[string]any
}

type Confirmation struct {
	TargetBlock   uint64
	Head          uint64
	Confirmations uint64
}

// Receipt JSON field names.
const (
	FieldTransactionHash = "transactionHash"
	FieldBlockHash       = "blockHash"
	FieldBlockNumber     = "blockNumber"
	FieldStatus          = "status"
	FieldTo              = "to"
	FieldFrom            = "from"
	FieldGasUsed         = "gasUsed"
)

func ParseReceipt(raw map[string]any) *Receipt {
	return &Receipt{
		TxHash:      hashField(raw, FieldTransactionHash),
		BlockHash:   hashField(raw, FieldBlockHash),
		BlockNumber: quantityField(raw, FieldBlockNumber),
		Status:      quantityField(raw, FieldStatus),
		To:          addressField(raw, FieldTo),
		From:        addressField(raw, FieldFrom),
		GasUsed:     quantityField(raw, FieldGasUsed),
		Raw:         raw,
	}
}

func hashField(raw map[string]any, key string) *common.Hash {
	s, ok := raw[key].(string)
	if !ok {
		return nil
	}
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return nil
	}
	h := common.BytesToHash(b)
	return &h
}

func quantityField(raw map[string]any, key string) *uint64 {
	switch v := raw[key].(type) {
	case string:
		n, err := hexutil.DecodeUint64(v)
		if err != nil {
			return nil
		}
		return &n
	case float64:
		if v < 0 || v != math.Trunc(v) || v >= math.MaxUint64 {
			return nil
		}
		n := uint64(v)
		return &n
	default:
		return nil
	}
}

func addressField(raw map[string]any, key string) *common.Address {
	s, ok := raw[key].(string)
	if !ok || !common.IsHexAddress(s) {
		return nil
	}
	addr := common.HexToAddress(s)
	return &addr
}
