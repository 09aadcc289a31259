package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

const receiptMethod = "eth_getTransactionReceipt"

// NodeService talks to a single remote node on a fixed chain.
type NodeService struct {
	logs    *zap.SugaredLogger
	client  EthClient
	rpc     RPCClient
	chainID *big.Int
}

// NewNodeService is a constructor function for the NodeService type.
func NewNodeService(logger *zap.SugaredLogger, ethClient EthClient, rpcClient RPCClient, chainID *big.Int) *NodeService {
	return &NodeService{
		logs:    logger,
		client:  ethClient,
		rpc:     rpcClient,
		chainID: new(big.Int).Set(chainID),
	}
}

// Dial opens an RPC connection to the endpoint. It does not probe the node;
// call Ping before anything else.
func Dial(ctx context.Context, endpoint string) (*rpc.Client, error) {
	client, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: dial node: %w", ErrConnection, err)
	}
	return client, nil
}

// Ping checks that the node answers and serves the expected chain.
func (s *NodeService) Ping(ctx context.Context) error {
	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("%w: chain id probe: %w", ErrConnection, err)
	}

	if chainID.Cmp(s.chainID) != 0 {
		return fmt.Errorf("%w: node serves chain %s, expected %s", ErrConnection, chainID, s.chainID)
	}

	s.logs.Infow("connected to node", "chain_id", chainID.String())
	return nil
}

// BalanceOf returns the latest balance of address in wei.
func (s *NodeService) BalanceOf(ctx context.Context, address common.Address) (*big.Int, error) {
	balance, err := s.client.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance of %s: %w", address.Hex(), err)
	}
	return balance, nil
}

// Submit builds, signs and broadcasts a value transfer of amountWei to
// recipient. It returns as soon as the node accepts the transaction.
func (s *NodeService) Submit(ctx context.Context, key *ecdsa.PrivateKey, recipient common.Address, amountWei *big.Int) (*SubmittedTransaction, error) {
	sender := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := s.client.PendingNonceAt(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("%w: get nonce: %w", ErrSubmission, err)
	}

	gasLimit, err := s.client.EstimateGas(ctx, geth.CallMsg{
		From:  sender,
		To:    &recipient,
		Value: amountWei,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: estimate gas: %w", ErrSubmission, err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: suggest gas price: %w", ErrSubmission, err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &recipient,
		Value:    amountWei,
		Gas:      gasLimit,
		GasPrice: gasPrice,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), key)
	if err != nil {
		return nil, fmt.Errorf("%w: sign transaction: %w", ErrSubmission, err)
	}

	payload, err := signed.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: encode transaction: %w", ErrSubmission, err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("%w: send transaction: %w", ErrSubmission, err)
	}

	s.logs.Infow("transaction sent",
		"tx_hash", signed.Hash().Hex(),
		"nonce", nonce,
		"gas_limit", gasLimit,
		"gas_price", gasPrice.String())

	return &SubmittedTransaction{
		Hash:     signed.Hash(),
		Nonce:    nonce,
		GasLimit: gasLimit,
		GasPrice: gasPrice,
		Payload:  payload,
	}, nil
}

// TransactionByHash looks the transaction up independently of its receipt.
func (s *NodeService) TransactionByHash(ctx context.Context, hash common.Hash) (*Transaction, error) {
	tx, pending, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", hash.Hex(), err)
	}

	signer := types.LatestSignerForChainID(s.chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return nil, fmt.Errorf("recover sender of %s: %w", hash.Hex(), err)
	}

	return &Transaction{
		Hash:     tx.Hash(),
		From:     from,
		To:       tx.To(),
		Value:    tx.Value(),
		Nonce:    tx.Nonce(),
		Gas:      tx.Gas(),
		GasPrice: tx.GasPrice(),
		Pending:  pending,
	}, nil
}

func (s *NodeService) receipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	var raw map[string]any
	if err := s.rpc.CallContext(ctx, &raw, receiptMethod, hash); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, geth.NotFound
	}
	return ParseReceipt(raw), nil
}
