package cmd

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"ethsend/internal/config"
	"ethsend/internal/core"
	"ethsend/internal/ethereum"
	"ethsend/internal/receipt"
	"ethsend/internal/repository"
	"ethsend/internal/storage"
	"ethsend/pkg/log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

var errInvalidKey error = errors.New("private key is not a valid secp256k1 key")

func Start() error {
	bootLogger := log.NewZapLogger("ethsend", log.ParseLevel(os.Getenv("LOG_LEVEL")))

	config, err := config.NewApp()
	if err != nil {
		bootLogger.Errorw("failed to load config", "error", err)
		return err
	}

	logger := log.NewZapLogger("ethsend", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	// the parse error is not logged, it may echo key material
	key, err := crypto.HexToECDSA(strings.TrimPrefix(config.PrivateKey.Reveal(), "0x"))
	if err != nil {
		logger.Errorw("failed to parse private key")
		return errInvalidKey
	}

	location, err := config.Location()
	if err != nil {
		logger.Errorw("failed to load timezone", "error", err)
		return err
	}

	// signals cancel any wait in progress
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	rpcClient, err := ethereum.Dial(ctx, config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer rpcClient.Close()

	// chain client
	node := ethereum.NewNodeService(
		logger.Named("node"),
		ethclient.NewClient(rpcClient),
		rpcClient,
		config.ChainID)

	// artifact store
	artifacts := repository.NewArtifactRepository(
		logger.Named("artifacts"),
		storage.NewDir(config.ArtifactsDir))

	sampler, err := core.NewRandomAmountSampler(config.MinAmount, config.MaxAmount, nil)
	if err != nil {
		logger.Errorw("invalid amount range", "error", err)
		return err
	}

	transferer := core.NewTransferer(
		logger,
		node,
		artifacts,
		receipt.NewValidator(logger.Named("receipt")),
		sampler,
		core.TransferConfig{
			Recipient:           common.HexToAddress(config.Recipient),
			MinConfirmations:    config.MinConfirmations,
			ReceiptTimeout:      config.ReceiptTimeout,
			PollInterval:        config.PollInterval,
			ConfirmationTimeout: config.ConfirmationTimeout,
			Network:             config.Network,
			ChainID:             config.ChainID,
			Location:            location,
		})

	return run(ctx, logger, transferer, key)
}

func run(ctx context.Context, logger *zap.SugaredLogger, transferer *core.Transferer, key *ecdsa.PrivateKey) error {
	result, err := transferer.Run(ctx, key)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warnw("transfer interrupted", "state", result.FailedIn)
		}
		return err
	}

	hash := result.Submitted.Hash.Hex()
	if result.SkipReason != nil {
		logger.Warnw("transfer complete, artifact skipped",
			"tx_hash", hash,
			"reason", result.SkipReason)
		return nil
	}

	logger.Infow("transfer complete",
		"tx_hash", hash,
		"amount_eth", result.Request.AmountEth.String(),
		"confirmations", result.Confirmation.Confirmations,
		"artifact", result.ArtifactPath)
	return nil
}
