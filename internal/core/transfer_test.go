package core_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"ethsend/internal/core"
	"ethsend/internal/core/fake"
	"ethsend/internal/ethereum"
	"ethsend/internal/receipt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Transferer", func() {
	var (
		transferer    *core.Transferer
		fakeChain     *fake.ChainClient
		fakeArtifacts *fake.ArtifactRepository
		fakeValidator *fake.ReceiptValidator
		fakeSampler   *fake.AmountSampler
		cfg           core.TransferConfig
		ctx           context.Context
		key           *ecdsa.PrivateKey
		sender        common.Address
		recipient     common.Address
		txHash        common.Hash
		amountWei     *big.Int
		balance       *big.Int
		now           time.Time
		fakeErr       error

		result *core.TransferResult
		err    error
	)

	BeforeEach(func() {
		var keyErr error
		key, keyErr = crypto.GenerateKey()
		Expect(keyErr).NotTo(HaveOccurred())
		sender = crypto.PubkeyToAddress(key.PublicKey)
		recipient = common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")
		txHash = common.HexToHash("0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b")
		amountWei = big.NewInt(5_000_000_000_000_000)
		balance = big.NewInt(1_000_000_000_000_000_000)
		fakeErr = errors.New("fake error")
		ctx = context.Background()

		loc, locErr := time.LoadLocation("Europe/Istanbul")
		Expect(locErr).NotTo(HaveOccurred())
		now = time.Date(2025, 3, 14, 12, 9, 26, 0, time.UTC)

		fakeChain = new(fake.ChainClient)
		fakeArtifacts = new(fake.ArtifactRepository)
		fakeValidator = new(fake.ReceiptValidator)
		fakeSampler = new(fake.AmountSampler)

		fakeSampler.SampleReturns(decimal.RequireFromString("0.005"), nil)
		fakeChain.BalanceOfReturnsOnCall(0, balance, nil)
		fakeChain.BalanceOfReturnsOnCall(1, new(big.Int).Add(balance, amountWei), nil)
		fakeChain.SubmitReturns(&ethereum.SubmittedTransaction{Hash: txHash, Nonce: 7, GasLimit: 21000}, nil)
		fakeChain.WaitForReceiptReturns(ethereum.ParseReceipt(map[string]any{
			"transactionHash": txHash.Hex(),
			"blockHash":       "0x1d59ff54b1eb26b013ce3cb5fc9dab3705b415a67127a003c3e61eb445bb8df2",
			"blockNumber":     "0x64",
			"status":          "0x1",
			"to":              recipient.Hex(),
			"gasUsed":         "0x5208",
		}), nil)
		fakeChain.WaitForConfirmationsReturns(ethereum.Confirmation{TargetBlock: 100, Head: 102, Confirmations: 3}, nil)
		fakeChain.TransactionByHashReturns(&ethereum.Transaction{
			Hash:  txHash,
			From:  sender,
			To:    &recipient,
			Value: new(big.Int).Set(amountWei),
		}, nil)
		fakeArtifacts.ExistsReturns(false, nil)
		fakeArtifacts.SaveReturns("artifacts/tx.json", nil)

		cfg = core.TransferConfig{
			Recipient:        recipient,
			MinConfirmations: 3,
			ReceiptTimeout:   2 * time.Minute,
			PollInterval:     2 * time.Second,
			Network:          "sepolia",
			ChainID:          big.NewInt(11155111),
			Location:         loc,
			Now:              func() time.Time { return now },
		}
	})

	JustBeforeEach(func() {
		transferer = core.NewTransferer(zap.NewNop().Sugar(), fakeChain, fakeArtifacts, fakeValidator, fakeSampler, cfg)
		result, err = transferer.Run(ctx, key)
	})

	When("every step succeeds", func() {
		It("persists the artifact", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.State).To(Equal(core.StatePersisted))
			Expect(result.Persisted).To(BeTrue())
			Expect(result.ArtifactPath).To(Equal("artifacts/tx.json"))
			Expect(result.SkipReason).NotTo(HaveOccurred())
		})

		It("sends the sampled amount to the recipient", func() {
			Expect(fakeChain.SubmitCallCount()).To(Equal(1))
			_, usedKey, to, value := fakeChain.SubmitArgsForCall(0)
			Expect(usedKey).To(Equal(key))
			Expect(to).To(Equal(recipient))
			Expect(value.Cmp(amountWei)).To(BeZero())

			Expect(result.Request.Sender).To(Equal(sender))
			Expect(result.Request.ChainID.Int64()).To(Equal(int64(11155111)))
		})

		It("polls with the configured budget", func() {
			_, hash, timeout, interval := fakeChain.WaitForReceiptArgsForCall(0)
			Expect(hash).To(Equal(txHash))
			Expect(timeout).To(Equal(2 * time.Minute))
			Expect(interval).To(Equal(2 * time.Second))

			waitCtx, rcpt, depth, _ := fakeChain.WaitForConfirmationsArgsForCall(0)
			Expect(rcpt).To(Equal(result.Receipt))
			Expect(depth).To(Equal(uint64(3)))
			_, hasDeadline := waitCtx.Deadline()
			Expect(hasDeadline).To(BeFalse())
		})

		It("reads the recipient balance around the transfer", func() {
			Expect(fakeChain.BalanceOfCallCount()).To(Equal(2))
			_, addr := fakeChain.BalanceOfArgsForCall(1)
			Expect(addr).To(Equal(recipient))
		})

		It("validates the receipt against the recipient", func() {
			Expect(fakeValidator.ValidateCallCount()).To(Equal(1))
			rcpt, expected := fakeValidator.ValidateArgsForCall(0)
			Expect(rcpt).To(Equal(result.Receipt))
			Expect(expected).To(Equal(recipient))
		})

		It("builds the artifact summary", func() {
			Expect(fakeArtifacts.ExistsCallCount()).To(Equal(1))
			_, hash := fakeArtifacts.ExistsArgsForCall(0)
			Expect(hash).To(Equal(txHash.Hex()))

			Expect(fakeArtifacts.SaveCallCount()).To(Equal(1))
			_, artifact := fakeArtifacts.SaveArgsForCall(0)
			summary := artifact.Summary
			Expect(summary.RunID).NotTo(BeEmpty())
			Expect(summary.Sender).To(Equal(sender.Hex()))
			Expect(summary.Receiver).To(Equal(recipient.Hex()))
			Expect(summary.AmountEth.String()).To(Equal("0.005"))
			Expect(summary.AmountWei.Cmp(amountWei)).To(BeZero())
			Expect(summary.TxHash).To(Equal(txHash.Hex()))
			Expect(summary.BlockNumber).To(Equal(uint64(100)))
			Expect(summary.ChainHead).To(Equal(uint64(102)))
			Expect(summary.GasUsed).To(Equal(uint64(21000)))
			Expect(summary.Status).To(Equal(uint64(1)))
			Expect(summary.Confirmations).To(Equal(uint64(3)))
			Expect(summary.Network).To(Equal("sepolia"))
			Expect(summary.Timestamp.Format(time.RFC3339)).To(Equal("2025-03-14T15:09:26+03:00"))
			Expect(artifact.RawFullReceipt).To(HaveKeyWithValue("status", "0x1"))
		})
	})

	When("a confirmation timeout is configured", func() {
		BeforeEach(func() {
			cfg.ConfirmationTimeout = time.Minute
		})

		It("bounds the confirmation wait", func() {
			Expect(err).NotTo(HaveOccurred())
			waitCtx, _, _, _ := fakeChain.WaitForConfirmationsArgsForCall(0)
			_, hasDeadline := waitCtx.Deadline()
			Expect(hasDeadline).To(BeTrue())
		})
	})

	When("the node is unreachable", func() {
		BeforeEach(func() {
			fakeChain.PingReturns(ethereum.ErrConnection)
		})

		It("fails before anything is sent", func() {
			Expect(err).To(MatchError(ethereum.ErrConnection))
			Expect(result.State).To(Equal(core.StateFailed))
			Expect(result.FailedIn).To(Equal(core.StateInit))
			Expect(fakeChain.BalanceOfCallCount()).To(BeZero())
			Expect(fakeChain.SubmitCallCount()).To(BeZero())
		})
	})

	When("sampling fails", func() {
		BeforeEach(func() {
			fakeSampler.SampleReturns(decimal.Decimal{}, fakeErr)
		})

		It("fails while connected", func() {
			Expect(err).To(MatchError(fakeErr))
			Expect(result.FailedIn).To(Equal(core.StateConnected))
			Expect(fakeChain.SubmitCallCount()).To(BeZero())
		})
	})

	When("submission fails", func() {
		BeforeEach(func() {
			fakeChain.SubmitReturns(nil, ethereum.ErrSubmission)
		})

		It("does not wait for a receipt", func() {
			Expect(err).To(MatchError(ethereum.ErrSubmission))
			Expect(result.FailedIn).To(Equal(core.StateAmountSelected))
			Expect(fakeChain.WaitForReceiptCallCount()).To(BeZero())
		})
	})

	When("the receipt never arrives", func() {
		BeforeEach(func() {
			fakeChain.WaitForReceiptReturns(nil, ethereum.ErrInclusionTimeout)
		})

		It("fails with the inclusion timeout", func() {
			Expect(err).To(MatchError(ethereum.ErrInclusionTimeout))
			Expect(result.FailedIn).To(Equal(core.StateSubmitted))
			Expect(fakeChain.WaitForConfirmationsCallCount()).To(BeZero())
			Expect(fakeArtifacts.SaveCallCount()).To(BeZero())
		})
	})

	When("the chain head regresses", func() {
		BeforeEach(func() {
			fakeChain.WaitForConfirmationsReturns(ethereum.Confirmation{}, ethereum.ErrChainRegression)
		})

		It("fails after inclusion", func() {
			Expect(err).To(MatchError(ethereum.ErrChainRegression))
			Expect(result.FailedIn).To(Equal(core.StateIncluded))
			Expect(fakeChain.TransactionByHashCallCount()).To(BeZero())
		})
	})

	Describe("transaction cross-check", func() {
		returnTx := func(mutate func(tx *ethereum.Transaction)) {
			tx := &ethereum.Transaction{Hash: txHash, From: sender, To: &recipient, Value: new(big.Int).Set(amountWei)}
			mutate(tx)
			fakeChain.TransactionByHashReturns(tx, nil)
		}

		assertMismatch := func() {
			It("reports a mismatch before validating the receipt", func() {
				Expect(err).To(MatchError(core.ErrCrossCheckMismatch))
				Expect(result.FailedIn).To(Equal(core.StateConfirmationsReached))
				Expect(fakeValidator.ValidateCallCount()).To(BeZero())
				Expect(fakeArtifacts.SaveCallCount()).To(BeZero())
			})
		}

		When("the transaction is still pending", func() {
			BeforeEach(func() {
				returnTx(func(tx *ethereum.Transaction) { tx.Pending = true })
			})
			assertMismatch()
		})

		When("the transaction has no recipient", func() {
			BeforeEach(func() {
				returnTx(func(tx *ethereum.Transaction) { tx.To = nil })
			})
			assertMismatch()
		})

		When("the transaction went elsewhere", func() {
			BeforeEach(func() {
				returnTx(func(tx *ethereum.Transaction) {
					other := common.HexToAddress("0xa7d9ddbe1f17865597fbd27ec712455208b6b76d")
					tx.To = &other
				})
			})
			assertMismatch()
		})

		When("the transaction carries another value", func() {
			BeforeEach(func() {
				returnTx(func(tx *ethereum.Transaction) { tx.Value = big.NewInt(1) })
			})
			assertMismatch()
		})

		When("the transaction has another sender", func() {
			BeforeEach(func() {
				returnTx(func(tx *ethereum.Transaction) { tx.From = common.Address{} })
			})
			assertMismatch()
		})
	})

	When("the receipt is rejected", func() {
		BeforeEach(func() {
			fakeValidator.ValidateReturns(receipt.ErrValidation)
		})

		It("stops before the post balance read", func() {
			Expect(err).To(MatchError(receipt.ErrValidation))
			Expect(fakeChain.BalanceOfCallCount()).To(Equal(1))
			Expect(fakeArtifacts.ExistsCallCount()).To(BeZero())
			Expect(fakeArtifacts.SaveCallCount()).To(BeZero())
		})
	})

	When("the balance moved by another amount", func() {
		BeforeEach(func() {
			fakeChain.BalanceOfReturnsOnCall(1, new(big.Int).Add(balance, big.NewInt(1)), nil)
		})

		It("reports a mismatch", func() {
			Expect(err).To(MatchError(core.ErrCrossCheckMismatch))
			Expect(err.Error()).To(ContainSubstring("balance changed by 1 wei"))
			Expect(result.BalanceAfter.Cmp(balance)).To(Equal(1))
			Expect(fakeArtifacts.SaveCallCount()).To(BeZero())
		})
	})

	When("the transaction is already recorded", func() {
		BeforeEach(func() {
			fakeArtifacts.ExistsReturns(true, nil)
		})

		It("succeeds without saving", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.State).To(Equal(core.StatePersisted))
			Expect(result.Persisted).To(BeFalse())
			Expect(result.SkipReason).To(MatchError(core.ErrPersistenceSkipped))
			Expect(fakeArtifacts.SaveCallCount()).To(BeZero())
		})
	})

	When("the duplicate check fails", func() {
		BeforeEach(func() {
			fakeArtifacts.ExistsReturns(false, fakeErr)
		})

		It("fails after verification", func() {
			Expect(err).To(MatchError(fakeErr))
			Expect(result.FailedIn).To(Equal(core.StateVerified))
			Expect(fakeArtifacts.SaveCallCount()).To(BeZero())
		})
	})

	When("saving fails", func() {
		BeforeEach(func() {
			fakeArtifacts.SaveReturns("", fakeErr)
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(fakeErr))
			Expect(result.FailedIn).To(Equal(core.StateVerified))
			Expect(result.Persisted).To(BeFalse())
		})
	})
})
