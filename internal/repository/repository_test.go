package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"ethsend/internal/repository"
	"ethsend/internal/repository/fake"
	"ethsend/internal/storage"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const txHash = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"

func newArtifact(hash string) *repository.Artifact {
	loc, err := time.LoadLocation("Europe/Istanbul")
	Expect(err).NotTo(HaveOccurred())

	return &repository.Artifact{
		Summary: repository.Summary{
			RunID:         "6f1c3a34-5f2e-4d7e-9a0b-2b8f8d1e9c11",
			Sender:        "0xa7d9ddbe1f17865597fbd27ec712455208b6b76d",
			Receiver:      "0x2c7536e3605d9c16a7a3d7b1898e529396a65c23",
			AmountEth:     decimal.RequireFromString("0.005"),
			AmountWei:     big.NewInt(5_000_000_000_000_000),
			TxHash:        hash,
			BlockNumber:   100,
			BlockHash:     "0x1d59ff54b1eb26b013ce3cb5fc9dab3705b415a67127a003c3e61eb445bb8df2",
			ChainHead:     102,
			GasUsed:       21000,
			Status:        1,
			Confirmations: 3,
			Network:       "sepolia",
			Timestamp:     time.Date(2025, 3, 14, 15, 9, 26, 0, loc),
		},
		RawFullReceipt: map[string]any{
			"transactionHash": hash,
			"status":          "0x1",
		},
	}
}

var _ = Describe("ArtifactRepository", func() {
	var (
		repo        *repository.ArtifactRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewArtifactRepository(zap.NewNop().Sugar(), fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Exists", func() {
		var (
			found bool
			err   error
			hash  string
		)

		BeforeEach(func() {
			hash = txHash
		})

		JustBeforeEach(func() {
			found, err = repo.Exists(ctx, hash)
		})

		When("there are no artifacts", func() {
			BeforeEach(func() {
				fakeStorage.ListReturns([]string{}, nil)
			})

			It("reports the hash as new", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeFalse())
				Expect(fakeStorage.ReadCallCount()).To(BeZero())
			})
		})

		When("an artifact references the hash in another case", func() {
			BeforeEach(func() {
				hash = "0x" + strings.ToUpper(txHash[2:])
				fakeStorage.ListReturns([]string{"a.json", "b.json"}, nil)
				fakeStorage.ReadReturnsOnCall(0, []byte(`{"summary":{"tx_hash":"0xabc"}}`), nil)
				fakeStorage.ReadReturnsOnCall(1, []byte(`{"summary":{"tx_hash":"`+txHash+`"}}`), nil)
			})

			It("reports the hash as recorded", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
				Expect(fakeStorage.ReadCallCount()).To(Equal(2))
				_, name := fakeStorage.ReadArgsForCall(1)
				Expect(name).To(Equal("b.json"))
			})
		})

		When("only the top level carries the hash", func() {
			BeforeEach(func() {
				fakeStorage.ListReturns([]string{"a.json"}, nil)
				fakeStorage.ReadReturns([]byte(`{"tx_hash":"`+txHash+`"}`), nil)
			})

			It("does not count it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeFalse())
			})
		})

		When("some artifacts are corrupt or unreadable", func() {
			BeforeEach(func() {
				fakeStorage.ListReturns([]string{"bad.json", "gone.json", "good.json"}, nil)
				fakeStorage.ReadReturnsOnCall(0, []byte(`{not json`), nil)
				fakeStorage.ReadReturnsOnCall(1, nil, fakeErr)
				fakeStorage.ReadReturnsOnCall(2, []byte(`{"summary":{"tx_hash":"`+txHash+`"}}`), nil)
			})

			It("skips them and keeps scanning", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
				Expect(fakeStorage.ReadCallCount()).To(Equal(3))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeStorage.ListReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring("list artifacts"))
			})
		})
	})

	Describe("Save", func() {
		var (
			artifact *repository.Artifact
			path     string
			err      error
		)

		BeforeEach(func() {
			artifact = newArtifact(txHash)
			fakeStorage.CreateReturns("artifacts/out.json", nil)
		})

		JustBeforeEach(func() {
			path, err = repo.Save(ctx, artifact)
		})

		It("writes indented json under a hash based name", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal("artifacts/out.json"))

			Expect(fakeStorage.CreateCallCount()).To(Equal(1))
			_, name, data := fakeStorage.CreateArgsForCall(0)
			Expect(name).To(Equal("tx_20250314_150926_" + txHash[2:] + ".json"))
			Expect(string(data)).To(HavePrefix("{\n  \"summary\": {"))
		})

		It("encodes amounts as decimal string and integer", func() {
			_, _, data := fakeStorage.CreateArgsForCall(0)

			var decoded map[string]map[string]any
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded["summary"]["amount_eth"]).To(Equal("0.005"))
			Expect(decoded["summary"]["amount_wei"]).To(BeNumerically("==", 5e15))
			Expect(decoded["summary"]["timestamp"]).To(Equal("2025-03-14T15:09:26+03:00"))
			Expect(decoded["raw_full_receipt"]["status"]).To(Equal("0x1"))
		})

		When("the artifact has no hash", func() {
			BeforeEach(func() {
				artifact.Summary.TxHash = ""
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(repository.ErrInvalidArtifact))
				Expect(err.Error()).To(ContainSubstring("tx_hash"))
				Expect(fakeStorage.CreateCallCount()).To(BeZero())
			})
		})

		When("the artifact has no receipt", func() {
			BeforeEach(func() {
				artifact.RawFullReceipt = nil
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(repository.ErrInvalidArtifact))
				Expect(fakeStorage.CreateCallCount()).To(BeZero())
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns("", fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("with directory storage", func() {
		var root string

		BeforeEach(func() {
			root = filepath.Join(GinkgoT().TempDir(), "artifacts")
			repo = repository.NewArtifactRepository(zap.NewNop().Sugar(), storage.NewDir(root))
		})

		It("keeps dedupe answers stable around a save", func() {
			for range 2 {
				found, err := repo.Exists(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeFalse())
			}

			path, err := repo.Save(ctx, newArtifact(txHash))
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(BeAnExistingFile())

			for range 2 {
				found, err := repo.Exists(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
			}

			found, err := repo.Exists(ctx, "0x"+strings.Repeat("0", 64))
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("never overwrites an artifact with the same name", func() {
			_, err := repo.Save(ctx, newArtifact(txHash))
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.Save(ctx, newArtifact(txHash))
			Expect(err).To(MatchError(storage.ErrExists))

			entries, err := os.ReadDir(root)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})
})
