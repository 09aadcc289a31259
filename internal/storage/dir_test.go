package storage_test

import (
	"context"
	"ethsend/internal/storage"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dir", func() {
	var (
		root string
		dir  *storage.Dir
		ctx  context.Context
	)

	BeforeEach(func() {
		root = filepath.Join(GinkgoT().TempDir(), "artifacts")
		dir = storage.NewDir(root)
		ctx = context.Background()
	})

	Describe("List", func() {
		When("the directory does not exist", func() {
			It("returns no records", func() {
				names, err := dir.List(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(names).To(BeEmpty())
			})
		})

		When("the directory holds mixed entries", func() {
			BeforeEach(func() {
				Expect(os.MkdirAll(filepath.Join(root, "nested.json"), 0o755)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(root, "b.json"), []byte("{}"), 0o644)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(root, "a.json"), []byte("{}"), 0o644)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644)).To(Succeed())
			})

			It("returns only json files sorted by name", func() {
				names, err := dir.List(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(names).To(Equal([]string{"a.json", "b.json"}))
			})
		})

		When("the context is cancelled", func() {
			It("returns the context error", func() {
				cancelled, cancel := context.WithCancel(ctx)
				cancel()
				_, err := dir.List(cancelled)
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})

	Describe("Create", func() {
		It("creates the directory and writes the record", func() {
			path, err := dir.Create(ctx, "x.json", []byte(`{"a":1}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(filepath.Join(root, "x.json")))

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`{"a":1}`))
		})

		It("refuses to overwrite an existing record", func() {
			_, err := dir.Create(ctx, "x.json", []byte("first"))
			Expect(err).NotTo(HaveOccurred())

			_, err = dir.Create(ctx, "x.json", []byte("second"))
			Expect(err).To(MatchError(storage.ErrExists))

			data, err := dir.Read(ctx, "x.json")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("first"))
		})

		It("keeps records inside the directory", func() {
			path, err := dir.Create(ctx, "../escape.json", []byte("{}"))
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Dir(path)).To(Equal(root))
		})
	})

	Describe("Read", func() {
		It("reports missing records", func() {
			_, err := dir.Read(ctx, "missing.json")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})
	})
})
