package credentials_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zoryamba/wezza/pkg/credentials"
)

func TestCredentials(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Credentials Suite")
}

var _ = Describe("Store", func() {
	var tmpDir string
	var store *credentials.Store

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "credentials-test-*")
		Expect(err).NotTo(HaveOccurred())

		store, err = credentials.NewStore(tmpDir, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("Load", func() {
		It("returns an empty store when the file is absent", func() {
			creds, err := store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(creds.Default).To(BeEmpty())
			Expect(creds.Providers).To(BeEmpty())

			_, err = os.Stat(store.Path())
			Expect(os.IsNotExist(err)).To(BeTrue(), "load alone should not create the file")
		})

		It("fails with ErrCorruptStore when the file is not valid TOML", func() {
			Expect(os.WriteFile(store.Path(), []byte("default = [broken"), 0o600)).To(Succeed())

			_, err := store.Load()
			Expect(err).To(MatchError(credentials.ErrCorruptStore))
		})

		It("round-trips everything written through Upsert and SetDefault", func() {
			Expect(store.Upsert("weatherapi", "", credentials.Record{APIKey: "abc"}, false)).To(Succeed())
			Expect(store.Upsert("accuweather", "work", credentials.Record{APIKey: "def"}, false)).To(Succeed())
			Expect(store.SetDefault("weatherapi")).To(Succeed())

			reopened, err := credentials.NewStore(tmpDir, nil)
			Expect(err).NotTo(HaveOccurred())

			creds, err := reopened.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(creds.Default).To(Equal("weatherapi"))
			Expect(creds.Providers["weatherapi"]["weatherapi"].APIKey).To(Equal("abc"))
			Expect(creds.Providers["accuweather"]["work"].APIKey).To(Equal("def"))
		})
	})

	Describe("Lookup", func() {
		It("resolves an empty alias to the provider's canonical alias", func() {
			Expect(store.Upsert("weatherapi", "", credentials.Record{APIKey: "abc"}, false)).To(Succeed())

			rec, err := store.Lookup("weatherapi", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.APIKey).To(Equal("abc"))
		})

		It("fails with ErrCredentialNotFound for a missing entry", func() {
			_, err := store.Lookup("accuweather", "")
			Expect(err).To(MatchError(credentials.ErrCredentialNotFound))
		})

		It("distinguishes aliases for the same provider", func() {
			Expect(store.Upsert("weatherapi", "", credentials.Record{APIKey: "personal"}, false)).To(Succeed())
			Expect(store.Upsert("weatherapi", "work", credentials.Record{APIKey: "corp"}, false)).To(Succeed())

			rec, err := store.Lookup("weatherapi", "work")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.APIKey).To(Equal("corp"))
		})
	})

	Describe("Upsert", func() {
		It("refuses to overwrite an existing entry without confirmation", func() {
			Expect(store.Upsert("weatherapi", "", credentials.Record{APIKey: "old"}, false)).To(Succeed())

			err := store.Upsert("weatherapi", "", credentials.Record{APIKey: "new"}, false)
			Expect(err).To(MatchError(credentials.ErrWouldOverwrite))

			rec, err := store.Lookup("weatherapi", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.APIKey).To(Equal("old"), "store must not be mutated on refusal")
		})

		It("overwrites when confirmed", func() {
			Expect(store.Upsert("weatherapi", "", credentials.Record{APIKey: "old"}, false)).To(Succeed())
			Expect(store.Upsert("weatherapi", "", credentials.Record{APIKey: "new"}, true)).To(Succeed())

			rec, err := store.Lookup("weatherapi", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.APIKey).To(Equal("new"))
		})

		It("creates the credentials file with owner-only permissions", func() {
			Expect(store.Upsert("weatherapi", "", credentials.Record{APIKey: "abc"}, false)).To(Succeed())

			info, err := os.Stat(store.Path())
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
		})
	})

	Describe("SetDefault", func() {
		It("fails with ErrNoSuchProvider when the provider has no entry", func() {
			err := store.SetDefault("accuweather")
			Expect(err).To(MatchError(credentials.ErrNoSuchProvider))

			_, err = store.ResolveDefault()
			Expect(err).To(MatchError(credentials.ErrNoDefaultConfigured), "a dangling default must never be set")
		})

		It("sets the default once an entry exists", func() {
			Expect(store.Upsert("accuweather", "", credentials.Record{APIKey: "abc"}, false)).To(Succeed())
			Expect(store.SetDefault("accuweather")).To(Succeed())

			id, err := store.ResolveDefault()
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("accuweather"))
		})
	})

	Describe("ResolveDefault", func() {
		It("fails with ErrNoDefaultConfigured on an empty store", func() {
			_, err := store.ResolveDefault()
			Expect(err).To(MatchError(credentials.ErrNoDefaultConfigured))
		})
	})

	Describe("atomic persistence", func() {
		It("ignores a stray temp file left by a crashed write", func() {
			Expect(store.Upsert("weatherapi", "", credentials.Record{APIKey: "good"}, false)).To(Succeed())

			// Simulate a crash after the temp write but before the rename.
			stray := filepath.Join(tmpDir, ".credentials-123456.toml")
			Expect(os.WriteFile(stray, []byte("half-writ"), 0o600)).To(Succeed())

			creds, err := store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(creds.Providers["weatherapi"]["weatherapi"].APIKey).To(Equal("good"))
		})

		It("performs one full-file rewrite per mutation", func() {
			Expect(store.Upsert("weatherapi", "", credentials.Record{APIKey: "a"}, false)).To(Succeed())
			first, err := os.ReadFile(store.Path())
			Expect(err).NotTo(HaveOccurred())

			Expect(store.Upsert("accuweather", "", credentials.Record{APIKey: "b"}, false)).To(Succeed())
			second, err := os.ReadFile(store.Path())
			Expect(err).NotTo(HaveOccurred())

			Expect(string(second)).To(ContainSubstring("weatherapi"))
			Expect(string(second)).To(ContainSubstring("accuweather"))
			Expect(string(first)).NotTo(ContainSubstring("accuweather"))
		})
	})
})
