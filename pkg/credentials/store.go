// Package credentials manages reading and writing credentials.toml in the
// .wezza/ directory.
package credentials

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/zoryamba/wezza/pkg/dotdir"
)

const (
	credentialsFile = "credentials.toml"

	currentVersion = 0
)

// Closed set of store failure kinds. Callers match with errors.Is.
var (
	// ErrCorruptStore means the credentials file exists but cannot be
	// parsed as TOML.
	ErrCorruptStore = errors.New("corrupt credentials store")

	// ErrCredentialNotFound means no entry exists for the requested
	// (provider, alias) pair.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrNoDefaultConfigured means no default provider is set.
	ErrNoDefaultConfigured = errors.New("no default provider configured")

	// ErrWouldOverwrite means an entry already exists for the
	// (provider, alias) pair and the caller did not confirm overwriting.
	ErrWouldOverwrite = errors.New("credential already exists")

	// ErrNoSuchProvider means a default was requested for a provider
	// that has no stored credential.
	ErrNoSuchProvider = errors.New("no credential stored for provider")
)

// Store manages credentials.toml at a fixed path. Every operation reads
// the file fresh and every mutation rewrites it in full, atomically, so
// concurrent invocations never observe a half-written file.
type Store struct {
	targetPath string
	log        *zap.Logger
}

// NewStore creates a Store rooted in the .wezza/ directory. If override
// is non-empty it is used as the directory; otherwise the standard
// dotdir resolution applies.
func NewStore(override string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	target, err := dotdir.NewManager().Target(override)
	if err != nil {
		return nil, err
	}

	return &Store{
		targetPath: filepath.Join(target, credentialsFile),
		log:        log,
	}, nil
}

// Path returns the resolved path to the credentials file.
func (s *Store) Path() string {
	return s.targetPath
}

// Load reads credentials.toml. A missing file is not an error: it yields
// an empty store with no default and no entries.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.targetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debug("credentials file absent, starting empty", zap.String("path", s.targetPath))
			return &Credentials{
				Version:   currentVersion,
				Providers: make(map[string]map[string]Record),
			}, nil
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	creds := &Credentials{}
	if err := toml.Unmarshal(data, creds); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.targetPath, err)
	}

	if creds.Providers == nil {
		creds.Providers = make(map[string]map[string]Record)
	}

	return creds, nil
}

// Lookup resolves the credential for (provider, alias). An empty alias
// resolves to the provider's canonical alias, which is the provider id
// itself.
func (s *Store) Lookup(provider, alias string) (Record, error) {
	creds, err := s.Load()
	if err != nil {
		return Record{}, err
	}

	alias = canonicalAlias(provider, alias)

	rec, ok := creds.Providers[provider][alias]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrCredentialNotFound, provider, alias)
	}

	return rec, nil
}

// ResolveDefault returns the configured default provider id.
func (s *Store) ResolveDefault() (string, error) {
	creds, err := s.Load()
	if err != nil {
		return "", err
	}

	if creds.Default == "" {
		return "", ErrNoDefaultConfigured
	}

	return creds.Default, nil
}

// Upsert stores a credential for (provider, alias). If an entry already
// exists and overwriteConfirmed is false, nothing is mutated and
// ErrWouldOverwrite is returned; the caller is expected to obtain
// confirmation and retry with true.
func (s *Store) Upsert(provider, alias string, rec Record, overwriteConfirmed bool) error {
	creds, err := s.Load()
	if err != nil {
		return err
	}

	alias = canonicalAlias(provider, alias)

	if _, exists := creds.Providers[provider][alias]; exists && !overwriteConfirmed {
		return fmt.Errorf("%w: %s/%s", ErrWouldOverwrite, provider, alias)
	}

	if creds.Providers[provider] == nil {
		creds.Providers[provider] = make(map[string]Record)
	}
	creds.Providers[provider][alias] = rec

	s.log.Debug("storing credential",
		zap.String("provider", provider),
		zap.String("alias", alias),
	)

	return s.save(creds)
}

// SetDefault marks provider as the default for `get` invocations. A
// provider with no stored credential cannot become the default.
func (s *Store) SetDefault(provider string) error {
	creds, err := s.Load()
	if err != nil {
		return err
	}

	if len(creds.Providers[provider]) == 0 {
		return fmt.Errorf("%w: %s", ErrNoSuchProvider, provider)
	}

	creds.Default = provider

	s.log.Debug("setting default provider", zap.String("provider", provider))

	return s.save(creds)
}

// save rewrites the entire credentials file atomically: encode to a
// temp file in the same directory, then rename over the target. The
// temp file is removed on every failure path so a crash never leaves a
// partially-written store behind.
func (s *Store) save(creds *Credentials) error {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(creds); err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	dir := filepath.Dir(s.targetPath)
	tmp, err := os.CreateTemp(dir, ".credentials-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp credentials file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp credentials file: %w", err)
	}

	// Credentials hold API keys; keep the file owner-only.
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("restricting credentials permissions: %w", err)
	}

	if err := os.Rename(tmpPath, s.targetPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing credentials file: %w", err)
	}

	s.log.Debug("credentials saved", zap.String("path", s.targetPath))

	return nil
}

// canonicalAlias resolves an empty alias to the provider's own id.
func canonicalAlias(provider, alias string) string {
	if alias == "" {
		return provider
	}
	return alias
}
