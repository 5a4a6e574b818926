// Package configure implements the interactive credential-capture
// workflow behind `wezza configure <provider>` as an explicit state
// machine, so tests can drive it with a scripted Prompter instead of a
// real terminal.
package configure

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/zoryamba/wezza/pkg/credentials"
)

// ErrAborted means the user cancelled input or declined to overwrite an
// existing credential. Nothing was persisted.
var ErrAborted = errors.New("configuration aborted")

// State identifies a step of the configure workflow.
type State string

const (
	StateAwaitAPIKey           State = "await_api_key"
	StateCheckExisting         State = "check_existing"
	StateAwaitOverwriteConfirm State = "await_overwrite_confirm"
	StateAwaitDefaultConfirm   State = "await_default_confirm"

	// Terminal states.
	StatePersisted State = "persisted"
	StateAborted   State = "aborted"
)

// Prompter supplies the user's answers. The terminal implementation
// lives in this package; tests provide scripted ones.
type Prompter interface {
	// PromptAPIKey asks for the provider's API key.
	PromptAPIKey(provider string) (string, error)

	// ConfirmOverwrite asks whether an existing credential may be replaced.
	ConfirmOverwrite(provider string) (bool, error)

	// ConfirmDefault asks whether the provider should become the default.
	ConfirmDefault(provider string) (bool, error)
}

// Workflow runs one configure session for one provider.
type Workflow struct {
	store    *credentials.Store
	prompter Prompter
	log      *zap.Logger
}

func New(store *credentials.Store, prompter Prompter, log *zap.Logger) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}

	return &Workflow{
		store:    store,
		prompter: prompter,
		log:      log,
	}
}

// Run drives the machine to a terminal state. It returns StatePersisted
// on success and StateAborted together with ErrAborted when the user
// cancelled or declined; on a store failure it returns the state the
// failure occurred in. Aborted runs perform no store mutation.
func (w *Workflow) Run(provider string) (State, error) {
	var (
		apiKey             string
		overwriteConfirmed bool
	)

	state := StateAwaitAPIKey
	for {
		w.log.Debug("configure state", zap.String("state", string(state)), zap.String("provider", provider))

		switch state {
		case StateAwaitAPIKey:
			key, err := w.prompter.PromptAPIKey(provider)
			if err != nil {
				return StateAborted, fmt.Errorf("%w: %v", ErrAborted, err)
			}
			key = strings.TrimSpace(key)
			if key == "" {
				// Reject and re-prompt; an empty key is never stored.
				continue
			}
			apiKey = key
			state = StateCheckExisting

		case StateCheckExisting:
			_, err := w.store.Lookup(provider, "")
			switch {
			case errors.Is(err, credentials.ErrCredentialNotFound):
				overwriteConfirmed = true
				state = StateAwaitDefaultConfirm
			case err != nil:
				return state, err
			default:
				state = StateAwaitOverwriteConfirm
			}

		case StateAwaitOverwriteConfirm:
			ok, err := w.prompter.ConfirmOverwrite(provider)
			if err != nil {
				return StateAborted, fmt.Errorf("%w: %v", ErrAborted, err)
			}
			if !ok {
				return StateAborted, fmt.Errorf("%w: declined to overwrite existing %s credential", ErrAborted, provider)
			}
			overwriteConfirmed = true
			state = StateAwaitDefaultConfirm

		case StateAwaitDefaultConfirm:
			makeDefault, err := w.resolveDefaultChoice(provider)
			if errors.Is(err, ErrAborted) {
				return StateAborted, err
			}
			if err != nil {
				return state, err
			}

			if err := w.store.Upsert(provider, "", credentials.Record{APIKey: apiKey}, overwriteConfirmed); err != nil {
				return state, err
			}
			if makeDefault {
				// A separate atomic write; if it fails the credential
				// above is already safely persisted and the previous
				// default stands.
				if err := w.store.SetDefault(provider); err != nil {
					return state, err
				}
			}

			return StatePersisted, nil
		}
	}
}

// resolveDefaultChoice asks whether the provider should become the
// default. The prompt is skipped when it already is: re-setting would
// be a pointless extra write.
func (w *Workflow) resolveDefaultChoice(provider string) (bool, error) {
	current, err := w.store.ResolveDefault()
	if errors.Is(err, credentials.ErrNoDefaultConfigured) {
		current = ""
	} else if err != nil {
		return false, err
	}

	if current == provider {
		return false, nil
	}

	ok, err := w.prompter.ConfirmDefault(provider)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrAborted, err)
	}

	return ok, nil
}
