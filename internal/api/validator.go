package api

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	apierrors "github.com/diogo/openchat/internal/errors"
	"github.com/diogo/openchat/internal/models"
)

// ValidationState is the credential validator's externally visible state
type ValidationState int

const (
	StateIdle ValidationState = iota
	StateValidating
	StateValid
	StateInvalid
)

func (s ValidationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ModelLister is the remote operation the validator consumes
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// Validator checks a candidate API key against the remote models endpoint
// and discovers the usable model catalog.
//
// Each Validate call takes a new epoch; a completion carrying a stale epoch
// must not overwrite the state written by a newer call, so out-of-order
// responses cannot clobber a fresh Valid/Invalid result.
type Validator struct {
	mu     sync.Mutex
	state  ValidationState
	models []models.Info
	epoch  uint64

	// listerFor builds the remote lister for a candidate key. Swappable
	// for tests.
	listerFor func(apiKey string) ModelLister
}

// NewValidator creates a validator backed by the real OpenAI client
func NewValidator() *Validator {
	return &Validator{
		listerFor: func(apiKey string) ModelLister {
			return NewClient(apiKey)
		},
	}
}

// NewValidatorWithLister creates a validator with a custom lister factory
func NewValidatorWithLister(listerFor func(apiKey string) ModelLister) *Validator {
	return &Validator{listerFor: listerFor}
}

// Validate checks the candidate key. On success it returns the supported
// model catalog and transitions to Valid; on any transport or auth failure
// it transitions to Invalid and returns the single undifferentiated
// credential error.
func (v *Validator) Validate(ctx context.Context, apiKey string) ([]models.Info, error) {
	v.mu.Lock()
	v.epoch++
	epoch := v.epoch
	v.state = StateValidating
	lister := v.listerFor(apiKey)
	v.mu.Unlock()

	ids, err := lister.ListModels(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	stale := epoch != v.epoch
	if err != nil {
		if !stale {
			v.state = StateInvalid
			v.models = nil
		}
		log.Debug().Err(err).Bool("stale", stale).Msg("credential validation failed")
		return nil, apierrors.NewCredentialError(err)
	}

	supported := models.Supported(ids)
	if !stale {
		v.state = StateValid
		v.models = supported
	}

	log.Debug().Int("models", len(supported)).Bool("stale", stale).Msg("credential validated")
	return supported, nil
}

// State returns the current validator state
func (v *Validator) State() ValidationState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Models returns the catalog discovered by the most recent successful
// validation (nil before any, or after an invalid one).
func (v *Validator) Models() []models.Info {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]models.Info, len(v.models))
	copy(out, v.models)
	return out
}
