package commands

import (
	"github.com/rs/zerolog/log"

	"github.com/diogo/openchat/internal/api"
	"github.com/diogo/openchat/internal/chat"
	"github.com/diogo/openchat/internal/config"
	"github.com/diogo/openchat/internal/session"
	"github.com/diogo/openchat/internal/storage"
)

// App wires the stores, orchestrator, and validator over one persistence
// blob. Commands receive it instead of reaching for globals.
type App struct {
	Settings      *config.Store
	Conversations *chat.Store
	Session       *session.Session
	Validator     *api.Validator

	store storage.Store
}

// NewApp loads persisted state and builds the object graph. Every store
// mutation rewrites the blob through the persist hook.
func NewApp(store storage.Store) (*App, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}

	app := &App{store: store}
	app.Settings = config.NewStore(state.Settings, func(config.Settings) { app.persist() })
	app.Conversations = chat.NewStore(
		state.Conversations,
		state.CurrentConversationID,
		app.Settings.HistoryLength,
		app.persist,
	)
	app.Session = session.New(app.Settings, app.Conversations)
	app.Validator = api.NewValidator()

	return app, nil
}

// DefaultApp builds the app over the default state file
func DefaultApp() (*App, error) {
	store, err := storage.DefaultStore()
	if err != nil {
		return nil, err
	}
	return NewApp(store)
}

func (a *App) persist() {
	// The settings hook can fire while the conversation store is still
	// being constructed.
	if a.Conversations == nil {
		return
	}

	state := storage.State{
		Conversations:         a.Conversations.List(),
		CurrentConversationID: a.Conversations.CurrentID(),
		Settings:              a.Settings.Snapshot(),
	}
	if err := a.store.Save(state); err != nil {
		log.Warn().Err(err).Msg("failed to persist state")
	}
}
