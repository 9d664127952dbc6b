// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"time"

	"github.com/harutoki/focusdeck/internal/domain"
	"github.com/harutoki/focusdeck/internal/infra/config"
	"github.com/harutoki/focusdeck/internal/infra/kvstore"
	"github.com/harutoki/focusdeck/internal/infra/logging"
	"github.com/harutoki/focusdeck/internal/repository"
	"github.com/harutoki/focusdeck/internal/stats"
	"github.com/harutoki/focusdeck/internal/timer"
)

// Container holds the constructed core and its collaborators. It is
// built once at startup and lives for the session.
type Container struct {
	Store  domain.Store
	Clock  domain.Clock
	Logger domain.Logger
	Config *config.Config
	Tasks  *repository.Repository
	Stats  *stats.Engine
	Timer  *timer.Timer
}

// New loads configuration, opens the store, and wires the repository,
// statistics engine, and timer.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig wires a container around an already-loaded configuration.
// This is useful for testing with a temporary data directory.
func NewWithConfig(cfg *config.Config) (*Container, error) {
	logger := logging.New(cfg.DataDir, logging.ParseLevel(cfg.Log.Level))
	store := kvstore.New(cfg.DataDir, logger)
	clock := domain.RealClock{}

	tasks := repository.New(store, clock, logger)
	tasks.Load()

	engine := stats.NewEngine(tasks, clock)

	pomodoro := timer.New(store, timer.Durations{
		Focus:          time.Duration(cfg.Timer.FocusMinutes) * time.Minute,
		ShortBreak:     time.Duration(cfg.Timer.ShortBreakMinutes) * time.Minute,
		LongBreak:      time.Duration(cfg.Timer.LongBreakMinutes) * time.Minute,
		LongBreakEvery: cfg.Timer.LongBreakEvery,
	})

	return &Container{
		Store:  store,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
		Tasks:  tasks,
		Stats:  engine,
		Timer:  pomodoro,
	}, nil
}

// Theme returns the persisted theme, falling back to the configured one.
func (c *Container) Theme() string {
	theme := c.Config.UI.Theme
	c.Store.Get(domain.StoreKeyTheme, &theme)
	return theme
}

// SetTheme persists the theme selection.
func (c *Container) SetTheme(theme string) {
	c.Store.Set(domain.StoreKeyTheme, theme)
}
