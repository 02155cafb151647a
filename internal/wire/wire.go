// Package wire provides dependency injection for the evn application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"sync"

	cliadapter "github.com/example/evn/internal/adapters/cli"
	"github.com/example/evn/internal/adapters/sqlite"
	"github.com/example/evn/internal/app"
	"github.com/example/evn/internal/config"
	"github.com/example/evn/internal/db"
	"github.com/example/evn/internal/i18n"
	"github.com/example/evn/internal/ports/primary"
)

var (
	cfg = config.Default()

	evnService primary.EVNService
	evnOnce    sync.Once

	database          *sql.DB
	preferenceService primary.PreferenceService
	preferenceErr     error
	preferenceOnce    sync.Once
)

// Configure installs the effective configuration. It must be called before
// the first service is requested.
func Configure(c *config.Config) {
	cfg = c
}

// Config returns the effective configuration.
func Config() *config.Config {
	return cfg
}

// EVNService returns the singleton EVNService instance.
func EVNService() primary.EVNService {
	evnOnce.Do(func() {
		evnService = app.NewEVNService(nil)
	})
	return evnService
}

// PreferenceService returns the singleton PreferenceService instance. The
// preference database is opened on first use.
func PreferenceService() (primary.PreferenceService, error) {
	preferenceOnce.Do(initPreferenceService)
	return preferenceService, preferenceErr
}

// initPreferenceService opens the database and builds the service.
// This is called once via sync.Once.
func initPreferenceService() {
	path := cfg.DBPath
	if path == "" {
		var err error
		if path, err = config.DefaultDBPath(); err != nil {
			preferenceErr = err
			return
		}
	}

	database, preferenceErr = db.Open(path)
	if preferenceErr != nil {
		preferenceErr = fmt.Errorf("failed to initialize database: %w", preferenceErr)
		return
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	prefRepo := sqlite.NewPreferenceRepository(database)

	preferenceService = app.NewPreferenceService(prefRepo)
}

// Close releases the database connection if one was opened.
func Close() error {
	if database != nil {
		return database.Close()
	}
	return nil
}

// EVNAdapterWithOutput returns a new EVNAdapter writing to the given output.
// Each call creates a new adapter (adapters are stateless translators).
func EVNAdapterWithOutput(out io.Writer, msgs *i18n.Messages) *cliadapter.EVNAdapter {
	return cliadapter.NewEVNAdapter(EVNService(), msgs, out)
}

// PreferenceAdapterWithOutput returns a new PreferenceAdapter writing to the
// given output.
func PreferenceAdapterWithOutput(out io.Writer) (*cliadapter.PreferenceAdapter, error) {
	service, err := PreferenceService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewPreferenceAdapter(service, out), nil
}
