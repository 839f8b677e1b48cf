package app

import (
	"github.com/z5ni/catalog-api/pkg/config"
	"github.com/z5ni/catalog-api/pkg/events"
	"github.com/z5ni/catalog-api/pkg/logger"
	"github.com/z5ni/catalog-api/services/catalog/infrastructure/persistence/memory"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Store is the process-wide item state. It is constructed once in main and
// injected here so every component shares one handle — tests construct
// their own isolated repository instead of reaching for package globals.
//
// Logging: Logger is backed by a trace-aware handler — use the context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing item", "item_id", id)
//
// Use Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.Bus
	Store    *memory.ItemRepository
}
