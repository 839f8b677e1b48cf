package services

import (
	"github.com/z5ni/catalog-api/pkg/app"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	return &Services{
		Item: NewItemService(a.Store, a.EventBus),
	}
}
