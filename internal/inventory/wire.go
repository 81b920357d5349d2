//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	alertcommand "github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/inventory/delivery/http"
	"github.com/sumitd/costtrack/internal/inventory/domain"
	"github.com/sumitd/costtrack/internal/inventory/repository"
)

// ProvideItemRepository provides the inventory repository
func ProvideItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewGormItemRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
)

// InitializeHTTPHandler initializes the inventory HTTP handler with all
// dependencies
func InitializeHTTPHandler(db *gorm.DB, alerts *alertcommand.RaiseAlertHandler) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
