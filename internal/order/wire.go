//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	alertcommand "github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/order/delivery/http"
	"github.com/sumitd/costtrack/internal/order/domain"
	"github.com/sumitd/costtrack/internal/order/repository"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// ProvideUsageRepository provides the actual usage repository
func ProvideUsageRepository(db *gorm.DB) domain.ActualUsageRepository {
	return repository.NewGormActualUsageRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideUsageRepository,
)

// InitializeHTTPHandler initializes the order HTTP handler with all
// dependencies
func InitializeHTTPHandler(db *gorm.DB, alerts *alertcommand.RaiseAlertHandler) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewOrderHandler,
	)
	return nil, nil
}
