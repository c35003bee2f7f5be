//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetByPhone(ctx context.Context, phone string) (*entities.Courier, error)
	GetAll(ctx context.Context, filter entities.CourierFilter) ([]entities.Courier, error)
	Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
	CountActiveByZone(ctx context.Context, zoneID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type ZoneService interface {
	GetZone(ctx context.Context, id int64) (*entities.Zone, error)
}
