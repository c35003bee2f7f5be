//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_test
package zone

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, zoneModify entities.ZoneModify) (*entities.Zone, error)
	GetByID(ctx context.Context, id int64) (*entities.Zone, error)
	GetAll(ctx context.Context, filter entities.ZoneFilter) ([]entities.Zone, error)
	Update(ctx context.Context, zoneModify entities.ZoneModify) (*entities.Zone, error)
	Delete(ctx context.Context, id int64) error
}
