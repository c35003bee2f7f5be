//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=overdue_parcels_test
package overdue_parcels

import (
	"context"
	"time"
)

type Service interface {
	CountOverdueParcels(ctx context.Context, now time.Time) (int64, error)
}
