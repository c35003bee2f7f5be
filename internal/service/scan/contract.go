//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=scan_test
package scan

import (
	"context"

	"logistics/internal/entities"
)

type ParcelService interface {
	GetParcelByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.ParcelDetails, error)
	ChangeStatus(ctx context.Context, parcelID int64, status entities.ParcelStatus, comment string) (*entities.Parcel, error)
	AssignCourier(ctx context.Context, parcelID, courierID int64) (*entities.Parcel, error)
}

type (
	ExecuteFn      func(ctx context.Context, parcelID int64, event entities.ScanEvent) (*entities.Parcel, error)
	HandlerFactory interface {
		GetHandler(eventType entities.ScanEventType) (ExecuteFn, error)
	}
)
