package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logistics/internal/entities"
)

type Service struct {
	parcelService ParcelService
	eventFactory  HandlerFactory
}

func New(parcelService ParcelService, eventFactory HandlerFactory) *Service {
	return &Service{
		parcelService: parcelService,
		eventFactory:  eventFactory,
	}
}

// ProcessScanEvent применяет событие сканера к посылке.
// Для неизвестного типа события возвращает посылку без изменений.
func (s *Service) ProcessScanEvent(ctx context.Context, event entities.ScanEvent) (*entities.Parcel, error) {
	if strings.TrimSpace(event.TrackingNumber) == "" {
		return nil, fmt.Errorf("tracking number is required: %w", ErrInvalidEvent)
	}

	details, err := s.parcelService.GetParcelByTrackingNumber(ctx, event.TrackingNumber)
	if err != nil {
		return nil, fmt.Errorf("resolve parcel %s: %w", event.TrackingNumber, err)
	}

	executeFn, err := s.eventFactory.GetHandler(event.Type)
	if err != nil {
		// необрабатываемые типы событий просто пропускаем
		if errors.Is(err, ErrUndefinedEventType) {
			return &details.Parcel, nil
		}
		return nil, err
	}

	parcel, err := executeFn(ctx, details.Parcel.ID, event)
	if err != nil {
		return nil, err
	}

	return parcel, nil
}
