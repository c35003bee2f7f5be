package courier

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Courier struct {
	repository  Repository
	zoneService ZoneService
}

func New(repository Repository, zoneService ZoneService) *Courier {
	return &Courier{
		repository:  repository,
		zoneService: zoneService,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.LastName == nil ||
		courierModify.FirstName == nil ||
		courierModify.Phone == nil ||
		courierModify.Vehicle == nil ||
		courierModify.ZoneID == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validate(courierModify); err != nil {
		return nil, err
	}

	if _, err := s.zoneService.GetZone(ctx, *courierModify.ZoneID); err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}

	courier, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil || !isValidID(*courierModify.ID) {
		return nil, ErrInvalidCourierID
	}

	if courierModify.LastName == nil &&
		courierModify.FirstName == nil &&
		courierModify.Phone == nil &&
		courierModify.Vehicle == nil &&
		courierModify.ZoneID == nil &&
		courierModify.Active == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validate(courierModify); err != nil {
		return nil, err
	}

	if courierModify.ZoneID != nil {
		if _, err := s.zoneService.GetZone(ctx, *courierModify.ZoneID); err != nil {
			return nil, fmt.Errorf("update courier: %w", err)
		}
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("update courier: %w", err)
	}
	return courier, nil
}

// SetCourierActive включает или выключает курьера, остальные поля не трогает.
func (s *Courier) SetCourierActive(ctx context.Context, id int64, active bool) (*entities.Courier, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.Update(ctx, entities.CourierModify{
		ID:     &id,
		Active: &active,
	})
	if err != nil {
		return nil, fmt.Errorf("set courier active: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCourierByPhone(ctx context.Context, phone string) (*entities.Courier, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	courier, err := s.repository.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("get courier by phone: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context, filter entities.CourierFilter) ([]entities.Courier, error) {
	if filter.Vehicle != nil && !isValidVehicle(*filter.Vehicle) {
		return nil, ErrInvalidVehicle
	}
	if filter.ZoneID != nil && !isValidID(*filter.ZoneID) {
		return nil, ErrInvalidZoneID
	}

	couriers, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get couriers: %w", err)
	}

	return couriers, nil
}

func (s *Courier) CountActiveCouriersByZone(ctx context.Context, zoneID int64) (int64, error) {
	if !isValidID(zoneID) {
		return 0, ErrInvalidZoneID
	}

	if _, err := s.zoneService.GetZone(ctx, zoneID); err != nil {
		return 0, fmt.Errorf("count active couriers: %w", err)
	}

	count, err := s.repository.CountActiveByZone(ctx, zoneID)
	if err != nil {
		return 0, fmt.Errorf("count active couriers: %w", err)
	}

	return count, nil
}

func (s *Courier) DeleteCourier(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidCourierID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete courier: %w", err)
	}

	return nil
}

func validate(courierModify entities.CourierModify) error {
	if courierModify.LastName != nil && !isValidName(*courierModify.LastName) {
		return ErrInvalidName
	}
	if courierModify.FirstName != nil && !isValidName(*courierModify.FirstName) {
		return ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return ErrInvalidPhone
	}
	if courierModify.Vehicle != nil && !isValidVehicle(*courierModify.Vehicle) {
		return ErrInvalidVehicle
	}
	if courierModify.ZoneID != nil && !isValidID(*courierModify.ZoneID) {
		return ErrInvalidZoneID
	}
	return nil
}
