package zone

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Zone struct {
	repository Repository
}

func New(repository Repository) *Zone {
	return &Zone{
		repository: repository,
	}
}

func (s *Zone) CreateZone(ctx context.Context, zoneModify entities.ZoneModify) (*entities.Zone, error) {
	if zoneModify.Name == nil ||
		zoneModify.PostalCode == nil ||
		zoneModify.City == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validate(zoneModify); err != nil {
		return nil, err
	}

	zone, err := s.repository.Create(ctx, zoneModify)
	if err != nil {
		return nil, fmt.Errorf("create zone: %w", err)
	}

	return zone, nil
}

func (s *Zone) UpdateZone(ctx context.Context, zoneModify entities.ZoneModify) (*entities.Zone, error) {
	if zoneModify.ID == nil || !isValidID(*zoneModify.ID) {
		return nil, ErrInvalidZoneID
	}

	if zoneModify.Name == nil &&
		zoneModify.PostalCode == nil &&
		zoneModify.City == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validate(zoneModify); err != nil {
		return nil, err
	}

	zone, err := s.repository.Update(ctx, zoneModify)
	if err != nil {
		return nil, fmt.Errorf("update zone: %w", err)
	}

	return zone, nil
}

func (s *Zone) GetZone(ctx context.Context, id int64) (*entities.Zone, error) {
	if !isValidID(id) {
		return nil, ErrInvalidZoneID
	}

	zone, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get zone: %w", err)
	}

	return zone, nil
}

func (s *Zone) GetZones(ctx context.Context, filter entities.ZoneFilter) ([]entities.Zone, error) {
	zones, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get zones: %w", err)
	}

	return zones, nil
}

func (s *Zone) DeleteZone(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidZoneID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}

	return nil
}

func validate(zoneModify entities.ZoneModify) error {
	if zoneModify.Name != nil && !isValidName(*zoneModify.Name) {
		return ErrInvalidName
	}
	if zoneModify.PostalCode != nil && !isValidPostalCode(*zoneModify.PostalCode) {
		return ErrInvalidPostalCode
	}
	if zoneModify.City != nil && !isValidCity(*zoneModify.City) {
		return ErrInvalidCity
	}
	return nil
}
