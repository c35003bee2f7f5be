package recipient

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Recipient struct {
	repository Repository
}

func New(repository Repository) *Recipient {
	return &Recipient{
		repository: repository,
	}
}

func (s *Recipient) CreateRecipient(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	if recipientModify.LastName == nil ||
		recipientModify.FirstName == nil ||
		recipientModify.Phone == nil ||
		recipientModify.Address == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validate(recipientModify); err != nil {
		return nil, err
	}

	recipient, err := s.repository.Create(ctx, recipientModify)
	if err != nil {
		return nil, fmt.Errorf("create recipient: %w", err)
	}

	return recipient, nil
}

func (s *Recipient) UpdateRecipient(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	if recipientModify.ID == nil || !isValidID(*recipientModify.ID) {
		return nil, ErrInvalidRecipientID
	}

	if recipientModify.LastName == nil &&
		recipientModify.FirstName == nil &&
		recipientModify.Email == nil &&
		recipientModify.Phone == nil &&
		recipientModify.Address == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validate(recipientModify); err != nil {
		return nil, err
	}

	recipient, err := s.repository.Update(ctx, recipientModify)
	if err != nil {
		return nil, fmt.Errorf("update recipient: %w", err)
	}

	return recipient, nil
}

func (s *Recipient) GetRecipient(ctx context.Context, id int64) (*entities.Recipient, error) {
	if !isValidID(id) {
		return nil, ErrInvalidRecipientID
	}

	recipient, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipient: %w", err)
	}

	return recipient, nil
}

func (s *Recipient) GetRecipients(ctx context.Context, filter entities.RecipientFilter) ([]entities.Recipient, error) {
	recipients, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get recipients: %w", err)
	}

	return recipients, nil
}

func (s *Recipient) DeleteRecipient(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidRecipientID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipient: %w", err)
	}

	return nil
}

func validate(recipientModify entities.RecipientModify) error {
	if recipientModify.LastName != nil && !isValidName(*recipientModify.LastName) {
		return ErrInvalidName
	}
	if recipientModify.FirstName != nil && !isValidName(*recipientModify.FirstName) {
		return ErrInvalidName
	}
	if recipientModify.Email != nil && !isValidEmail(*recipientModify.Email) {
		return ErrInvalidEmail
	}
	if recipientModify.Phone != nil && !isValidPhone(*recipientModify.Phone) {
		return ErrInvalidPhone
	}
	if recipientModify.Address != nil && !isValidAddress(*recipientModify.Address) {
		return ErrInvalidAddress
	}
	return nil
}
