package client

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Client struct {
	repository Repository
}

func New(repository Repository) *Client {
	return &Client{
		repository: repository,
	}
}

func (s *Client) CreateClient(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error) {
	if clientModify.LastName == nil ||
		clientModify.FirstName == nil ||
		clientModify.Email == nil ||
		clientModify.Phone == nil ||
		clientModify.Address == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validate(clientModify); err != nil {
		return nil, err
	}

	client, err := s.repository.Create(ctx, clientModify)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

func (s *Client) UpdateClient(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error) {
	if clientModify.ID == nil || !isValidID(*clientModify.ID) {
		return nil, ErrInvalidClientID
	}

	if clientModify.LastName == nil &&
		clientModify.FirstName == nil &&
		clientModify.Email == nil &&
		clientModify.Phone == nil &&
		clientModify.Address == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validate(clientModify); err != nil {
		return nil, err
	}

	client, err := s.repository.Update(ctx, clientModify)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	return client, nil
}

func (s *Client) GetClient(ctx context.Context, id int64) (*entities.Client, error) {
	if !isValidID(id) {
		return nil, ErrInvalidClientID
	}

	client, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return client, nil
}

func (s *Client) GetClients(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error) {
	clients, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get clients: %w", err)
	}

	return clients, nil
}

func (s *Client) DeleteClient(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidClientID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	return nil
}

func validate(clientModify entities.ClientModify) error {
	if clientModify.LastName != nil && !isValidName(*clientModify.LastName) {
		return ErrInvalidName
	}
	if clientModify.FirstName != nil && !isValidName(*clientModify.FirstName) {
		return ErrInvalidName
	}
	if clientModify.Email != nil && !isValidEmail(*clientModify.Email) {
		return ErrInvalidEmail
	}
	if clientModify.Phone != nil && !isValidPhone(*clientModify.Phone) {
		return ErrInvalidPhone
	}
	if clientModify.Address != nil && !isValidAddress(*clientModify.Address) {
		return ErrInvalidAddress
	}
	return nil
}
