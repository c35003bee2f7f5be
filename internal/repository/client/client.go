package client

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/client"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const clientColumns = "id, last_name, first_name, email, phone, address, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error) {
	clientModifyDB := FromDomainModify(&clientModify)

	query := `INSERT INTO clients (last_name, first_name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + clientColumns

	clientDB, err := scanClient(r.querier.QueryRow(
		ctx,
		query,
		clientModifyDB.LastName,
		clientModifyDB.FirstName,
		clientModifyDB.Email,
		clientModifyDB.Phone,
		clientModifyDB.Address,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, client.ErrConflict
		}
		return nil, fmt.Errorf("unexpected client repository create error: %w", err)
	}

	return ToDomain(clientDB), nil
}

func (r *Repository) Update(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error) {
	clientModifyDB := FromDomainModify(&clientModify)

	builder := qb.Update("clients")
	if clientModifyDB.LastName != nil {
		builder = builder.Set("last_name", clientModifyDB.LastName)
	}
	if clientModifyDB.FirstName != nil {
		builder = builder.Set("first_name", clientModifyDB.FirstName)
	}
	if clientModifyDB.Email != nil {
		builder = builder.Set("email", clientModifyDB.Email)
	}
	if clientModifyDB.Phone != nil {
		builder = builder.Set("phone", clientModifyDB.Phone)
	}
	if clientModifyDB.Address != nil {
		builder = builder.Set("address", clientModifyDB.Address)
	}
	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": clientModifyDB.ID}).
		Suffix("RETURNING " + clientColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository update error: %w", err)
	}

	clientDB, err := scanClient(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrClientNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, client.ErrConflict
		}
		return nil, fmt.Errorf("unexpected client repository update error: %w", err)
	}

	return ToDomain(clientDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Client, error) {
	query := `SELECT ` + clientColumns + `
		FROM clients
		WHERE id = $1`

	clientDB, err := scanClient(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrClientNotFound
		}
		return nil, fmt.Errorf("unexpected client repository getbyid error: %w", err)
	}

	return ToDomain(clientDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error) {
	builder := qb.Select(clientColumns).From("clients")
	if filter.Name != nil {
		pattern := repository.ContainsPattern(*filter.Name)
		builder = builder.Where(sq.Or{
			sq.ILike{"last_name": pattern},
			sq.ILike{"first_name": pattern},
		})
	}
	if filter.Email != nil {
		builder = builder.Where(sq.Eq{"email": *filter.Email})
	}
	if filter.Phone != nil {
		builder = builder.Where(sq.Eq{"phone": *filter.Phone})
	}
	builder = builder.OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
	}
	defer rows.Close()

	clientModels := make([]ClientDB, 0, 8)
	for rows.Next() {
		clientDB, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
		}
		clientModels = append(clientModels, *clientDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
	}

	return ToDomainList(clientModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return client.ErrClientInUse
		}
		return fmt.Errorf("unexpected client repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*ClientDB, error) {
	var clientDB ClientDB
	err := row.Scan(
		&clientDB.ID,
		&clientDB.LastName,
		&clientDB.FirstName,
		&clientDB.Email,
		&clientDB.Phone,
		&clientDB.Address,
		&clientDB.CreatedAt,
		&clientDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &clientDB, nil
}
