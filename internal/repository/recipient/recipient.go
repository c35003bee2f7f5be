package recipient

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/recipient"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const recipientColumns = "id, last_name, first_name, email, phone, address, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	recipientModifyDB := FromDomainModify(&recipientModify)

	query := `INSERT INTO recipients (last_name, first_name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + recipientColumns

	recipientDB, err := scanRecipient(r.querier.QueryRow(
		ctx,
		query,
		recipientModifyDB.LastName,
		recipientModifyDB.FirstName,
		recipientModifyDB.Email,
		recipientModifyDB.Phone,
		recipientModifyDB.Address,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository create error: %w", err)
	}

	return ToDomain(recipientDB), nil
}

func (r *Repository) Update(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	recipientModifyDB := FromDomainModify(&recipientModify)

	builder := qb.Update("recipients")
	if recipientModifyDB.LastName != nil {
		builder = builder.Set("last_name", recipientModifyDB.LastName)
	}
	if recipientModifyDB.FirstName != nil {
		builder = builder.Set("first_name", recipientModifyDB.FirstName)
	}
	if recipientModifyDB.Email != nil {
		builder = builder.Set("email", recipientModifyDB.Email)
	}
	if recipientModifyDB.Phone != nil {
		builder = builder.Set("phone", recipientModifyDB.Phone)
	}
	if recipientModifyDB.Address != nil {
		builder = builder.Set("address", recipientModifyDB.Address)
	}
	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": recipientModifyDB.ID}).
		Suffix("RETURNING " + recipientColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository update error: %w", err)
	}

	recipientDB, err := scanRecipient(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipient.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("unexpected recipient repository update error: %w", err)
	}

	return ToDomain(recipientDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Recipient, error) {
	query := `SELECT ` + recipientColumns + `
		FROM recipients
		WHERE id = $1`

	recipientDB, err := scanRecipient(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipient.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("unexpected recipient repository getbyid error: %w", err)
	}

	return ToDomain(recipientDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.RecipientFilter) ([]entities.Recipient, error) {
	builder := qb.Select(recipientColumns).From("recipients")
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
	if filter.Address != nil {
		builder = builder.Where(sq.ILike{"address": repository.ContainsPattern(*filter.Address)})
	}
	builder = builder.OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected recipient repository getall error: %w", err)
	}
	defer rows.Close()

	recipientModels := make([]RecipientDB, 0, 8)
	for rows.Next() {
		recipientDB, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected recipient repository getall error: %w", err)
		}
		recipientModels = append(recipientModels, *recipientDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected recipient repository getall error: %w", err)
	}

	return ToDomainList(recipientModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM recipients WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return recipient.ErrRecipientInUse
		}
		return fmt.Errorf("unexpected recipient repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return recipient.ErrRecipientNotFound
	}
	return nil
}

func scanRecipient(row pgx.Row) (*RecipientDB, error) {
	var recipientDB RecipientDB
	err := row.Scan(
		&recipientDB.ID,
		&recipientDB.LastName,
		&recipientDB.FirstName,
		&recipientDB.Email,
		&recipientDB.Phone,
		&recipientDB.Address,
		&recipientDB.CreatedAt,
		&recipientDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &recipientDB, nil
}
