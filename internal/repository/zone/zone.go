package zone

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/zone"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const zoneColumns = "id, name, postal_code, city, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, zoneModify entities.ZoneModify) (*entities.Zone, error) {
	zoneModifyDB := FromDomainModify(&zoneModify)

	query := `INSERT INTO zones (name, postal_code, city)
		VALUES ($1, $2, $3)
		RETURNING ` + zoneColumns

	zoneDB, err := scanZone(r.querier.QueryRow(
		ctx,
		query,
		zoneModifyDB.Name,
		zoneModifyDB.PostalCode,
		zoneModifyDB.City,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, zone.ErrConflict
		}
		return nil, fmt.Errorf("unexpected zone repository create error: %w", err)
	}

	return ToDomain(zoneDB), nil
}

func (r *Repository) Update(ctx context.Context, zoneModify entities.ZoneModify) (*entities.Zone, error) {
	zoneModifyDB := FromDomainModify(&zoneModify)

	builder := qb.Update("zones")
	if zoneModifyDB.Name != nil {
		builder = builder.Set("name", zoneModifyDB.Name)
	}
	if zoneModifyDB.PostalCode != nil {
		builder = builder.Set("postal_code", zoneModifyDB.PostalCode)
	}
	if zoneModifyDB.City != nil {
		builder = builder.Set("city", zoneModifyDB.City)
	}
	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": zoneModifyDB.ID}).
		Suffix("RETURNING " + zoneColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository update error: %w", err)
	}

	zoneDB, err := scanZone(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, zone.ErrZoneNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, zone.ErrConflict
		}
		return nil, fmt.Errorf("unexpected zone repository update error: %w", err)
	}

	return ToDomain(zoneDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Zone, error) {
	query := `SELECT ` + zoneColumns + `
		FROM zones
		WHERE id = $1`

	zoneDB, err := scanZone(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, zone.ErrZoneNotFound
		}
		return nil, fmt.Errorf("unexpected zone repository getbyid error: %w", err)
	}

	return ToDomain(zoneDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.ZoneFilter) ([]entities.Zone, error) {
	builder := qb.Select(zoneColumns).From("zones")
	if filter.Name != nil {
		builder = builder.Where(sq.ILike{"name": repository.ContainsPattern(*filter.Name)})
	}
	if filter.PostalCode != nil {
		builder = builder.Where(sq.Eq{"postal_code": *filter.PostalCode})
	}
	if filter.City != nil {
		builder = builder.Where(sq.ILike{"city": repository.EscapeLike(*filter.City)})
	}
	builder = builder.OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository getall error: %w", err)
	}
	defer rows.Close()

	zoneModels := make([]ZoneDB, 0, 8)
	for rows.Next() {
		zoneDB, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected zone repository getall error: %w", err)
		}
		zoneModels = append(zoneModels, *zoneDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected zone repository getall error: %w", err)
	}

	return ToDomainList(zoneModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return zone.ErrZoneInUse
		}
		return fmt.Errorf("unexpected zone repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return zone.ErrZoneNotFound
	}
	return nil
}

func scanZone(row pgx.Row) (*ZoneDB, error) {
	var zoneDB ZoneDB
	err := row.Scan(
		&zoneDB.ID,
		&zoneDB.Name,
		&zoneDB.PostalCode,
		&zoneDB.City,
		&zoneDB.CreatedAt,
		&zoneDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &zoneDB, nil
}
