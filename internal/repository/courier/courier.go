package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/courier"
	"logistics/internal/service/zone"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = "id, last_name, first_name, phone, vehicle, zone_id, active, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	// active не передан - берется DEFAULT из схемы
	builder := qb.Insert("couriers").
		Columns("last_name", "first_name", "phone", "vehicle", "zone_id", "active").
		Values(
			courierModifyModel.LastName,
			courierModifyModel.FirstName,
			courierModifyModel.Phone,
			courierModifyModel.Vehicle,
			courierModifyModel.ZoneID,
			sq.Expr("COALESCE(?, TRUE)", courierModifyModel.Active),
		).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, zone.ErrZoneNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опционнные поля
	if courierModifyModel.LastName != nil {
		builder = builder.Set("last_name", courierModifyModel.LastName)
	}
	if courierModifyModel.FirstName != nil {
		builder = builder.Set("first_name", courierModifyModel.FirstName)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.Vehicle != nil {
		builder = builder.Set("vehicle", courierModifyModel.Vehicle)
	}
	if courierModifyModel.ZoneID != nil {
		builder = builder.Set("zone_id", courierModifyModel.ZoneID)
	}
	if courierModifyModel.Active != nil {
		builder = builder.Set("active", courierModifyModel.Active)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, zone.ErrZoneNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE phone = $1`

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyphone error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.CourierFilter) ([]entities.Courier, error) {
	builder := qb.Select(courierColumns).From("couriers")

	if filter.ZoneID != nil {
		builder = builder.Where(sq.Eq{"zone_id": *filter.ZoneID})
	}
	if filter.Active != nil {
		builder = builder.Where(sq.Eq{"active": *filter.Active})
	}
	if filter.Vehicle != nil {
		builder = builder.Where(sq.Eq{"vehicle": filter.Vehicle.String()})
	}
	if filter.Phone != nil {
		builder = builder.Where(sq.Eq{"phone": *filter.Phone})
	}
	if filter.Name != nil {
		pattern := repository.ContainsPattern(*filter.Name)
		builder = builder.Where(sq.Or{
			sq.ILike{"last_name": pattern},
			sq.ILike{"first_name": pattern},
		})
	}
	builder = builder.OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierModel, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, *courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func (r *Repository) CountActiveByZone(ctx context.Context, zoneID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM couriers WHERE zone_id = $1 AND active`

	var count int64
	err := r.querier.QueryRow(ctx, query, zoneID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM couriers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected courier repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}
	return nil
}

func scanCourier(row pgx.Row) (*CourierDB, error) {
	var courierModel CourierDB
	err := row.Scan(
		&courierModel.ID,
		&courierModel.LastName,
		&courierModel.FirstName,
		&courierModel.Phone,
		&courierModel.Vehicle,
		&courierModel.ZoneID,
		&courierModel.Active,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &courierModel, nil
}
