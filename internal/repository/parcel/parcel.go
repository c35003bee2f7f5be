package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, tracking_number, description, total_weight, status, priority, destination_city,
	client_id, recipient_id, zone_id, courier_id, planned_delivery_at, delivered_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyDB := FromDomainModify(&parcelModify)

	query := `INSERT INTO parcels (tracking_number, description, total_weight, status, priority, destination_city,
			client_id, recipient_id, zone_id, courier_id, planned_delivery_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + parcelColumns

	parcelDB, err := scanParcel(r.querier.QueryRow(
		ctx,
		query,
		parcelModifyDB.TrackingNumber,
		parcelModifyDB.Description,
		parcelModifyDB.TotalWeight,
		parcelModifyDB.Status,
		parcelModifyDB.Priority,
		parcelModifyDB.DestinationCity,
		parcelModifyDB.ClientID,
		parcelModifyDB.RecipientID,
		parcelModifyDB.ZoneID,
		parcelModifyDB.CourierID,
		parcelModifyDB.PlannedDeliveryAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrConflict
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(parcelDB), nil
}

// CreateItems вставляет позиции посылки одним батчем.
func (r *Repository) CreateItems(ctx context.Context, parcelID int64, items []entities.ParcelItem) ([]entities.ParcelItem, error) {
	if len(items) == 0 {
		return []entities.ParcelItem{}, nil
	}

	query := `INSERT INTO parcel_items (parcel_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, parcel_id, product_id, quantity, unit_price`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, parcelID, item.ProductID, item.Quantity, item.UnitPrice)
	}

	results := r.querier.SendBatch(ctx, batch)
	defer results.Close()

	itemModels := make([]ParcelItemDB, 0, len(items))
	for range items {
		itemDB, err := scanItem(results.QueryRow())
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository create items error: %w", err)
		}
		itemModels = append(itemModels, *itemDB)
	}

	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create items error: %w", err)
	}

	return ItemsToDomainList(itemModels), nil
}

func (r *Repository) GetItems(ctx context.Context, parcelID int64) ([]entities.ParcelItem, error) {
	query := `SELECT id, parcel_id, product_id, quantity, unit_price
		FROM parcel_items
		WHERE parcel_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository get items error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]ParcelItemDB, 0, 4)
	for rows.Next() {
		itemDB, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository get items error: %w", err)
		}
		itemModels = append(itemModels, *itemDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository get items error: %w", err)
	}

	return ItemsToDomainList(itemModels), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	parcelDB, err := scanParcel(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(parcelDB), nil
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE tracking_number = $1`

	parcelDB, err := scanParcel(r.querier.QueryRow(ctx, query, trackingNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository get by tracking number error: %w", err)
	}

	return ToDomain(parcelDB), nil
}

func (r *Repository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM parcels WHERE tracking_number = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, trackingNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected parcel repository exists error: %w", err)
	}
	return exists, nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	builder := qb.Select(parcelColumns).From("parcels")
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Priority != nil {
		builder = builder.Where(sq.Eq{"priority": filter.Priority.String()})
	}
	if filter.ClientID != nil {
		builder = builder.Where(sq.Eq{"client_id": *filter.ClientID})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}
	if filter.ZoneID != nil {
		builder = builder.Where(sq.Eq{"zone_id": *filter.ZoneID})
	}
	builder = builder.OrderBy("id")

	return r.selectParcels(ctx, builder, "getall")
}

// GetOverdue возвращает недоставленные посылки с плановой датой доставки раньше now.
func (r *Repository) GetOverdue(ctx context.Context, now time.Time) ([]entities.Parcel, error) {
	builder := qb.Select(parcelColumns).
		From("parcels").
		Where(sq.Lt{"planned_delivery_at": now}).
		Where(sq.NotEq{"status": entities.ParcelDelivered.String()}).
		OrderBy("planned_delivery_at", "id")

	return r.selectParcels(ctx, builder, "get overdue")
}

func (r *Repository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `SELECT COUNT(*)
		FROM parcels
		WHERE planned_delivery_at < $1 AND status <> $2`

	var count int64
	err := r.querier.QueryRow(ctx, query, now, entities.ParcelDelivered.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository count overdue error: %w", err)
	}
	return count, nil
}

// Update меняет только изменяемые после создания поля: статус, курьера и даты доставки.
func (r *Repository) Update(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyDB := FromDomainModify(&parcelModify)

	builder := qb.Update("parcels")
	if parcelModifyDB.Status != nil {
		builder = builder.Set("status", parcelModifyDB.Status)
	}
	if parcelModifyDB.CourierID != nil {
		builder = builder.Set("courier_id", parcelModifyDB.CourierID)
	}
	if parcelModifyDB.PlannedDeliveryAt != nil {
		builder = builder.Set("planned_delivery_at", parcelModifyDB.PlannedDeliveryAt)
	}
	if parcelModifyDB.DeliveredAt != nil {
		builder = builder.Set("delivered_at", parcelModifyDB.DeliveredAt)
	}
	if parcelModifyDB.Description != nil {
		builder = builder.Set("description", parcelModifyDB.Description)
	}
	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": parcelModifyDB.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	parcelDB, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(parcelDB), nil
}

func (r *Repository) selectParcels(ctx context.Context, builder sq.SelectBuilder, op string) ([]entities.Parcel, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository %s error: %w", op, err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 16)
	for rows.Next() {
		parcelDB, err := scanParcel(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository %s error: %w", op, err)
		}
		parcelModels = append(parcelModels, *parcelDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository %s error: %w", op, err)
	}

	return ToDomainList(parcelModels), nil
}

func scanParcel(row pgx.Row) (*ParcelDB, error) {
	var parcelDB ParcelDB
	err := row.Scan(
		&parcelDB.ID,
		&parcelDB.TrackingNumber,
		&parcelDB.Description,
		&parcelDB.TotalWeight,
		&parcelDB.Status,
		&parcelDB.Priority,
		&parcelDB.DestinationCity,
		&parcelDB.ClientID,
		&parcelDB.RecipientID,
		&parcelDB.ZoneID,
		&parcelDB.CourierID,
		&parcelDB.PlannedDeliveryAt,
		&parcelDB.DeliveredAt,
		&parcelDB.CreatedAt,
		&parcelDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &parcelDB, nil
}

func scanItem(row pgx.Row) (*ParcelItemDB, error) {
	var itemDB ParcelItemDB
	err := row.Scan(
		&itemDB.ID,
		&itemDB.ParcelID,
		&itemDB.ProductID,
		&itemDB.Quantity,
		&itemDB.UnitPrice,
	)
	if err != nil {
		return nil, err
	}
	return &itemDB, nil
}
