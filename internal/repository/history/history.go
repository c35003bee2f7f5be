package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/parcel"
)

const historyColumns = "id, parcel_id, status, comment, changed_at"

// Repository - журнал статусов посылок. Записи только добавляются.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, parcelID int64, status entities.ParcelStatus, comment string) (*entities.StatusHistoryEntry, error) {
	query := `INSERT INTO parcel_status_history (parcel_id, status, comment)
		VALUES ($1, $2, $3)
		RETURNING ` + historyColumns

	entryDB, err := scanEntry(r.querier.QueryRow(ctx, query, parcelID, status.String(), comment))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected history repository append error: %w", err)
	}

	return ToDomain(entryDB), nil
}

// GetByParcelID возвращает историю от новых записей к старым.
func (r *Repository) GetByParcelID(ctx context.Context, parcelID int64) ([]entities.StatusHistoryEntry, error) {
	query := `SELECT ` + historyColumns + `
		FROM parcel_status_history
		WHERE parcel_id = $1
		ORDER BY changed_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository get error: %w", err)
	}
	defer rows.Close()

	entryModels := make([]StatusHistoryDB, 0, 8)
	for rows.Next() {
		entryDB, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected history repository get error: %w", err)
		}
		entryModels = append(entryModels, *entryDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository get error: %w", err)
	}

	return ToDomainList(entryModels), nil
}

func scanEntry(row pgx.Row) (*StatusHistoryDB, error) {
	var entryDB StatusHistoryDB
	err := row.Scan(
		&entryDB.ID,
		&entryDB.ParcelID,
		&entryDB.Status,
		&entryDB.Comment,
		&entryDB.ChangedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entryDB, nil
}
