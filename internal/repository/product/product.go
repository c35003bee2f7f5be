package product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/product"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const productColumns = "id, name, category, weight, price, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	productModifyDB := FromDomainModify(&productModify)

	query := `INSERT INTO products (name, category, weight, price)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productColumns

	productDB, err := scanProduct(r.querier.QueryRow(
		ctx,
		query,
		productModifyDB.Name,
		productModifyDB.Category,
		productModifyDB.Weight,
		productModifyDB.Price,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository create error: %w", err)
	}

	return ToDomain(productDB), nil
}

func (r *Repository) Update(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	productModifyDB := FromDomainModify(&productModify)

	builder := qb.Update("products")
	if productModifyDB.Name != nil {
		builder = builder.Set("name", productModifyDB.Name)
	}
	if productModifyDB.Category != nil {
		builder = builder.Set("category", productModifyDB.Category)
	}
	if productModifyDB.Weight != nil {
		builder = builder.Set("weight", productModifyDB.Weight)
	}
	if productModifyDB.Price != nil {
		builder = builder.Set("price", productModifyDB.Price)
	}
	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": productModifyDB.ID}).
		Suffix("RETURNING " + productColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	productDB, err := scanProduct(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	return ToDomain(productDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	productDB, err := scanProduct(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository getbyid error: %w", err)
	}

	return ToDomain(productDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	builder := qb.Select(productColumns).From("products")
	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": *filter.Category})
	}
	if filter.Name != nil {
		builder = builder.Where(sq.ILike{"name": repository.ContainsPattern(*filter.Name)})
	}

	switch filter.SortBy {
	case entities.ProductSortPrice:
		builder = builder.OrderBy("price", "id")
	default:
		builder = builder.OrderBy("id")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}
	defer rows.Close()

	productModels := make([]ProductDB, 0, 8)
	for rows.Next() {
		productDB, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
		}
		productModels = append(productModels, *productDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}

	return ToDomainList(productModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return product.ErrProductInUse
		}
		return fmt.Errorf("unexpected product repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*ProductDB, error) {
	var productDB ProductDB
	err := row.Scan(
		&productDB.ID,
		&productDB.Name,
		&productDB.Category,
		&productDB.Weight,
		&productDB.Price,
		&productDB.CreatedAt,
		&productDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &productDB, nil
}
