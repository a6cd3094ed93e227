package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación de ArticleRepository sobre PostgreSQL (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

const articleColumns = `id, name, quantity, max_capacity, unit_price, supplier, image_key, created_at, updated_at`

func scanArticle(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(
		&a.ID, &a.Name, &a.Quantity, &a.MaxCapacity, &a.UnitPrice,
		&a.Supplier, &a.ImageKey, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste un artículo nuevo.
func (r *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		article.ID, article.Name, article.Quantity, article.MaxCapacity,
		article.UnitPrice, article.Supplier, article.ImageKey,
		article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *ArticleRepo) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	a, err := scanArticle(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

// List lista artículos por nombre, paginados.
func (r *ArticleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var out []*entity.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update actualiza los campos editables del artículo (no la cantidad).
func (r *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	query := `
		UPDATE articles
		SET name = $2, max_capacity = $3, unit_price = $4, supplier = $5, image_key = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		article.ID, article.Name, article.MaxCapacity, article.UnitPrice,
		article.Supplier, article.ImageKey, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateQuantity persiste la nueva cantidad (primera escritura del protocolo
// de mutación). unitPrice != nil actualiza además el último precio de entrada.
func (r *ArticleRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal, unitPrice *decimal.Decimal) error {
	if unitPrice != nil {
		query := `UPDATE articles SET quantity = $2, unit_price = $3, updated_at = now() WHERE id = $1`
		_, err := r.q.Exec(ctx, query, id, quantity, *unitPrice)
		if err != nil {
			return fmt.Errorf("update quantity: %w", err)
		}
		return nil
	}
	query := `UPDATE articles SET quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	return nil
}

// Delete elimina un artículo.
func (r *ArticleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
