package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ArticleUseCase casos de uso CRUD para artículos del catálogo. La cantidad
// no se edita por aquí: solo vía el protocolo de mutación de stock.
type ArticleUseCase struct {
	repo       repository.ArticleRepository
	imageStore ports.ImageStore
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repo repository.ArticleRepository, imageStore ports.ImageStore) *ArticleUseCase {
	return &ArticleUseCase{repo: repo, imageStore: imageStore}
}

// Create crea un artículo. Requiere manage_articles.
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.CreateArticleRequest, actor stock.Actor) (*dto.ArticleResponse, error) {
	if !authz.Resolve(actor.Role).ManageArticles {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || !in.MaxCapacity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.Quantity.GreaterThan(in.MaxCapacity) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	article := &entity.Article{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Quantity:    in.Quantity,
		MaxCapacity: in.MaxCapacity,
		UnitPrice:   in.UnitPrice,
		Supplier:    in.Supplier,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	return ToArticleResponse(article), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ArticleUseCase) GetByID(ctx context.Context, id string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return ToArticleResponse(article), nil
}

// List lista artículos paginados.
func (uc *ArticleUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ArticleResponse, error) {
	page.DefaultPage()
	articles, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ToArticleResponse(a))
	}
	return out, nil
}

// Update actualiza nombre, capacidad, precio y proveedor. Requiere
// manage_articles. Bajar MaxCapacity por debajo de la cantidad actual
// rompería la invariante, así que se rechaza.
func (uc *ArticleUseCase) Update(ctx context.Context, id string, in dto.UpdateArticleRequest, actor stock.Actor) (*dto.ArticleResponse, error) {
	if !authz.Resolve(actor.Role).ManageArticles {
		return nil, domain.ErrForbidden
	}
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		article.Name = in.Name
	}
	if in.MaxCapacity.IsPositive() {
		if in.MaxCapacity.LessThan(article.Quantity) {
			return nil, domain.ErrConflict
		}
		article.MaxCapacity = in.MaxCapacity
	}
	if in.UnitPrice.IsPositive() {
		article.UnitPrice = in.UnitPrice
	}
	if in.Supplier != "" {
		article.Supplier = in.Supplier
	}
	article.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	return ToArticleResponse(article), nil
}

// Delete elimina un artículo y su imagen almacenada, si tiene. Requiere
// delete_articles (solo admin). El borrado de la imagen es best-effort: si
// falla, el artículo ya no existe y la clave huérfana se limpia después.
func (uc *ArticleUseCase) Delete(ctx context.Context, id string, actor stock.Actor) error {
	if !authz.Resolve(actor.Role).DeleteArticles {
		return domain.ErrForbidden
	}
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if article.ImageKey != "" && uc.imageStore != nil {
		_ = uc.imageStore.Delete(ctx, article.ImageKey)
	}
	return nil
}

// UploadImage sube la imagen del artículo a object storage y guarda la
// clave. Requiere manage_articles.
func (uc *ArticleUseCase) UploadImage(ctx context.Context, id string, body io.Reader, contentType string, actor stock.Actor) (*dto.ArticleResponse, error) {
	if !authz.Resolve(actor.Role).ManageArticles {
		return nil, domain.ErrForbidden
	}
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	key := "articles/" + article.ID + "/" + uuid.New().String()
	if err := uc.imageStore.Put(ctx, key, body, contentType); err != nil {
		return nil, err
	}
	old := article.ImageKey
	article.ImageKey = key
	article.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	if old != "" {
		_ = uc.imageStore.Delete(ctx, old)
	}
	return ToArticleResponse(article), nil
}

// ImageURL devuelve una URL temporal de lectura de la imagen.
func (uc *ArticleUseCase) ImageURL(ctx context.Context, id string) (string, error) {
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if article == nil || article.ImageKey == "" {
		return "", domain.ErrNotFound
	}
	return uc.imageStore.PresignedGetURL(ctx, article.ImageKey)
}

// ToArticleResponse convierte la entidad a DTO.
func ToArticleResponse(a *entity.Article) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticleResponse{
		ID:          a.ID,
		Name:        a.Name,
		Quantity:    a.Quantity,
		MaxCapacity: a.MaxCapacity,
		UnitPrice:   a.UnitPrice,
		Supplier:    a.Supplier,
		ImageKey:    a.ImageKey,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
