package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockLogRepo struct {
	logs map[string]*entity.StockLog
}

func newFakeStockLogRepo(logs ...*entity.StockLog) *fakeStockLogRepo {
	f := &fakeStockLogRepo{logs: map[string]*entity.StockLog{}}
	for _, l := range logs {
		f.logs[l.ID] = l
	}
	return f
}

func (f *fakeStockLogRepo) Create(ctx context.Context, l *entity.StockLog) error {
	f.logs[l.ID] = l
	return nil
}
func (f *fakeStockLogRepo) GetByID(ctx context.Context, id string) (*entity.StockLog, error) {
	return f.logs[id], nil
}
func (f *fakeStockLogRepo) List(ctx context.Context, filter repository.StockLogFilter) ([]*entity.StockLog, error) {
	out := make([]*entity.StockLog, 0, len(f.logs))
	for _, l := range f.logs {
		out = append(out, l)
	}
	return out, nil
}
func (f *fakeStockLogRepo) Count(ctx context.Context, filter repository.StockLogFilter) (int, error) {
	return len(f.logs), nil
}
func (f *fakeStockLogRepo) UpdateReason(ctx context.Context, id, reason string) error {
	f.logs[id].Reason = reason
	return nil
}
func (f *fakeStockLogRepo) Delete(ctx context.Context, id string) error {
	delete(f.logs, id)
	return nil
}

func sampleLog(id string) *entity.StockLog {
	return &entity.StockLog{
		ID:          id,
		ArticleID:   "art-1",
		ArticleName: "Tornillos M6",
		ActorLabel:  "Laura Pérez (laura@almacen.co)",
		Action:      entity.StockActionAdd,
		OldQuantity: decimal.NewFromInt(10),
		NewQuantity: decimal.NewFromInt(15),
		Delta:       decimal.NewFromInt(5),
		Reason:      "entrega semanal",
		CreatedAt:   time.Now(),
	}
}

func actorWithRole(role authz.Role) stock.Actor {
	return stock.Actor{ID: "actor-1", Role: role}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAuditUpdateReason_AdminCorrigeComentario(t *testing.T) {
	repo := newFakeStockLogRepo(sampleLog("log-1"))
	uc := usecase.NewAuditUseCase(repo)

	err := uc.UpdateReason(context.Background(), "log-1", "conteo corregido", actorWithRole(authz.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, "conteo corregido", repo.logs["log-1"].Reason)
	// La corrección solo toca el comentario, nunca las cantidades.
	assert.True(t, repo.logs["log-1"].NewQuantity.Equal(decimal.NewFromInt(15)))
}

func TestAuditUpdateReason_ManagerRechazado(t *testing.T) {
	repo := newFakeStockLogRepo(sampleLog("log-1"))
	uc := usecase.NewAuditUseCase(repo)

	err := uc.UpdateReason(context.Background(), "log-1", "intento", actorWithRole(authz.RoleManager))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "entrega semanal", repo.logs["log-1"].Reason, "el comentario no debe cambiar")
}

func TestAuditDelete_AdminBorraFila(t *testing.T) {
	repo := newFakeStockLogRepo(sampleLog("log-1"), sampleLog("log-2"))
	uc := usecase.NewAuditUseCase(repo)

	err := uc.Delete(context.Background(), "log-1", actorWithRole(authz.RoleAdmin))
	require.NoError(t, err)
	assert.Nil(t, repo.logs["log-1"])
	assert.NotNil(t, repo.logs["log-2"])
}

func TestAuditDelete_EmployeeRechazado(t *testing.T) {
	repo := newFakeStockLogRepo(sampleLog("log-1"))
	uc := usecase.NewAuditUseCase(repo)

	err := uc.Delete(context.Background(), "log-1", actorWithRole(authz.RoleEmployee))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotNil(t, repo.logs["log-1"])
}

func TestAuditUpdateReason_FilaInexistente(t *testing.T) {
	repo := newFakeStockLogRepo()
	uc := usecase.NewAuditUseCase(repo)

	err := uc.UpdateReason(context.Background(), "nope", "x", actorWithRole(authz.RoleAdmin))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuditList_LimiteMaximo(t *testing.T) {
	repo := newFakeStockLogRepo(sampleLog("log-1"))
	uc := usecase.NewAuditUseCase(repo)

	logs, total, err := uc.List(context.Background(), repository.StockLogFilter{Limit: 9999})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, logs, 1)
}
