package barrel_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/barrel"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: repos en memoria + TxRunner que simplemente ejecuta el callback
// ──────────────────────────────────────────────────────────────────────────────

type fakeBarrelRepo struct {
	barrel *entity.Barrel
}

func (f *fakeBarrelRepo) Create(ctx context.Context, b *entity.Barrel) error {
	f.barrel = b
	return nil
}
func (f *fakeBarrelRepo) GetByID(ctx context.Context, id string) (*entity.Barrel, error) {
	if f.barrel == nil || f.barrel.ID != id {
		return nil, nil
	}
	copia := *f.barrel
	return &copia, nil
}
func (f *fakeBarrelRepo) GetForUpdate(ctx context.Context, id string) (*entity.Barrel, error) {
	return f.GetByID(ctx, id)
}
func (f *fakeBarrelRepo) List(ctx context.Context, limit, offset int) ([]*entity.Barrel, error) {
	if f.barrel == nil {
		return nil, nil
	}
	return []*entity.Barrel{f.barrel}, nil
}
func (f *fakeBarrelRepo) Update(ctx context.Context, b *entity.Barrel) error {
	f.barrel = b
	return nil
}
func (f *fakeBarrelRepo) Delete(ctx context.Context, id string) error {
	f.barrel = nil
	return nil
}

type fakeHistoryRepo struct {
	rows []*entity.BarrelHistory
}

func (f *fakeHistoryRepo) Create(ctx context.Context, h *entity.BarrelHistory) error {
	f.rows = append(f.rows, h)
	return nil
}
func (f *fakeHistoryRepo) ListByBarrel(ctx context.Context, barrelID string, limit, offset int) ([]*entity.BarrelHistory, error) {
	return f.rows, nil
}

type fakeTxRunner struct {
	barrelRepo  repository.BarrelRepository
	historyRepo repository.BarrelHistoryRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	barrelRepo repository.BarrelRepository,
	historyRepo repository.BarrelHistoryRepository,
) error) error {
	return fn(f.barrelRepo, f.historyRepo)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func buildUC(liters, capacity string) (*barrel.UseCase, *fakeBarrelRepo, *fakeHistoryRepo) {
	barrelRepo := &fakeBarrelRepo{barrel: &entity.Barrel{
		ID:             "bar-1",
		Name:           "Desengrasante",
		Contents:       "concentrado",
		Liters:         dec(liters),
		CapacityLiters: dec(capacity),
		PricePerLiter:  dec("3.00"),
	}}
	historyRepo := &fakeHistoryRepo{}
	tx := &fakeTxRunner{barrelRepo: barrelRepo, historyRepo: historyRepo}
	return barrel.NewUseCase(tx, barrelRepo, historyRepo), barrelRepo, historyRepo
}

func actorEmployee() stock.Actor {
	return stock.Actor{Email: "pedro@almacen.co", Role: authz.RoleEmployee}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestFill_RecargaValida(t *testing.T) {
	uc, barrelRepo, historyRepo := buildUC("50", "200")

	err := uc.Fill(context.Background(), barrel.ChangeInput{
		BarrelID:      "bar-1",
		Liters:        dec("100"),
		PricePerLiter: decPtr("2.80"),
		Note:          "recarga proveedor",
		Actor:         actorEmployee(),
	})
	require.NoError(t, err)

	assert.True(t, barrelRepo.barrel.Liters.Equal(dec("150")))
	assert.True(t, barrelRepo.barrel.PricePerLiter.Equal(dec("2.80")), "la recarga actualiza el precio por litro")
	require.Len(t, historyRepo.rows, 1)
	h := historyRepo.rows[0]
	assert.Equal(t, entity.BarrelChangeFill, h.ChangeType)
	assert.True(t, h.OldLiters.Equal(dec("50")))
	assert.True(t, h.NewLiters.Equal(dec("150")))
	require.NotNil(t, h.PricePerLiter)
	assert.Nil(t, h.DilutionRatio)
}

func TestFill_SinPrecioRechazada(t *testing.T) {
	uc, barrelRepo, historyRepo := buildUC("50", "200")

	err := uc.Fill(context.Background(), barrel.ChangeInput{
		BarrelID: "bar-1",
		Liters:   dec("10"),
		Actor:    actorEmployee(),
	})
	var rej *stock.RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, stock.ReasonMissingPrice, rej.Reason)
	assert.True(t, barrelRepo.barrel.Liters.Equal(dec("50")))
	assert.Empty(t, historyRepo.rows)
}

func TestFill_ExcedeCapacidad(t *testing.T) {
	uc, _, historyRepo := buildUC("150", "200")

	err := uc.Fill(context.Background(), barrel.ChangeInput{
		BarrelID:      "bar-1",
		Liters:        dec("60"),
		PricePerLiter: decPtr("2.80"),
		Actor:         actorEmployee(),
	})
	var rej *stock.RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, stock.ReasonExceedsCapacity, rej.Reason)
	assert.Empty(t, historyRepo.rows)
}

func TestDrain_ConsumoValido(t *testing.T) {
	uc, barrelRepo, historyRepo := buildUC("50", "200")

	err := uc.Drain(context.Background(), barrel.ChangeInput{
		BarrelID: "bar-1",
		Liters:   dec("20"),
		Actor:    actorEmployee(),
	})
	require.NoError(t, err)
	assert.True(t, barrelRepo.barrel.Liters.Equal(dec("30")))
	require.Len(t, historyRepo.rows, 1)
	assert.Equal(t, entity.BarrelChangeDrain, historyRepo.rows[0].ChangeType)
	assert.Nil(t, historyRepo.rows[0].PricePerLiter, "los consumos no llevan precio")
}

func TestDrain_MasDeLoQueHay(t *testing.T) {
	uc, barrelRepo, historyRepo := buildUC("15", "200")

	err := uc.Drain(context.Background(), barrel.ChangeInput{
		BarrelID: "bar-1",
		Liters:   dec("20"),
		Actor:    actorEmployee(),
	})
	var rej *stock.RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, stock.ReasonInsufficientQuantity, rej.Reason)
	assert.True(t, barrelRepo.barrel.Liters.Equal(dec("15")))
	assert.Empty(t, historyRepo.rows)
}

// Dilución: sube el volumen y registra el ratio agua/litros previos.
func TestDilute_RegistraRatio(t *testing.T) {
	uc, barrelRepo, historyRepo := buildUC("40", "200")

	err := uc.Dilute(context.Background(), barrel.ChangeInput{
		BarrelID: "bar-1",
		Liters:   dec("10"),
		Note:     "dilución 1:4",
		Actor:    actorEmployee(),
	})
	require.NoError(t, err)
	assert.True(t, barrelRepo.barrel.Liters.Equal(dec("50")))
	require.Len(t, historyRepo.rows, 1)
	h := historyRepo.rows[0]
	assert.Equal(t, entity.BarrelChangeDilute, h.ChangeType)
	require.NotNil(t, h.DilutionRatio)
	assert.True(t, h.DilutionRatio.Equal(dec("0.25")), "10 litros de agua sobre 40 previos")
}

func TestCreate_EmployeeNoGestionaBarriles(t *testing.T) {
	uc, _, _ := buildUC("0", "100")

	err := uc.Create(context.Background(), &entity.Barrel{
		Name:           "Nuevo",
		CapacityLiters: dec("100"),
	}, actorEmployee())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete_SoloAdmin(t *testing.T) {
	uc, barrelRepo, _ := buildUC("10", "100")

	manager := stock.Actor{Role: authz.RoleManager}
	err := uc.Delete(context.Background(), "bar-1", manager)
	assert.ErrorIs(t, err, domain.ErrForbidden, "manager no tiene delete_articles")
	assert.NotNil(t, barrelRepo.barrel)

	admin := stock.Actor{Role: authz.RoleAdmin}
	require.NoError(t, uc.Delete(context.Background(), "bar-1", admin))
	assert.Nil(t, barrelRepo.barrel)
}

func TestHistory_BarrilInexistente(t *testing.T) {
	uc, _, _ := buildUC("10", "100")
	_, err := uc.History(context.Background(), "nope", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
