package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econome/internal/model"
	"econome/internal/repository"
)

// fakeStore implementa ProductStore em memória para os testes.
type fakeStore struct {
	rows      map[[2]string]model.Product
	nextID    int64
	inserts   int
	findErr   error
	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[[2]string]model.Product)}
}

func (f *fakeStore) FindByKey(ctx context.Context, store, product string) (*model.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	p, ok := f.rows[[2]string{store, product}]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeStore) Insert(ctx context.Context, p model.Product) (int64, error) {
	f.inserts++
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	key := [2]string{p.StoreName, p.ProductName}
	if _, ok := f.rows[key]; ok {
		return 0, repository.ErrDuplicate
	}
	f.nextID++
	p.ID = f.nextID
	f.rows[key] = p
	return p.ID, nil
}

func product(store, name, price string) model.Product {
	return model.Product{
		StoreName:     store,
		ProductName:   name,
		URL:           "http://x",
		Price:         decimal.RequireFromString(price),
		LastCheckedAt: time.Date(2024, 11, 3, 14, 30, 12, 0, time.UTC),
	}
}

func TestUpsertInsertsNewKey(t *testing.T) {
	store := newFakeStore()

	outcome, err := Upsert(context.Background(), store, product("Target", "Apple", "0.50"))
	require.NoError(t, err)
	assert.Equal(t, Inserted, outcome)
	assert.Len(t, store.rows, 1)
}

func TestUpsertSkipsExistingKeyUntouched(t *testing.T) {
	store := newFakeStore()

	_, err := Upsert(context.Background(), store, product("Target", "Apple", "0.50"))
	require.NoError(t, err)

	outcome, err := Upsert(context.Background(), store, product("Target", "Apple", "0.60"))
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)

	// o primeiro preço visto permanece
	existing, err := store.FindByKey(context.Background(), "Target", "Apple")
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, "0.50", existing.Price.StringFixed(2))
	assert.Equal(t, 1, store.inserts)
}

func TestUpsertKeyIsCaseSensitive(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	_, err := Upsert(ctx, store, product("Target", "Apple", "0.50"))
	require.NoError(t, err)

	outcome, err := Upsert(ctx, store, product("Target", "apple", "0.50"))
	require.NoError(t, err)
	assert.Equal(t, Inserted, outcome)
	assert.Len(t, store.rows, 2)
}

func TestUpsertDuplicateOnInsertResolvesAsSkipped(t *testing.T) {
	store := newFakeStore()
	store.insertErr = repository.ErrDuplicate

	// simula a corrida: FindByKey não viu nada mas a constraint barrou o insert
	outcome, err := Upsert(context.Background(), store, product("Target", "Apple", "0.50"))
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)
}

func TestUpsertPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("connection refused")

	store := newFakeStore()
	store.findErr = boom
	_, err := Upsert(context.Background(), store, product("Target", "Apple", "0.50"))
	assert.ErrorIs(t, err, boom)

	store = newFakeStore()
	store.insertErr = boom
	_, err = Upsert(context.Background(), store, product("Target", "Apple", "0.50"))
	assert.ErrorIs(t, err, boom)
}
