package shipmethods

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventureworks/purchasing/internal/platform/httpx"
)

type mockRepository struct {
	methods map[int64]ShipMethod
	nextID  int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{methods: make(map[int64]ShipMethod), nextID: 1}
}

func (m *mockRepository) List(ctx context.Context) ([]ShipMethod, error) {
	result := []ShipMethod{}
	for _, sm := range m.methods {
		result = append(result, sm)
	}
	return result, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (ShipMethod, error) {
	sm, ok := m.methods[id]
	if !ok {
		return ShipMethod{}, fmt.Errorf("ship method %d: %w", id, httpx.ErrNotFound)
	}
	return sm, nil
}

func (m *mockRepository) Create(ctx context.Context, sm ShipMethod) (ShipMethod, error) {
	sm.ID = m.nextID
	m.nextID++
	m.methods[sm.ID] = sm
	return sm, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, sm ShipMethod) error {
	if _, ok := m.methods[id]; !ok {
		return fmt.Errorf("ship method %d: %w", id, httpx.ErrNotFound)
	}
	sm.ID = id
	m.methods[id] = sm
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := m.methods[id]; !ok {
		return 0, nil
	}
	delete(m.methods, id)
	return 1, nil
}

func ptr[T any](v T) *T { return &v }

func TestCreateShipMethod(t *testing.T) {
	svc := NewService(newMockRepository())

	sm, err := svc.Create(context.Background(), CreateShipMethodRequest{
		Name:     "OVERNIGHT J-FAST",
		ShipBase: 21.95,
		ShipRate: 1.29,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), sm.ID)
	assert.Equal(t, 21.95, sm.ShipBase)
	assert.False(t, sm.ModifiedDate.IsZero())
}

func TestUpdateShipMethodMergesFields(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateShipMethodRequest{Name: "ZY - EXPRESS", ShipBase: 9.95, ShipRate: 1.99})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateShipMethodRequest{ShipRate: ptr(2.49)})
	require.NoError(t, err)

	assert.Equal(t, 2.49, updated.ShipRate)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.ShipBase, updated.ShipBase)
}

func TestUpdateShipMethodNotFound(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Update(context.Background(), 42, UpdateShipMethodRequest{Name: ptr("GHOST")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrNotFound))
}

func TestDeleteShipMethodMissing(t *testing.T) {
	svc := NewService(newMockRepository())

	deleted, err := svc.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}
