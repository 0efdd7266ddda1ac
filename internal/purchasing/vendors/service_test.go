package vendors

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventureworks/purchasing/internal/platform/httpx"
)

type mockRepository struct {
	vendors map[int64]Vendor
	nextID  int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{vendors: make(map[int64]Vendor), nextID: 1}
}

func (m *mockRepository) List(ctx context.Context) ([]Vendor, error) {
	result := []Vendor{}
	for _, v := range m.vendors {
		result = append(result, v)
	}
	return result, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (Vendor, error) {
	v, ok := m.vendors[id]
	if !ok {
		return Vendor{}, fmt.Errorf("vendor %d: %w", id, httpx.ErrNotFound)
	}
	return v, nil
}

func (m *mockRepository) Create(ctx context.Context, v Vendor) (Vendor, error) {
	v.ID = m.nextID
	m.nextID++
	m.vendors[v.ID] = v
	return v, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, v Vendor) error {
	if _, ok := m.vendors[id]; !ok {
		return fmt.Errorf("vendor %d: %w", id, httpx.ErrNotFound)
	}
	v.ID = id
	m.vendors[id] = v
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := m.vendors[id]; !ok {
		return 0, nil
	}
	delete(m.vendors, id)
	return 1, nil
}

func ptr[T any](v T) *T { return &v }

func TestCreateVendorDefaults(t *testing.T) {
	svc := NewService(newMockRepository())

	v, err := svc.Create(context.Background(), CreateVendorRequest{Name: "Litware, Inc.", CreditRating: 1})
	require.NoError(t, err)

	assert.True(t, v.PreferredVendorStatus)
	assert.True(t, v.ActiveFlag)
	assert.True(t, strings.HasPrefix(v.AccountNumber, "VEND"), "account number generated when absent")
	assert.Len(t, v.AccountNumber, 14)
}

func TestCreateVendorExplicitValues(t *testing.T) {
	svc := NewService(newMockRepository())

	v, err := svc.Create(context.Background(), CreateVendorRequest{
		AccountNumber:         "LITEWARE0001",
		Name:                  "Litware, Inc.",
		PreferredVendorStatus: ptr(false),
		ActiveFlag:            ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "LITEWARE0001", v.AccountNumber)
	assert.False(t, v.PreferredVendorStatus)
	assert.False(t, v.ActiveFlag)
}

func TestUpdateVendorMergesFields(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateVendorRequest{Name: "Trikes, Inc.", CreditRating: 2})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateVendorRequest{CreditRating: ptr(int16(4))})
	require.NoError(t, err)

	assert.Equal(t, int16(4), updated.CreditRating)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.AccountNumber, updated.AccountNumber)
}

func TestDeleteVendorMissing(t *testing.T) {
	svc := NewService(newMockRepository())

	deleted, err := svc.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}
