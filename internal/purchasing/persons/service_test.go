package persons

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventureworks/purchasing/internal/platform/httpx"
)

type mockRepository struct {
	persons map[int64]Person
	nextID  int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{persons: make(map[int64]Person), nextID: 1}
}

func (m *mockRepository) List(ctx context.Context) ([]Person, error) {
	result := []Person{}
	for _, p := range m.persons {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (Person, error) {
	p, ok := m.persons[id]
	if !ok {
		return Person{}, fmt.Errorf("person %d: %w", id, httpx.ErrNotFound)
	}
	return p, nil
}

func (m *mockRepository) Create(ctx context.Context, p Person) (Person, error) {
	p.ID = m.nextID
	m.nextID++
	m.persons[p.ID] = p
	return p, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, p Person) error {
	if _, ok := m.persons[id]; !ok {
		return fmt.Errorf("person %d: %w", id, httpx.ErrNotFound)
	}
	p.ID = id
	m.persons[id] = p
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := m.persons[id]; !ok {
		return 0, nil
	}
	delete(m.persons, id)
	return 1, nil
}

func ptr[T any](v T) *T { return &v }

func TestCreatePersonDefaults(t *testing.T) {
	svc := NewService(newMockRepository())

	p, err := svc.Create(context.Background(), CreatePersonRequest{
		PersonType: "EM",
		FirstName:  "Ovidiu",
		LastName:   "Cracium",
	})
	require.NoError(t, err)

	assert.False(t, p.NameStyle)
	assert.Equal(t, int32(0), p.EmailPromotion)
	assert.Nil(t, p.Title)
	assert.Nil(t, p.MiddleName)
}

func TestCreatePersonExplicitValues(t *testing.T) {
	svc := NewService(newMockRepository())

	p, err := svc.Create(context.Background(), CreatePersonRequest{
		PersonType:     "EM",
		NameStyle:      ptr(true),
		Title:          ptr("Ms."),
		FirstName:      "Sheela",
		LastName:       "Word",
		EmailPromotion: ptr(int32(2)),
	})
	require.NoError(t, err)

	assert.True(t, p.NameStyle)
	require.NotNil(t, p.Title)
	assert.Equal(t, "Ms.", *p.Title)
	assert.Equal(t, int32(2), p.EmailPromotion)
}

func TestUpdatePersonMergesFields(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePersonRequest{
		PersonType: "EM",
		FirstName:  "Linda",
		LastName:   "Meisner",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdatePersonRequest{
		LastName:       ptr("Mitchell"),
		EmailPromotion: ptr(int32(1)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Mitchell", updated.LastName)
	assert.Equal(t, "Linda", updated.FirstName)
	assert.Equal(t, int32(1), updated.EmailPromotion)
	assert.Equal(t, "EM", updated.PersonType)
}

func TestDeletePersonMissing(t *testing.T) {
	svc := NewService(newMockRepository())

	deleted, err := svc.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}
