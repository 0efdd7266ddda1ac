package persons

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adventureworks/purchasing/internal/purchasing/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Person, error)
	Get(ctx context.Context, id int64) (Person, error)
	Create(ctx context.Context, p Person) (Person, error)
	Update(ctx context.Context, id int64, p Person) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	crud *shared.CRUD[Person]
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{crud: shared.NewCRUD(pool, mapping)}
}

var mapping = shared.Mapping[Person]{
	Table:  "persons",
	Entity: "person",
	Columns: []string{
		"person_type", "name_style", "title", "first_name", "middle_name",
		"last_name", "suffix", "email_promotion", "modified_date",
	},
	Scan: func(row shared.RowScanner) (Person, error) {
		var p Person
		var title, middle, suffix pgtype.Text
		var modified pgtype.Timestamptz
		err := row.Scan(&p.ID, &p.PersonType, &p.NameStyle, &title, &p.FirstName,
			&middle, &p.LastName, &suffix, &p.EmailPromotion, &modified)
		if err != nil {
			return Person{}, err
		}
		p.Title = shared.TextPtr(title)
		p.MiddleName = shared.TextPtr(middle)
		p.Suffix = shared.TextPtr(suffix)
		p.ModifiedDate = modified.Time
		return p, nil
	},
	Values: func(p Person) []any {
		return []any{
			p.PersonType, p.NameStyle, shared.Text(p.Title), p.FirstName,
			shared.Text(p.MiddleName), p.LastName, shared.Text(p.Suffix),
			p.EmailPromotion, p.ModifiedDate,
		}
	},
}

func (r *repository) List(ctx context.Context) ([]Person, error) {
	return r.crud.List(ctx)
}

func (r *repository) Get(ctx context.Context, id int64) (Person, error) {
	return r.crud.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, p Person) (Person, error) {
	id, err := r.crud.Create(ctx, p)
	if err != nil {
		return Person{}, err
	}
	return r.crud.Get(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, p Person) error {
	return r.crud.Update(ctx, id, p)
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.crud.Delete(ctx, id)
}
