package shipmethods

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adventureworks/purchasing/internal/purchasing/shared"
)

type Repository interface {
	List(ctx context.Context) ([]ShipMethod, error)
	Get(ctx context.Context, id int64) (ShipMethod, error)
	Create(ctx context.Context, sm ShipMethod) (ShipMethod, error)
	Update(ctx context.Context, id int64, sm ShipMethod) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	crud *shared.CRUD[ShipMethod]
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{crud: shared.NewCRUD(pool, mapping)}
}

var mapping = shared.Mapping[ShipMethod]{
	Table:   "ship_methods",
	Entity:  "ship method",
	Columns: []string{"name", "ship_base", "ship_rate", "modified_date"},
	Scan: func(row shared.RowScanner) (ShipMethod, error) {
		var sm ShipMethod
		var base, rate pgtype.Numeric
		var modified pgtype.Timestamptz
		if err := row.Scan(&sm.ID, &sm.Name, &base, &rate, &modified); err != nil {
			return ShipMethod{}, err
		}
		sm.ShipBase = shared.Float(base)
		sm.ShipRate = shared.Float(rate)
		sm.ModifiedDate = modified.Time
		return sm, nil
	},
	Values: func(sm ShipMethod) []any {
		return []any{sm.Name, shared.Numeric(sm.ShipBase), shared.Numeric(sm.ShipRate), sm.ModifiedDate}
	},
}

func (r *repository) List(ctx context.Context) ([]ShipMethod, error) {
	return r.crud.List(ctx)
}

func (r *repository) Get(ctx context.Context, id int64) (ShipMethod, error) {
	return r.crud.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, sm ShipMethod) (ShipMethod, error) {
	id, err := r.crud.Create(ctx, sm)
	if err != nil {
		return ShipMethod{}, err
	}
	return r.crud.Get(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, sm ShipMethod) error {
	return r.crud.Update(ctx, id, sm)
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.crud.Delete(ctx, id)
}
