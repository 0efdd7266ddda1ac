package vendors

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adventureworks/purchasing/internal/purchasing/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Vendor, error)
	Get(ctx context.Context, id int64) (Vendor, error)
	Create(ctx context.Context, v Vendor) (Vendor, error)
	Update(ctx context.Context, id int64, v Vendor) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	crud *shared.CRUD[Vendor]
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{crud: shared.NewCRUD(pool, mapping)}
}

var mapping = shared.Mapping[Vendor]{
	Table:  "vendors",
	Entity: "vendor",
	Columns: []string{
		"account_number", "name", "credit_rating", "preferred_vendor_status",
		"active_flag", "purchasing_web_service_url", "modified_date",
	},
	Scan: func(row shared.RowScanner) (Vendor, error) {
		var v Vendor
		var url pgtype.Text
		var modified pgtype.Timestamptz
		err := row.Scan(&v.ID, &v.AccountNumber, &v.Name, &v.CreditRating,
			&v.PreferredVendorStatus, &v.ActiveFlag, &url, &modified)
		if err != nil {
			return Vendor{}, err
		}
		v.PurchasingWebServiceURL = shared.TextPtr(url)
		v.ModifiedDate = modified.Time
		return v, nil
	},
	Values: func(v Vendor) []any {
		return []any{
			v.AccountNumber, v.Name, v.CreditRating, v.PreferredVendorStatus,
			v.ActiveFlag, shared.Text(v.PurchasingWebServiceURL), v.ModifiedDate,
		}
	},
}

func (r *repository) List(ctx context.Context) ([]Vendor, error) {
	return r.crud.List(ctx)
}

func (r *repository) Get(ctx context.Context, id int64) (Vendor, error) {
	return r.crud.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, v Vendor) (Vendor, error) {
	id, err := r.crud.Create(ctx, v)
	if err != nil {
		return Vendor{}, err
	}
	return r.crud.Get(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, v Vendor) error {
	return r.crud.Update(ctx, id, v)
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.crud.Delete(ctx, id)
}
