package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adventureworks/purchasing/internal/platform/db"
	"github.com/adventureworks/purchasing/internal/platform/httpx"
	"github.com/adventureworks/purchasing/internal/purchasing/shared"
)

const (
	entityOrder  = "purchase order"
	entityDetail = "purchase order detail"
)

// Repository persists the purchase order aggregate. Create, Update, and
// Delete are transactional: the header row and its detail rows succeed
// or fail together, and no partially applied aggregate is ever
// observable. Detail-scoped operations work on single rows outside the
// aggregate-replace transaction.
type Repository interface {
	List(ctx context.Context) ([]PurchaseOrder, error)
	Get(ctx context.Context, id int64) (*PurchaseOrder, error)
	Create(ctx context.Context, po PurchaseOrder) (*PurchaseOrder, error)
	Update(ctx context.Context, po PurchaseOrder) (*PurchaseOrder, error)
	Delete(ctx context.Context, id int64) (int64, error)

	ListDetails(ctx context.Context) ([]PurchaseOrderDetail, error)
	ListDetailsByOrder(ctx context.Context, purchaseOrderID int64) ([]PurchaseOrderDetail, error)
	GetDetail(ctx context.Context, id int64) (*PurchaseOrderDetail, error)
	CreateDetail(ctx context.Context, d PurchaseOrderDetail) (*PurchaseOrderDetail, error)
	UpdateDetail(ctx context.Context, d PurchaseOrderDetail) error
	DeleteDetail(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
	q    db.Querier
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool, q: pool}
}

const headerSelect = `
	SELECT h.id, h.status, h.employee_id, h.vendor_id, h.ship_method_id,
	       h.order_date, h.ship_date, h.sub_total, h.tax_amt, h.freight,
	       h.total_due, h.modified_date,
	       sm.name, sm.ship_base, sm.ship_rate,
	       v.name, v.account_number,
	       p.first_name, p.middle_name, p.last_name
	FROM purchase_order_headers h
	LEFT JOIN ship_methods sm ON sm.id = h.ship_method_id
	LEFT JOIN vendors v ON v.id = h.vendor_id
	LEFT JOIN persons p ON p.id = h.employee_id`

const detailSelect = `
	SELECT id, purchase_order_id, due_date, order_qty, product_id,
	       unit_price, line_total, received_qty, rejected_qty, stocked_qty,
	       modified_date
	FROM purchase_order_details`

func (r *repository) List(ctx context.Context) ([]PurchaseOrder, error) {
	rows, err := r.q.Query(ctx, headerSelect+" ORDER BY h.id")
	if err != nil {
		return nil, shared.WrapStorage("list", entityOrder, err)
	}
	defer rows.Close()

	var pos []PurchaseOrder
	for rows.Next() {
		po, err := scanHeader(rows)
		if err != nil {
			return nil, shared.WrapStorage("list", entityOrder, err)
		}
		pos = append(pos, po)
	}
	if err := rows.Err(); err != nil {
		return nil, shared.WrapStorage("list", entityOrder, err)
	}
	if len(pos) == 0 {
		return pos, nil
	}

	ids := make([]int64, len(pos))
	byID := make(map[int64]*PurchaseOrder, len(pos))
	for i := range pos {
		ids[i] = pos[i].ID
		byID[pos[i].ID] = &pos[i]
		// Loaded orders always carry their full detail set, even when empty.
		pos[i].Details = []PurchaseOrderDetail{}
	}

	detailRows, err := r.q.Query(ctx, detailSelect+" WHERE purchase_order_id = ANY($1) ORDER BY id", ids)
	if err != nil {
		return nil, shared.WrapStorage("list", entityDetail, err)
	}
	defer detailRows.Close()
	for detailRows.Next() {
		d, err := scanDetail(detailRows)
		if err != nil {
			return nil, shared.WrapStorage("list", entityDetail, err)
		}
		if po, ok := byID[d.PurchaseOrderID]; ok {
			po.Details = append(po.Details, d)
		}
	}
	if err := detailRows.Err(); err != nil {
		return nil, shared.WrapStorage("list", entityDetail, err)
	}
	return pos, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*PurchaseOrder, error) {
	po, err := scanHeader(r.q.QueryRow(ctx, headerSelect+" WHERE h.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s %d: %w", entityOrder, id, httpx.ErrNotFound)
		}
		return nil, shared.WrapStorage("get", entityOrder, err)
	}

	details, err := r.listDetails(ctx, detailSelect+" WHERE purchase_order_id = $1 ORDER BY id", "get", id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = []PurchaseOrderDetail{}
	}
	po.Details = details
	return &po, nil
}

func (r *repository) Create(ctx context.Context, po PurchaseOrder) (*PurchaseOrder, error) {
	var id int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		newID, err := insertHeader(ctx, tx, po)
		if err != nil {
			return shared.WrapStorage("create", entityOrder, err)
		}
		id = newID
		if po.Details != nil {
			if err := copyDetails(ctx, tx, id, po.Details); err != nil {
				return shared.WrapStorage("create", entityDetail, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, ensureWrapped("create", err)
	}
	return r.Get(ctx, id)
}

func (r *repository) Update(ctx context.Context, po PurchaseOrder) (*PurchaseOrder, error) {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE purchase_order_headers
			SET status = $1, employee_id = $2, vendor_id = $3, ship_method_id = $4,
			    order_date = $5, ship_date = $6, sub_total = $7, tax_amt = $8,
			    freight = $9, total_due = $10, modified_date = $11
			WHERE id = $12`,
			po.Status, po.EmployeeID, po.VendorID, po.ShipMethodID,
			pgtype.Date{Time: po.OrderDate, Valid: true}, shared.Date(po.ShipDate),
			shared.Numeric(po.SubTotal), shared.Numeric(po.TaxAmt),
			shared.Numeric(po.Freight),
			shared.Numeric(shared.TotalDue(po.SubTotal, po.TaxAmt, po.Freight)),
			po.ModifiedDate, po.ID)
		if err != nil {
			return shared.WrapStorage("update", entityOrder, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s %d: %w", entityOrder, po.ID, httpx.ErrNotFound)
		}

		// A supplied detail list fully supersedes the stored set: every
		// existing row is deleted and the incoming rows are re-inserted
		// with fresh identities. A nil list leaves the rows alone.
		if po.Details != nil {
			if _, err := tx.Exec(ctx, "DELETE FROM purchase_order_details WHERE purchase_order_id = $1", po.ID); err != nil {
				return shared.WrapStorage("update", entityDetail, err)
			}
			if err := copyDetails(ctx, tx, po.ID, po.Details); err != nil {
				return shared.WrapStorage("update", entityDetail, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, err
		}
		return nil, ensureWrapped("update", err)
	}
	return r.Get(ctx, po.ID)
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM purchase_order_details WHERE purchase_order_id = $1", id); err != nil {
			return shared.WrapStorage("delete", entityDetail, err)
		}
		// Deleting a missing header is a no-op, not an error; the row
		// count lets callers report not-found without a separate read.
		tag, err := tx.Exec(ctx, "DELETE FROM purchase_order_headers WHERE id = $1", id)
		if err != nil {
			return shared.WrapStorage("delete", entityOrder, err)
		}
		deleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, ensureWrapped("delete", err)
	}
	return deleted, nil
}

func (r *repository) ListDetails(ctx context.Context) ([]PurchaseOrderDetail, error) {
	return r.listDetails(ctx, detailSelect+" ORDER BY id", "list")
}

func (r *repository) ListDetailsByOrder(ctx context.Context, purchaseOrderID int64) ([]PurchaseOrderDetail, error) {
	return r.listDetails(ctx, detailSelect+" WHERE purchase_order_id = $1 ORDER BY id", "list", purchaseOrderID)
}

func (r *repository) GetDetail(ctx context.Context, id int64) (*PurchaseOrderDetail, error) {
	d, err := scanDetail(r.q.QueryRow(ctx, detailSelect+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s %d: %w", entityDetail, id, httpx.ErrNotFound)
		}
		return nil, shared.WrapStorage("get", entityDetail, err)
	}
	return &d, nil
}

func (r *repository) CreateDetail(ctx context.Context, d PurchaseOrderDetail) (*PurchaseOrderDetail, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO purchase_order_details
			(purchase_order_id, due_date, order_qty, product_id, unit_price,
			 line_total, received_qty, rejected_qty, stocked_qty, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		d.PurchaseOrderID, pgtype.Date{Time: d.DueDate, Valid: true}, d.OrderQty,
		d.ProductID, shared.Numeric(d.UnitPrice),
		shared.Numeric(shared.LineTotal(d.OrderQty, d.UnitPrice)),
		shared.Numeric(d.ReceivedQty), shared.Numeric(d.RejectedQty),
		shared.Numeric(d.StockedQty), d.ModifiedDate).Scan(&id)
	if err != nil {
		return nil, shared.WrapStorage("create", entityDetail, err)
	}
	return r.GetDetail(ctx, id)
}

func (r *repository) UpdateDetail(ctx context.Context, d PurchaseOrderDetail) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE purchase_order_details
		SET due_date = $1, order_qty = $2, product_id = $3, unit_price = $4,
		    line_total = $5, received_qty = $6, rejected_qty = $7,
		    stocked_qty = $8, modified_date = $9
		WHERE id = $10`,
		pgtype.Date{Time: d.DueDate, Valid: true}, d.OrderQty, d.ProductID,
		shared.Numeric(d.UnitPrice),
		shared.Numeric(shared.LineTotal(d.OrderQty, d.UnitPrice)),
		shared.Numeric(d.ReceivedQty), shared.Numeric(d.RejectedQty),
		shared.Numeric(d.StockedQty), d.ModifiedDate, d.ID)
	if err != nil {
		return shared.WrapStorage("update", entityDetail, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entityDetail, d.ID, httpx.ErrNotFound)
	}
	return nil
}

func (r *repository) DeleteDetail(ctx context.Context, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, "DELETE FROM purchase_order_details WHERE id = $1", id)
	if err != nil {
		return 0, shared.WrapStorage("delete", entityDetail, err)
	}
	return tag.RowsAffected(), nil
}

func (r *repository) listDetails(ctx context.Context, query, op string, args ...any) ([]PurchaseOrderDetail, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, shared.WrapStorage(op, entityDetail, err)
	}
	defer rows.Close()

	var details []PurchaseOrderDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, shared.WrapStorage(op, entityDetail, err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, shared.WrapStorage(op, entityDetail, err)
	}
	return details, nil
}

func insertHeader(ctx context.Context, tx pgx.Tx, po PurchaseOrder) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO purchase_order_headers
			(status, employee_id, vendor_id, ship_method_id, order_date,
			 ship_date, sub_total, tax_amt, freight, total_due, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		po.Status, po.EmployeeID, po.VendorID, po.ShipMethodID,
		pgtype.Date{Time: po.OrderDate, Valid: true}, shared.Date(po.ShipDate),
		shared.Numeric(po.SubTotal), shared.Numeric(po.TaxAmt),
		shared.Numeric(po.Freight),
		shared.Numeric(shared.TotalDue(po.SubTotal, po.TaxAmt, po.Freight)),
		po.ModifiedDate).Scan(&id)
	return id, err
}

// copyDetails bulk-inserts the detail set in a single COPY inside the
// caller's transaction. Line totals are re-derived here so a stored
// value can never disagree with its factors.
func copyDetails(ctx context.Context, tx pgx.Tx, purchaseOrderID int64, details []PurchaseOrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"purchase_order_details"},
		[]string{"purchase_order_id", "due_date", "order_qty", "product_id",
			"unit_price", "line_total", "received_qty", "rejected_qty",
			"stocked_qty", "modified_date"},
		pgx.CopyFromSlice(len(details), func(i int) ([]any, error) {
			d := details[i]
			return []any{
				purchaseOrderID,
				pgtype.Date{Time: d.DueDate, Valid: true},
				d.OrderQty,
				d.ProductID,
				shared.Numeric(d.UnitPrice),
				shared.Numeric(shared.LineTotal(d.OrderQty, d.UnitPrice)),
				shared.Numeric(d.ReceivedQty),
				shared.Numeric(d.RejectedQty),
				shared.Numeric(d.StockedQty),
				d.ModifiedDate,
			}, nil
		}))
	return err
}

func scanHeader(row shared.RowScanner) (PurchaseOrder, error) {
	var po PurchaseOrder
	var orderDate, shipDate pgtype.Date
	var subTotal, taxAmt, freight, totalDue pgtype.Numeric
	var modified pgtype.Timestamptz
	var smName pgtype.Text
	var smBase, smRate pgtype.Numeric
	var vName, vAccount pgtype.Text
	var pFirst, pMiddle, pLast pgtype.Text

	err := row.Scan(
		&po.ID, &po.Status, &po.EmployeeID, &po.VendorID, &po.ShipMethodID,
		&orderDate, &shipDate, &subTotal, &taxAmt, &freight,
		&totalDue, &modified,
		&smName, &smBase, &smRate,
		&vName, &vAccount,
		&pFirst, &pMiddle, &pLast,
	)
	if err != nil {
		return PurchaseOrder{}, err
	}

	po.OrderDate = orderDate.Time
	po.ShipDate = shared.DatePtr(shipDate)
	po.SubTotal = shared.Float(subTotal)
	po.TaxAmt = shared.Float(taxAmt)
	po.Freight = shared.Float(freight)
	po.TotalDue = shared.Float(totalDue)
	po.ModifiedDate = modified.Time

	if smName.Valid {
		po.ShipMethod = &ShipMethodRef{
			ID:       po.ShipMethodID,
			Name:     smName.String,
			ShipBase: shared.Float(smBase),
			ShipRate: shared.Float(smRate),
		}
	}
	if vName.Valid {
		po.Vendor = &VendorRef{
			ID:            po.VendorID,
			Name:          vName.String,
			AccountNumber: vAccount.String,
		}
	}
	if pFirst.Valid {
		po.Employee = &EmployeeRef{
			ID:         po.EmployeeID,
			FirstName:  pFirst.String,
			MiddleName: shared.TextPtr(pMiddle),
			LastName:   pLast.String,
		}
	}
	return po, nil
}

func scanDetail(row shared.RowScanner) (PurchaseOrderDetail, error) {
	var d PurchaseOrderDetail
	var dueDate pgtype.Date
	var unitPrice, lineTotal, receivedQty, rejectedQty, stockedQty pgtype.Numeric
	var modified pgtype.Timestamptz

	err := row.Scan(
		&d.ID, &d.PurchaseOrderID, &dueDate, &d.OrderQty, &d.ProductID,
		&unitPrice, &lineTotal, &receivedQty, &rejectedQty, &stockedQty,
		&modified,
	)
	if err != nil {
		return PurchaseOrderDetail{}, err
	}

	d.DueDate = dueDate.Time
	d.UnitPrice = shared.Float(unitPrice)
	d.LineTotal = shared.Float(lineTotal)
	d.ReceivedQty = shared.Float(receivedQty)
	d.RejectedQty = shared.Float(rejectedQty)
	d.StockedQty = shared.Float(stockedQty)
	d.ModifiedDate = modified.Time
	return d, nil
}

// ensureWrapped keeps begin/commit failures inside the same error kind
// as row-level failures.
func ensureWrapped(op string, err error) error {
	var re *shared.RepositoryError
	if errors.As(err, &re) {
		return err
	}
	return shared.WrapStorage(op, entityOrder, err)
}
