package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (chi.Router, *mockRepository) {
	repo := newMockRepository()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := NewHandler(logger, NewService(repo))
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r, repo
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCreatePurchaseOrder(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, http.MethodPost, "/purchase-orders/", baseCreateRequest())
	require.Equal(t, http.StatusCreated, rec.Code)

	var po PurchaseOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &po))
	assert.Equal(t, 115.0, po.TotalDue)
	assert.Len(t, po.Details, 2)
}

func TestHandlerCreatePurchaseOrderValidation(t *testing.T) {
	r, _ := newTestRouter()

	req := baseCreateRequest()
	req.VendorID = 0
	rec := doJSON(t, r, http.MethodPost, "/purchase-orders/", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerShowPurchaseOrderNotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, http.MethodGet, "/purchase-orders/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestHandlerShowPurchaseOrderBadID(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, http.MethodGet, "/purchase-orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerDeletePurchaseOrder(t *testing.T) {
	r, repo := newTestRouter()
	_, err := NewService(repo).Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodDelete, "/purchase-orders/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/purchase-orders/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerUpdateReplacesDetails(t *testing.T) {
	r, repo := newTestRouter()
	created, err := NewService(repo).Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodPut, "/purchase-orders/1", UpdatePurchaseOrderRequest{
		Details: &[]CreateOrderDetailLine{
			{DueDate: time.Now().AddDate(0, 0, 14), OrderQty: 5, ProductID: 99, UnitPrice: 10},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var po PurchaseOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &po))
	require.Len(t, po.Details, 1)
	assert.Equal(t, 50.0, po.Details[0].LineTotal)
	assert.NotEqual(t, created.Details[0].ID, po.Details[0].ID)
}

func TestHandlerListDetailsByOrder(t *testing.T) {
	r, repo := newTestRouter()
	_, err := NewService(repo).Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodGet, "/purchase-order-details/purchase-order/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var details []PurchaseOrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	assert.Len(t, details, 2)
}

func TestHandlerListPurchaseOrdersEmpty(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, http.MethodGet, "/purchase-orders/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
