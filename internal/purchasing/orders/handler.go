package orders

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/adventureworks/purchasing/internal/platform/httpx"
)

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pos, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list purchase orders failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if pos == nil {
		pos = []PurchaseOrder{}
	}
	httpx.JSON(w, http.StatusOK, pos)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}
	po, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, po)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePurchaseOrderRequest
	if !h.decode(w, r, &req) {
		return
	}
	po, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create purchase order failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, po)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}
	var req UpdatePurchaseOrderRequest
	if !h.decode(w, r, &req) {
		return
	}
	po, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.logger.Error("update purchase order failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, po)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("delete purchase order failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	if !deleted {
		httpx.Problem(w, http.StatusNotFound, "Not Found", fmt.Sprintf("purchase order %d not found", id))
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) ListDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.ListDetails(r.Context())
	if err != nil {
		h.logger.Error("list purchase order details failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if details == nil {
		details = []PurchaseOrderDetail{}
	}
	httpx.JSON(w, http.StatusOK, details)
}

func (h *Handler) ListDetailsByOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "purchaseOrderID")
	if !ok {
		return
	}
	details, err := h.service.ListDetailsByOrder(r.Context(), id)
	if err != nil {
		h.logger.Error("list details by order failed", slog.Any("error", err), slog.Int64("purchase_order_id", id))
		httpx.RespondError(w, err)
		return
	}
	if details == nil {
		details = []PurchaseOrderDetail{}
	}
	httpx.JSON(w, http.StatusOK, details)
}

func (h *Handler) ShowDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.service.GetDetail(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateDetail(w http.ResponseWriter, r *http.Request) {
	var req CreateDetailRequest
	if !h.decode(w, r, &req) {
		return
	}
	detail, err := h.service.CreateDetail(r.Context(), req)
	if err != nil {
		h.logger.Error("create detail failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, detail)
}

func (h *Handler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateDetailRequest
	if !h.decode(w, r, &req) {
		return
	}
	detail, err := h.service.UpdateDetail(r.Context(), id, req)
	if err != nil {
		h.logger.Error("update detail failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, detail)
}

func (h *Handler) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.service.DeleteDetail(r.Context(), id)
	if err != nil {
		h.logger.Error("delete detail failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	if !deleted {
		httpx.Problem(w, http.StatusNotFound, "Not Found", fmt.Sprintf("purchase order detail %d not found", id))
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := httpx.DecodeJSON(r, target); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return false
	}
	if err := h.validate.Struct(target); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return false
	}
	return true
}

func (h *Handler) urlID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid id")
		return 0, false
	}
	return id, true
}
