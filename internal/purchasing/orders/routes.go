package orders

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/purchase-orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Show)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	r.Route("/purchase-order-details", func(r chi.Router) {
		r.Get("/", h.ListDetails)
		r.Get("/purchase-order/{purchaseOrderID}", h.ListDetailsByOrder)
		r.Get("/{id}", h.ShowDetail)
		r.Post("/", h.CreateDetail)
		r.Put("/{id}", h.UpdateDetail)
		r.Delete("/{id}", h.DeleteDetail)
	})
}
