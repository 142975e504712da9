package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/domain"
	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/port"
)

// GET    /api/products?limit=n&offset=n  (200)
// GET    /api/products/{id}              (200, 400, 404)
// POST   /api/products                   (201, 400)
// PUT    /api/products/{id}              (200, 400, 404)
// DELETE /api/products/{id}              (200, 400, 404)
// GET    /api/products/total-sales/{id}  (200, 400, 404)

const (
	msgNotFound       = "Product not found"
	msgDeleted        = "Product deleted successfully"
	msgInvalidID      = "Invalid product id"
	msgInvalidJSON    = "Invalid JSON data"
	msgInternalServer = "Internal Server Error"
)

type ProductsHandler struct {
	provider port.ProductsProvider
	editor   port.ProductsEditor
	sales    port.SalesProvider
}

func RegisterProducts(
	mux *http.ServeMux,
	provider port.ProductsProvider,
	editor port.ProductsEditor,
	sales port.SalesProvider,
) {
	h := ProductsHandler{provider, editor, sales}
	mux.HandleFunc("GET /api/products", h.GetProducts)
	mux.HandleFunc("GET /api/products/{id}", h.GetProduct)
	mux.HandleFunc("POST /api/products", h.PostProduct)
	mux.HandleFunc("PUT /api/products/{id}", h.PutProduct)
	mux.HandleFunc("DELETE /api/products/{id}", h.DeleteProduct)
	mux.HandleFunc("GET /api/products/total-sales/{id}", h.GetTotalSales)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	page := pageParams(r)

	ps, err := h.provider.ListProducts(r.Context(), page)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, toProductsJSON(ps))
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	productID, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.provider.ProductByID(r.Context(), productID)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, toProductJSON(p))
}

func (h ProductsHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PostProduct"
	log := slog.With("op", op)

	var payload ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, log, http.StatusBadRequest, Message{msgInvalidJSON})
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, err := h.editor.CreateProduct(r.Context(), toDraft(payload))
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, toProductJSON(p))
}

func (h ProductsHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PutProduct"
	log := slog.With("op", op)

	productID, ok := pathID(w, r)
	if !ok {
		return
	}

	var payload ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, log, http.StatusBadRequest, Message{msgInvalidJSON})
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, err := h.editor.UpdateProduct(r.Context(), productID, toDraft(payload))
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, toProductJSON(p))
}

func (h ProductsHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.DeleteProduct"
	log := slog.With("op", op)

	productID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.editor.DeleteProduct(r.Context(), productID); err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, Message{msgDeleted})
}

func (h ProductsHandler) GetTotalSales(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetTotalSales"
	log := slog.With("op", op)

	productID, ok := pathID(w, r)
	if !ok {
		return
	}

	total, err := h.sales.TotalSalesByProduct(r.Context(), productID)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, TotalSales{total})
}

// pathID rejects a non-numeric id with 400 before the persistence
// layer is reached.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(Message{msgInvalidID})
		return 0, false
	}
	return id, true
}

func pageParams(r *http.Request) domain.PageParams {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = domain.DefaultPageLimit
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil {
		offset = 0
	}
	return domain.NewPageParams(limit, offset)
}

func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		writeJSON(w, log, http.StatusNotFound, Message{msgNotFound})
	case errors.As(err, &vErr):
		writeJSON(w, log, http.StatusBadRequest, Message{vErr.Error()})
		log.Warn("rejected payload", "fields", vErr.Fields)
	default:
		writeJSON(w, log, http.StatusInternalServerError, Message{msgInternalServer})
		log.Error("operation failed", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func toDraft(p ProductPayload) domain.ProductDraft {
	return domain.ProductDraft{
		ProductName: p.ProductName,
		Cost:        p.Cost,
		Quantity:    p.Quantity,
	}
}

func toProductJSON(p domain.Product) Product {
	return Product{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Cost:        p.Cost,
		Quantity:    p.Quantity,
		AddedDate:   p.AddedDate,
	}
}

func toProductsJSON(ps []domain.Product) []Product {
	res := make([]Product, 0, len(ps))
	for _, p := range ps {
		res = append(res, toProductJSON(p))
	}
	return res
}
