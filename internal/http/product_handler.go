package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/angularstore/catalog/internal/apperr"
	"github.com/angularstore/catalog/internal/service"
	"github.com/angularstore/catalog/pkg/result"
	"github.com/angularstore/catalog/pkg/validator"
)

type productHandler struct {
	logger     *slog.Logger
	validator  validator.Validator
	productSvc service.ProductService
}

func newProductHandler(
	logger *slog.Logger,
	validator validator.Validator,
	productSvc service.ProductService,
) *productHandler {
	return &productHandler{
		logger:     logger,
		validator:  validator,
		productSvc: productSvc,
	}
}

// routes mounts the product endpoints on r. Ids are matched numerically, so
// a non-numeric id falls through to the router's 404.
func (h *productHandler) routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)

	r.Route("/{id:[0-9]+}", func(r chi.Router) {
		r.Get("/", h.getByID)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
	})
}

func (h *productHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.GetAll(r.Context())
	if err != nil {
		writeError(w, r, h.logger, fmt.Errorf("product service get all: %w", err))
		return
	}

	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, newProductResponse(product))
	}

	writeJSON(w, r, h.logger, http.StatusOK, result.Ok(items))
}

func (h *productHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	product, err := h.productSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, fmt.Errorf("product service get by id: %w", err))
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, result.Ok(newProductResponse(product)))
}

func (h *productHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.productSvc.Create(r.Context(), service.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	})
	if err != nil {
		writeError(w, r, h.logger, fmt.Errorf("product service create: %w", err))
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", product.ID()))
	writeJSON(w, r, h.logger, http.StatusCreated, result.Ok(newProductResponse(product)))
}

func (h *productHandler) update(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	var req UpdateProductRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.productSvc.Update(r.Context(), id, service.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	})
	if err != nil {
		// Overwriting a product that does not exist is rejected as a bad
		// request, not a 404.
		if errors.Is(err, apperr.ErrProductNotFound) {
			h.logger.WarnContext(r.Context(), "http response error", slog.Any("error", err))
			writeJSON(w, r, h.logger, http.StatusBadRequest,
				result.Fail(apperr.ErrProductNotFound.Msg()))
			return
		}
		writeError(w, r, h.logger, fmt.Errorf("product service update: %w", err))
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, result.OkVoid())
}

func (h *productHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	if err := h.productSvc.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, fmt.Errorf("product service delete: %w", err))
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, result.OkVoid())
}

// decodeAndValidate fills req from the body and checks its validate tags. It
// writes the 400 response itself and reports whether the caller may proceed.
func (h *productHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeJSON(w, r, h.logger, http.StatusBadRequest, result.Fail("invalid request body"))
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		msg, ok := validator.Join(err)
		if !ok {
			writeError(w, r, h.logger, fmt.Errorf("validate request: %w", err))
			return false
		}
		writeJSON(w, r, h.logger, http.StatusBadRequest, result.Fail(msg))
		return false
	}

	return true
}

// pathID reads the id route param. The route pattern guarantees it is
// numeric.
func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}
