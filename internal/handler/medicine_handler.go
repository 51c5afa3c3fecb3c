package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pharmazen/internal/model"
	"pharmazen/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// MedicineHandler handles medicine-related HTTP requests.
type MedicineHandler struct {
	service service.MedicineService
	logger  zerolog.Logger
}

// NewMedicineHandler creates a new medicine handler.
func NewMedicineHandler(service service.MedicineService, logger zerolog.Logger) *MedicineHandler {
	return &MedicineHandler{
		service: service,
		logger:  logger.With().Str("handler", "medicine").Logger(),
	}
}

// MaxPriceResponse is the payload of GET /api/medicines/max-price.
type MaxPriceResponse struct {
	MaxPrice decimal.Decimal `json:"maxPrice"`
}

// List handles GET /api/medicines with filters, search and pagination.
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseMedicineQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), model.ErrInvalidQuery.Wrap(err), h.logger)
		return
	}

	page, err := h.service.List(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch medicines. Please try again.", err, h.logger)
		return
	}

	writeSuccess(w, page)
}

// MaxPrice handles GET /api/medicines/max-price.
func (h *MedicineHandler) MaxPrice(w http.ResponseWriter, r *http.Request) {
	maxPrice, err := h.service.MaxPrice(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch maximum price.", err, h.logger)
		return
	}

	writeSuccess(w, MaxPriceResponse{MaxPrice: maxPrice})
}

// FilterOptions handles GET /api/medicines/filters.
func (h *MedicineHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.FilterOptions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch filter options.", err, h.logger)
		return
	}

	writeSuccess(w, options)
}

// parseMedicineQuery reads the listing parameters. Empty values count as absent.
func parseMedicineQuery(values url.Values) (model.MedicineQuery, error) {
	q := model.MedicineQuery{
		Search:      values.Get("search"),
		GenericName: values.Get("genericName"),
		Company:     values.Get("company"),
	}

	var err error
	if q.Page, err = parseInt(values, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = parseInt(values, "limit"); err != nil {
		return q, err
	}

	if raw := values.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return q, fmt.Errorf("invalid categoryId parameter")
		}
		q.CategoryID = &id
	}

	if q.MinPrice, err = parseDecimal(values, "minPrice"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = parseDecimal(values, "maxPrice"); err != nil {
		return q, err
	}

	return q, nil
}

func parseInt(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", key)
	}
	return n, nil
}

func parseDecimal(values url.Values, key string) (*decimal.Decimal, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &d, nil
}
