package movement

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stocklens/stocklens/internal/observability"
	"github.com/stocklens/stocklens/internal/platform/httpx"
	"github.com/stocklens/stocklens/internal/shared"
	"github.com/stocklens/stocklens/internal/workbook"
)

// Handler wires HTTP endpoints for the movement engine.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
	metrics   *observability.Metrics
	maxUpload int64
}

// NewHandler constructs the movement handler.
func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics, maxUpload int64) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
		metrics:   metrics,
		maxUpload: maxUpload,
	}
}

// MountRoutes registers movement routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/workbooks", h.handleUpload)
	r.Get("/workbooks/{datasetID}", h.handleDataset)
	r.Post("/workbooks/{datasetID}/aggregate", h.handleAggregate)
}

type uploadResponse struct {
	DatasetID      string            `json:"datasetId"`
	RowCount       int               `json:"rowCount"`
	ProductNames   []string          `json:"productNames"`
	WarehouseNames []string          `json:"warehouseNames"`
	ProductCodes   map[string]string `json:"productCodes"`
}

type aggregateRequest struct {
	Products   []string `json:"products" validate:"omitempty,dive,required"`
	Warehouses []string `json:"warehouses" validate:"omitempty,dive,required"`
}

type aggregateResponse struct {
	MatchedRows int        `json:"matchedRows"`
	Total       *float64   `json:"total,omitempty"`
	Title       string     `json:"title,omitempty"`
	Items       []LineItem `json:"items,omitempty"`
	Message     string     `json:"message,omitempty"`
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Upload", shared.MsgInvalidFileType)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Upload", shared.MsgInvalidFileType)
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("read upload", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadRequest, "Bad Upload", shared.MsgDecodeFailed)
		return
	}

	ds, err := h.service.ProcessFile(r.Context(), content)
	if err != nil {
		h.metrics.ObserveWorkbook("error", time.Since(start))
		h.respondProcessError(w, err)
		return
	}
	h.metrics.ObserveWorkbook("ok", time.Since(start))
	h.logger.Info("workbook processed",
		slog.String("dataset_id", ds.ID),
		slog.Int("rows", len(ds.Records)),
		slog.Int("products", len(ds.Indexes.ProductNames)),
		slog.Int("warehouses", len(ds.Indexes.WarehouseNames)))

	httpx.JSON(w, http.StatusCreated, uploadResponse{
		DatasetID:      ds.ID,
		RowCount:       len(ds.Records),
		ProductNames:   ds.Indexes.ProductNames,
		WarehouseNames: ds.Indexes.WarehouseNames,
		ProductCodes:   ds.Indexes.ProductCodes,
	})
}

func (h *Handler) handleDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := h.service.GetDataset(r.Context(), chi.URLParam(r, "datasetID"))
	if err != nil {
		if errors.Is(err, ErrDatasetNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
			return
		}
		h.logger.Error("load dataset", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", shared.MsgUnexpected)
		return
	}
	httpx.JSON(w, http.StatusOK, uploadResponse{
		DatasetID:      ds.ID,
		RowCount:       len(ds.Records),
		ProductNames:   ds.Indexes.ProductNames,
		WarehouseNames: ds.Indexes.WarehouseNames,
		ProductCodes:   ds.Indexes.ProductCodes,
	})
}

func (h *Handler) handleAggregate(w http.ResponseWriter, r *http.Request) {
	var req aggregateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "selection entries must be non-empty")
		return
	}

	sel := Selection{Products: req.Products, Warehouses: req.Warehouses}
	result, err := h.service.ApplyFilters(r.Context(), chi.URLParam(r, "datasetID"), sel)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoMatchingRows):
			h.metrics.ObserveAggregation("empty")
			httpx.JSON(w, http.StatusOK, aggregateResponse{Message: shared.MsgNoMatchingRows})
		case errors.Is(err, ErrDatasetNotFound):
			httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		default:
			h.logger.Error("apply filters", slog.Any("error", err))
			h.metrics.ObserveAggregation("error")
			httpx.Problem(w, http.StatusInternalServerError, "Internal Error", shared.MsgUnexpected)
		}
		return
	}

	h.metrics.ObserveAggregation("ok")
	total := result.Total
	httpx.JSON(w, http.StatusOK, aggregateResponse{
		MatchedRows: result.MatchedRows,
		Total:       &total,
		Title:       result.Description.Title,
		Items:       result.Description.Items,
	})
}

// respondProcessError maps ingestion failures onto the error taxonomy: wrong
// file kind, undecodable workbook, or a decodable workbook with a missing
// required column.
func (h *Handler) respondProcessError(w http.ResponseWriter, err error) {
	var schemaErr *SchemaError
	switch {
	case errors.Is(err, workbook.ErrInvalidFileType):
		httpx.Problem(w, http.StatusUnsupportedMediaType, "Invalid File Type", shared.MsgInvalidFileType)
	case errors.As(err, &schemaErr):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Schema Error", shared.UserSafeMessage(err))
	case errors.Is(err, workbook.ErrDecode):
		h.logger.Warn("workbook decode failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadRequest, "Decode Error", shared.MsgDecodeFailed)
	default:
		h.logger.Error("process workbook", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", shared.UserSafeMessage(err))
	}
}
