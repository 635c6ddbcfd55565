package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/iwvelando/mortgage-planner/internal/cache"
	"github.com/iwvelando/mortgage-planner/internal/metrics"
	"github.com/iwvelando/mortgage-planner/internal/planner"
	"github.com/iwvelando/mortgage-planner/pkg/constants"
)

type handler struct {
	logger      *zap.Logger
	service     *planner.Service
	resultCache cache.Cache
	cacheTTL    time.Duration
	validate    *validator.Validate
	maxBodySize int64
	version     string
}

// Options carries the optional collaborators for the handler.
type Options struct {
	ResultCache cache.Cache
	CacheTTL    time.Duration
	MaxBodySize int64
	Version     string
}

type scheduleRequest struct {
	Loan        planner.LoanInput        `json:"loan"`
	Overpayment planner.OverpaymentInput `json:"overpayment"`
}

type overrideRequest struct {
	Loan        planner.LoanInput        `json:"loan"`
	Overpayment planner.OverpaymentInput `json:"overpayment"`
	Month       int                      `json:"month" validate:"gte=1"`
	Amount      float64                  `json:"amount" validate:"gte=0"`
}

// NewHandler constructs the HTTP handler that serves the schedule API.
func NewHandler(logger *zap.Logger, service *planner.Service, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if service == nil {
		service = planner.NewService(logger)
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:      logger,
		service:     service,
		resultCache: opts.ResultCache,
		cacheTTL:    opts.CacheTTL,
		validate:    validator.New(),
		maxBodySize: maxBodySize,
		version:     version,
	}

	mux := http.NewServeMux()

	// Schedule computation endpoint
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Single-period override endpoint (recomputes the whole schedule)
	mux.HandleFunc("/api/schedule/override", h.handleOverride)

	// Validation-only endpoint for form feedback
	mux.HandleFunc("/api/validate", h.handleValidate)

	// Installment preview endpoint
	mux.HandleFunc("/api/payment", h.handlePayment)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"

	var req scheduleRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}
	if !h.checkShape(w, op, req.Loan, req.Overpayment) {
		return
	}

	validation := h.service.ValidateLoanInput(req.Loan)
	if !validation.Valid {
		metrics.ValidationFailures.Inc()
		h.writeJSON(w, http.StatusUnprocessableEntity, validation)
		return
	}

	key := requestKey(req)
	if cached, ok := h.cacheLookup(r, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}

	start := time.Now()
	data := h.service.CalculateSchedule(req.Loan, req.Overpayment)
	if data == nil {
		metrics.ScheduleCalculations.WithLabelValues("error").Inc()
		h.respondError(w, http.StatusInternalServerError, "failed to calculate schedule", op)
		return
	}
	metrics.ScheduleCalculations.WithLabelValues("success").Inc()

	payload, err := json.Marshal(data)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode result: %v", err), op)
		return
	}
	h.cacheStore(r, key, string(payload))

	h.logger.Info("schedule computed",
		zap.String("op", op),
		zap.Int("periods", len(data.Rows)),
		zap.Duration("duration", time.Since(start)),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (h *handler) handleOverride(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleOverride"

	var req overrideRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid override request: %v", err), op)
		return
	}
	if !h.checkShape(w, op, req.Loan, req.Overpayment) {
		return
	}

	validation := h.service.ValidateLoanInput(req.Loan)
	if !validation.Valid {
		metrics.ValidationFailures.Inc()
		h.writeJSON(w, http.StatusUnprocessableEntity, validation)
		return
	}

	current := h.service.CalculateSchedule(req.Loan, req.Overpayment)
	if current == nil {
		metrics.ScheduleCalculations.WithLabelValues("error").Inc()
		h.respondError(w, http.StatusInternalServerError, "failed to calculate schedule", op)
		return
	}

	updated := h.service.UpdateOverpayment(current, req.Loan, req.Overpayment, req.Month, req.Amount)
	metrics.ScheduleCalculations.WithLabelValues("success").Inc()
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleValidate"

	var req scheduleRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}
	if !h.checkShape(w, op, req.Loan, req.Overpayment) {
		return
	}

	validation := h.service.ValidateLoanInput(req.Loan)
	if !validation.Valid {
		metrics.ValidationFailures.Inc()
	}
	h.writeJSON(w, http.StatusOK, validation)
}

func (h *handler) handlePayment(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePayment"

	var req scheduleRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}
	if !h.checkShape(w, op, req.Loan, req.Overpayment) {
		return
	}

	payment, ok := h.service.MonthlyPayment(req.Loan)
	if !ok {
		validation := h.service.ValidateLoanInput(req.Loan)
		metrics.ValidationFailures.Inc()
		h.writeJSON(w, http.StatusUnprocessableEntity, validation)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]float64{"monthlyPayment": payment})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeJSON enforces the method and body limit and decodes the payload.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

// checkShape runs struct-tag validation on the decoded inputs before any
// domain validation.
func (h *handler) checkShape(w http.ResponseWriter, op string, loanIn planner.LoanInput, overIn planner.OverpaymentInput) bool {
	if err := h.validate.Struct(loanIn); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid loan payload: %v", err), op)
		return false
	}
	if err := h.validate.Struct(overIn); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid overpayment payload: %v", err), op)
		return false
	}
	return true
}

func (h *handler) cacheLookup(r *http.Request, key string) (string, bool) {
	if h.resultCache == nil {
		return "", false
	}
	value, ok := h.resultCache.Get(r.Context(), key)
	if ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}
	return value, ok
}

func (h *handler) cacheStore(r *http.Request, key, value string) {
	if h.resultCache == nil {
		return
	}
	if err := h.resultCache.Set(r.Context(), key, value, h.cacheTTL); err != nil {
		h.logger.Warn("failed to store result in cache",
			zap.String("op", "server.cacheStore"),
			zap.Error(err),
		)
	}
}

func requestKey(req scheduleRequest) string {
	payload, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return "schedule:" + hex.EncodeToString(sum[:])
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
