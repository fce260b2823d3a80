// Package server exposes the loan estimator over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/loan-estimator/internal/estimate"
	"github.com/iwvelando/loan-estimator/internal/optimizer"
	"github.com/iwvelando/loan-estimator/pkg/constants"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	optimizer   *optimizer.Runner
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the estimate API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		optimizer:   optimizer.NewRunner(logger),
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/estimate", h.handleEstimate)
	mux.HandleFunc("/api/max-loan", h.handleMaxLoan)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealth)

	return mux
}

// estimatePayload mirrors estimate.Request with pointers so that absent
// fields can be told apart from zeros.
type estimatePayload struct {
	AnnualIncome *float64 `json:"annualIncome"`
	MonthlyDebts *float64 `json:"monthlyDebts"`
	CreditScore  *int     `json:"creditScore"`
	LoanAmount   *float64 `json:"loanAmount"`
	InterestRate *float64 `json:"interestRate"`
	TermYears    *int     `json:"termYears"`
}

const constraintRequired = "is required"

func (p estimatePayload) toRequest() (estimate.Request, error) {
	var (
		req     estimate.Request
		missing estimate.ValidationErrors
	)

	floatField := func(name string, src *float64, dst *float64) {
		if src == nil {
			missing = append(missing, estimate.ValidationError{Field: name, Constraint: constraintRequired})
			return
		}
		*dst = *src
	}
	intField := func(name string, src *int, dst *int) {
		if src == nil {
			missing = append(missing, estimate.ValidationError{Field: name, Constraint: constraintRequired})
			return
		}
		*dst = *src
	}

	floatField("annualIncome", p.AnnualIncome, &req.AnnualIncome)
	floatField("monthlyDebts", p.MonthlyDebts, &req.MonthlyDebts)
	intField("creditScore", p.CreditScore, &req.CreditScore)
	floatField("loanAmount", p.LoanAmount, &req.LoanAmount)
	floatField("interestRate", p.InterestRate, &req.InterestRate)
	intField("termYears", p.TermYears, &req.TermYears)

	if len(missing) > 0 {
		return estimate.Request{}, missing
	}
	return req, nil
}

// maxLoanPayload adds the decision to search for; Eligible when omitted.
type maxLoanPayload struct {
	estimatePayload
	Target string `json:"target"`
}

type errorResponse struct {
	Error  string                     `json:"error"`
	Fields []estimate.ValidationError `json:"fields,omitempty"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEstimate"

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.respondError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), op)
		return
	}

	start := time.Now()

	var payload estimatePayload
	if !h.decodeBody(w, r, &payload, op) {
		return
	}

	req, err := payload.toRequest()
	if err != nil {
		h.respondValidation(w, err, op)
		return
	}

	result, err := estimate.Estimate(req)
	if err != nil {
		h.respondValidation(w, err, op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("estimate computed",
		zap.String("op", op),
		zap.String("decision", result.Decision.String()),
		zap.String("creditTier", string(result.CreditTier)),
		zap.Float64("dtiPercent", result.DTIPercent),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleMaxLoan(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleMaxLoan"

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.respondError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), op)
		return
	}

	start := time.Now()

	var payload maxLoanPayload
	if !h.decodeBody(w, r, &payload, op) {
		return
	}

	target := estimate.DecisionEligible
	if strings.TrimSpace(payload.Target) != "" {
		parsed, err := estimate.ParseDecision(payload.Target)
		if err != nil || parsed == estimate.DecisionNotYet {
			h.respondValidation(w, estimate.ValidationErrors{{
				Field:      "target",
				Constraint: "must be Eligible or Maybe",
			}}, op)
			return
		}
		target = parsed
	}

	req, err := payload.toRequest()
	if err != nil {
		h.respondValidation(w, err, op)
		return
	}

	summary, err := h.optimizer.MaxLoanAmount(req, target)
	if err != nil {
		h.respondValidation(w, err, op)
		return
	}

	h.logger.Info("largest loan computed",
		zap.String("op", op),
		zap.String("target", target.String()),
		zap.Float64("value", summary.Value),
		zap.Bool("converged", summary.Converged),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, summary)
}

// decodeBody reads a size-limited JSON body into dst, answering the request
// itself and returning false when the body is unusable.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		h.respondError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
	case errors.Is(err, io.EOF):
		h.respondError(w, http.StatusBadRequest, "request body is required", op)
	default:
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
	}
	return false
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.respondError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), "server.handleVersion")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		h.respondError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), "server.handleHealth")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) respondValidation(w http.ResponseWriter, err error, op string) {
	var verrs estimate.ValidationErrors
	if errors.As(err, &verrs) {
		h.logger.Warn("estimate request rejected",
			zap.String("op", op),
			zap.Int("status", http.StatusBadRequest),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: verrs.Error(), Fields: verrs})
		return
	}
	h.respondError(w, http.StatusInternalServerError, err.Error(), op)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("estimate request failed", fields...)
	} else {
		h.logger.Warn("estimate request failed", fields...)
	}

	h.writeJSON(w, status, errorResponse{Error: msg})
}

// encodeFailureBody is the errorResponse sent when a payload cannot be encoded.
const encodeFailureBody = `{"error":"failed to encode response"}` + "\n"

// writeJSON encodes into a buffer first so that an encoding failure can
// still be reported with a 500 instead of a truncated 200.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		buf.Reset()
		buf.WriteString(encodeFailureBody)
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
