package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apperrors "leadcli/internal/errors"
	"leadcli/internal/report"
)

// ReportHandler serves reports, samples and district figures
type ReportHandler struct {
	service      ReportServiceInterface
	logger       *slog.Logger
	errorHandler *apperrors.ErrorHandler
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportServiceInterface, logger *slog.Logger, errorHandler *apperrors.ErrorHandler) *ReportHandler {
	return &ReportHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the report routes
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/report", h.GetReport)
	r.Get("/samples", h.GetSamples)

	r.Route("/districts", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/", h.GetDistricts)
		r.Get("/max", h.GetMaxDistrict)
		r.Get("/{district}", h.GetDistrict)
	})

	return r
}

// GetReport handles GET /api/report. Without a format the report is rendered
// as JSON; with one it is streamed in that rendering.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format != "" && !slices.Contains(report.Formats, format) {
		h.errorHandler.HandleError(w, r, apperrors.NewValidationError(
			fmt.Sprintf("format must be one of %s", strings.Join(report.Formats, ", "))).
			WithContext("format", format))
		return
	}

	rep, err := h.service.Generate(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	if format == "" {
		render.JSON(w, r, rep)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, rep); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", report.ContentType(format))
	if format == "csv" || format == "xlsx" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "lead_report."+format))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write report body",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	}
}

// GetSamples handles GET /api/samples
func (h *ReportHandler) GetSamples(w http.ResponseWriter, r *http.Request) {
	samples, err := h.service.Samples(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"samples": samples,
		"count":   len(samples),
	})
}

// GetDistricts handles GET /api/districts
func (h *ReportHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.Generate(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"districts": rep.Districts,
		"count":     len(rep.Districts),
	})
}

// GetDistrict handles GET /api/districts/{district}. The literal segment
// "max" is taken by GetMaxDistrict; a district with that name is reached by
// percent-encoding a letter, as in /api/districts/%6Dax.
func (h *ReportHandler) GetDistrict(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "district")
	// chi routes on RawPath when it is set, leaving the param encoded.
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			h.errorHandler.HandleError(w, r, apperrors.NewValidationError("district name is not valid path encoding"))
			return
		}
		name = unescaped
	}

	stat, err := h.service.District(r.Context(), name)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, stat)
}

// GetMaxDistrict handles GET /api/districts/max
func (h *ReportHandler) GetMaxDistrict(w http.ResponseWriter, r *http.Request) {
	stat, err := h.service.MaxDistrict(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, stat)
}
