package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"telco_reports/internal/app"
	"telco_reports/internal/domain"
)

type Handlers struct {
	Billing  *app.BillingReports
	Listings *app.ListingReports
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/billing/reports/{name}", h.billingReport)
	s.mux.Get("/v1/listings/reports/{name}", h.listingReport)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeReportError maps the two report error kinds onto HTTP statuses:
// store unreachable -> 502, query rejected -> 500.
func writeReportError(w http.ResponseWriter, err error) {
	var ce *domain.ConnectionError
	if errors.As(err, &ce) {
		writeProblem(w, http.StatusBadGateway, "Store Unreachable", ce.Error())
		return
	}
	var qe *domain.QueryError
	if errors.As(err, &qe) {
		writeProblem(w, http.StatusInternalServerError, "Query Failed", qe.Error())
		return
	}
	writeProblem(w, http.StatusInternalServerError, "Report Failed", err.Error())
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal report rows")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeRows(w http.ResponseWriter, r *http.Request, rows any) {
	etag, body := calcETagAndBody(rows)
	// Reports are pure reads, so an unchanged store yields byte-identical
	// bodies and the ETag short-circuit is sound.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write report body")
	}
}

func (h *Handlers) billingReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !slices.Contains(app.BillingReportNames, name) {
		writeProblem(w, http.StatusNotFound, "Unknown Report", "no billing report named "+name)
		return
	}
	rows, err := h.Billing.Fetch(r.Context(), name)
	if err != nil {
		writeReportError(w, err)
		return
	}
	writeRows(w, r, rows)
}

func (h *Handlers) listingReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !slices.Contains(app.ListingReportNames, name) {
		writeProblem(w, http.StatusNotFound, "Unknown Report", "no listing report named "+name)
		return
	}
	rows, err := h.Listings.Fetch(r.Context(), name)
	if err != nil {
		writeReportError(w, err)
		return
	}
	writeRows(w, r, rows)
}
