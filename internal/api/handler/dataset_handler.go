package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"salesboard/internal/chart"
	"salesboard/internal/config"
	"salesboard/internal/dataset"
	"salesboard/internal/export"
	"salesboard/internal/model"
	"salesboard/internal/pipeline"
	"salesboard/internal/store"
	"salesboard/pkg/router"
	"salesboard/pkg/utils"
)

// DatasetHandler serves the dataset API: upload, KPI summaries, charts,
// export, and deletion.
type DatasetHandler struct {
	svc    *pipeline.Service
	cfg    *config.Config
	logger *utils.Logger
}

// NewDatasetHandler creates a DatasetHandler.
func NewDatasetHandler(svc *pipeline.Service, cfg *config.Config, logger *utils.Logger) *DatasetHandler {
	return &DatasetHandler{svc: svc, cfg: cfg, logger: logger}
}

// Create uploads a sales file and runs the pipeline on it
// @Summary Upload a sales dataset
// @Description Upload a CSV or XLSX file; it is cleaned and summarized synchronously
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} map[string]interface{} "Dataset cleaned and summarized"
// @Failure 400 {object} map[string]interface{} "Unusable upload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [post]
func (h *DatasetHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart payload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "A 'file' form field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	id := uuid.New().String()
	entry, err := h.svc.Process(r.Context(), id, name, header.Filename, file)
	if err != nil {
		var dfe *dataset.DataFormatError
		if errors.As(err, &dfe) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": dfe.Error()})
			return
		}
		http.Error(w, "Failed to process upload", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset":       entry.Meta,
		"report":        entry.Report,
		"summary":       pipeline.Summarize(entry.Dataset, model.FilterState{}),
		"filterOptions": pipeline.Options(entry.Dataset),
	})
}

// List returns all dataset metadata
// @Summary List datasets
// @Tags datasets
// @Produce json
// @Success 200 {array} model.DatasetMeta
// @Router /datasets [get]
func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	metas, err := store.ListDatasets()
	if err != nil {
		http.Error(w, "Failed to fetch datasets", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, metas)
}

// Get returns one dataset's metadata, schema, and filter options
// @Summary Get dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /datasets/{id} [get]
func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	if entry := h.svc.Registry().Get(id); entry != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"dataset":       entry.Meta,
			"schema":        entry.Dataset.Schema,
			"report":        entry.Report,
			"filterOptions": pipeline.Options(entry.Dataset),
		})
		return
	}

	// Fall back to persisted metadata for datasets from earlier runs.
	meta, err := store.GetDataset(id)
	if err != nil {
		http.Error(w, "Dataset not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"dataset": meta})
}

// Summary returns the KPI summary under the requested filters
// @Summary Get KPI summary
// @Description Recomputes KPIs for the dataset under the given filter state
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Param from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param category query string false "Comma-separated categories"
// @Param region query string false "Comma-separated regions"
// @Param status query string false "Comma-separated statuses"
// @Param year query string false "Comma-separated years"
// @Param bucket query string false "Trend bucket: day or month"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /datasets/{id}/summary [get]
func (h *DatasetHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	filter := parseFilter(r)

	entry := h.svc.Registry().Get(id)
	if entry == nil {
		// A restarted server can still serve the persisted unfiltered snapshot.
		if filter.IsEmpty() {
			if summary, err := store.GetSummary(id); err == nil {
				writeJSON(w, http.StatusOK, map[string]interface{}{
					"dataset_id": id, "filters": filter, "summary": summary,
				})
				return
			}
		}
		http.Error(w, "Dataset not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": id,
		"filters":    filter,
		"summary":    pipeline.Summarize(entry.Dataset, filter),
	})
}

// Charts returns render-ready chart configs under the requested filters
// @Summary Get chart configurations
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /datasets/{id}/charts [get]
func (h *DatasetHandler) Charts(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	entry := h.svc.Registry().Get(id)
	if entry == nil {
		http.Error(w, "Dataset not found", http.StatusNotFound)
		return
	}

	filter := parseFilter(r)
	summary := pipeline.Summarize(entry.Dataset, filter)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": id,
		"filters":    filter,
		"charts":     chart.Build(summary),
	})
}

// Export downloads the cleaned (optionally filtered) dataset as CSV
// @Summary Export cleaned dataset
// @Description Streams the cleaned dataset as CSV; with sink=postgres, writes to the configured database instead
// @Tags datasets
// @Produce text/csv
// @Param id path string true "Dataset ID"
// @Param sink query string false "Export sink: csv (default) or postgres"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} map[string]interface{}
// @Router /datasets/{id}/export [get]
func (h *DatasetHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	entry := h.svc.Registry().Get(id)
	if entry == nil {
		http.Error(w, "Dataset not found", http.StatusNotFound)
		return
	}

	filter := parseFilter(r)
	var rows []int
	if !filter.IsEmpty() {
		rows = pipeline.ApplyFilter(entry.Dataset, filter)
	}

	if r.URL.Query().Get("sink") == "postgres" {
		h.exportToPostgres(w, id, entry, rows)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_cleaned.csv"`, id[:8]))
	if err := export.WriteCSV(w, entry.Dataset, rows); err != nil {
		h.logger.Error("[api] export dataset %s: %v", id, err)
	}
}

func (h *DatasetHandler) exportToPostgres(w http.ResponseWriter, id string, entry *pipeline.Entry, rows []int) {
	if h.cfg.PostgresDSN == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "no postgres sink configured"})
		return
	}
	pw, err := export.NewPostgresWriter(h.cfg.PostgresDSN, id)
	if err != nil {
		h.logger.Error("[api] postgres export %s: %v", id, err)
		http.Error(w, "Postgres export failed", http.StatusInternalServerError)
		return
	}
	defer pw.Close()

	if err := pw.Write(entry.Dataset, rows); err != nil {
		h.logger.Error("[api] postgres export %s: %v", id, err)
		http.Error(w, "Postgres export failed", http.StatusInternalServerError)
		return
	}

	count := len(rows)
	if rows == nil {
		count = entry.Dataset.NumRows()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id":   id,
		"sink":         "postgres",
		"record_count": count,
	})
}

// Errors returns pipeline errors recorded for a dataset
// @Summary Get dataset errors
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{}
// @Router /datasets/{id}/errors [get]
func (h *DatasetHandler) Errors(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	errs, err := store.GetDatasetErrors(id)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": id,
		"errors":     errs,
		"count":      len(errs),
	})
}

// Delete removes a dataset from memory, store, and disk
// @Summary Delete dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /datasets/{id} [delete]
func (h *DatasetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	inMemory := h.svc.Registry().Delete(id)
	if _, err := store.GetDataset(id); err != nil && !inMemory {
		http.Error(w, "Dataset not found", http.StatusNotFound)
		return
	}
	if err := store.DeleteDataset(id); err != nil {
		h.logger.Warn("[api] delete dataset %s metadata: %v", id, err)
	}
	if err := os.RemoveAll(filepath.Join(h.cfg.OutputDir, id)); err != nil {
		h.logger.Warn("[api] delete dataset %s exports: %v", id, err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"dataset_id": id, "deleted": true})
}

// parseFilter builds a FilterState from query parameters.
func parseFilter(r *http.Request) model.FilterState {
	q := r.URL.Query()
	return model.FilterState{
		From:       q.Get("from"),
		To:         q.Get("to"),
		Categories: splitParam(q.Get("category")),
		Regions:    splitParam(q.Get("region")),
		Statuses:   splitParam(q.Get("status")),
		Years:      splitParam(q.Get("year")),
		Bucket:     q.Get("bucket"),
	}
}

func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
