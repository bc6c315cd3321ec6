package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"salesboard/internal/dataset"
	"salesboard/internal/export"
	"salesboard/internal/model"
	"salesboard/internal/store"
	"salesboard/pkg/utils"
)

// Service runs the ingestion-and-KPI pipeline: read tabular input, clean it,
// compute the unfiltered summary, and record the result in the registry and
// the metadata store. One upload is one synchronous run to completion.
type Service struct {
	logger   *utils.Logger
	cleaner  *Cleaner
	registry *Registry
	output   *utils.OutputManager
}

// NewService creates a pipeline Service. output may be nil to skip writing
// cleaned CSV artifacts to disk.
func NewService(logger *utils.Logger, cleaner *Cleaner, registry *Registry, output *utils.OutputManager) *Service {
	return &Service{logger: logger, cleaner: cleaner, registry: registry, output: output}
}

// Registry exposes the dataset registry for read-side handlers.
func (s *Service) Registry() *Registry { return s.registry }

// Process ingests one upload end to end and returns the resulting entry.
// Failures are persisted against the dataset ID before being returned.
func (s *Service) Process(ctx context.Context, id, name, fileName string, r io.Reader) (*Entry, error) {
	start := time.Now()
	s.logger.Info("[pipeline] dataset %s: ingesting %q", id, fileName)

	meta := model.DatasetMeta{
		ID:        id,
		Name:      name,
		Status:    "cleaning",
		CreatedAt: start.UTC(),
		UpdatedAt: start.UTC(),
	}
	if err := store.SaveDataset(meta); err != nil {
		return nil, fmt.Errorf("save dataset metadata: %w", err)
	}

	entry, err := s.run(ctx, id, fileName, r)
	if err != nil {
		store.UpdateDatasetStatus(id, "failed")
		store.SaveDatasetError(id, err)
		s.logger.Error("[pipeline] dataset %s failed: %v", id, err)
		return nil, err
	}

	entry.Meta = meta
	entry.Meta.Status = "ready"
	entry.Meta.Rows = entry.Dataset.NumRows()
	entry.Meta.Columns = entry.Dataset.NumColumns()
	entry.Meta.UpdatedAt = time.Now().UTC()
	s.registry.Put(entry)

	if err := store.UpdateDatasetCounts(id, entry.Meta.Rows, entry.Meta.Columns, "ready", entry.Meta.UpdatedAt); err != nil {
		s.logger.Warn("[pipeline] dataset %s: persist counts: %v", id, err)
	}
	summary := Summarize(entry.Dataset, model.FilterState{})
	if err := store.SaveSummary(id, summary); err != nil {
		s.logger.Warn("[pipeline] dataset %s: persist summary: %v", id, err)
	}
	if s.output != nil {
		if err := s.writeArtifact(id, entry.Dataset); err != nil {
			s.logger.Warn("[pipeline] dataset %s: write cleaned csv: %v", id, err)
		}
	}

	s.logger.Info("[pipeline] dataset %s ready: %d rows, %d columns in %v",
		id, entry.Meta.Rows, entry.Meta.Columns, time.Since(start))
	return entry, nil
}

func (s *Service) run(ctx context.Context, id, fileName string, r io.Reader) (*Entry, error) {
	raw, err := dataset.Read(fileName, r)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned, report, err := s.cleaner.Clean(raw)
	if err != nil {
		return nil, err
	}

	return &Entry{Dataset: cleaned, Report: report}, nil
}

// writeArtifact persists the cleaned dataset as a CSV file under the
// dataset's output directory.
func (s *Service) writeArtifact(id string, ds *dataset.Dataset) error {
	path, err := s.output.FilePath(id, "cleaned.csv")
	if err != nil {
		return err
	}
	w, err := export.NewCSVWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Write(ds, nil)
}
