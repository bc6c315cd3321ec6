package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"salesboard/internal/model"
)

var db *sql.DB

// InitDB opens the SQLite database and creates tables if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	datasetTable := `
	CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		name TEXT,
		status TEXT,
		rows INTEGER,
		columns INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	summaryTable := `
	CREATE TABLE IF NOT EXISTS summaries (
		dataset_id TEXT PRIMARY KEY,
		summary TEXT,
		created_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS dataset_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{datasetTable, summaryTable, errorTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveDataset stores metadata for a newly uploaded dataset.
func SaveDataset(meta model.DatasetMeta) error {
	_, err := db.Exec(
		`INSERT INTO datasets (id, name, status, rows, columns, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.ID, meta.Name, meta.Status, meta.Rows, meta.Columns, meta.CreatedAt, meta.UpdatedAt)
	return err
}

// UpdateDatasetStatus updates the status of a dataset.
func UpdateDatasetStatus(id, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE datasets SET status = ?, updated_at = ? WHERE id = ?`, status, now, id)
	return err
}

// UpdateDatasetCounts records the cleaned row/column counts and status. The
// caller supplies updatedAt so its in-memory metadata matches the stored row.
func UpdateDatasetCounts(id string, rows, columns int, status string, updatedAt time.Time) error {
	_, err := db.Exec(
		`UPDATE datasets SET rows = ?, columns = ?, status = ?, updated_at = ? WHERE id = ?`,
		rows, columns, status, updatedAt, id)
	return err
}

// ListDatasets returns metadata for all datasets, newest first.
func ListDatasets() ([]model.DatasetMeta, error) {
	rows, err := db.Query(
		`SELECT id, name, status, rows, columns, created_at, updated_at FROM datasets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []model.DatasetMeta
	for rows.Next() {
		var m model.DatasetMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Status, &m.Rows, &m.Columns, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// GetDataset fetches metadata for one dataset.
func GetDataset(id string) (model.DatasetMeta, error) {
	var m model.DatasetMeta
	err := db.QueryRow(
		`SELECT id, name, status, rows, columns, created_at, updated_at FROM datasets WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.Status, &m.Rows, &m.Columns, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// DeleteDataset removes a dataset and its stored summary and errors.
func DeleteDataset(id string) error {
	if _, err := db.Exec(`DELETE FROM summaries WHERE dataset_id = ?`, id); err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM dataset_errors WHERE dataset_id = ?`, id); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM datasets WHERE id = ?`, id)
	return err
}

// SaveSummary stores the unfiltered KPI summary snapshot for a dataset.
func SaveSummary(id string, summary model.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.Exec(
		`INSERT INTO summaries (dataset_id, summary, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(dataset_id) DO UPDATE SET summary = excluded.summary, created_at = excluded.created_at`,
		id, payload, now)
	return err
}

// GetSummary fetches the stored unfiltered summary for a dataset.
func GetSummary(id string) (model.Summary, error) {
	var payload string
	var summary model.Summary
	err := db.QueryRow(`SELECT summary FROM summaries WHERE dataset_id = ?`, id).Scan(&payload)
	if err != nil {
		return summary, err
	}
	err = json.Unmarshal([]byte(payload), &summary)
	return summary, err
}

// SaveDatasetError records a pipeline error for a dataset.
func SaveDatasetError(id string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(
		`INSERT INTO dataset_errors (dataset_id, error_message, created_at) VALUES (?, ?, ?)`,
		id, err.Error(), now)
	return e
}

// GetDatasetErrors returns recorded errors for a dataset, newest first.
func GetDatasetErrors(id string) ([]map[string]interface{}, error) {
	rows, err := db.Query(
		`SELECT error_message, created_at FROM dataset_errors WHERE dataset_id = ? ORDER BY created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errors []map[string]interface{}
	for rows.Next() {
		var msg string
		var createdAt time.Time
		if err := rows.Scan(&msg, &createdAt); err != nil {
			return nil, err
		}
		errors = append(errors, map[string]interface{}{
			"message":   msg,
			"createdAt": createdAt,
		})
	}
	return errors, rows.Err()
}
