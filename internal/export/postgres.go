package export

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"salesboard/internal/dataset"
)

// PostgresWriter persists cleaned sales rows to PostgreSQL in their
// canonical shape (date, category, region, status, amount). It is an
// optional sink, enabled by configuring a DSN.
type PostgresWriter struct {
	db        *sql.DB
	datasetID string
}

// NewPostgresWriter opens a connection, runs schema migration, and returns
// a ready writer for one dataset's rows.
func NewPostgresWriter(dsn, datasetID string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db, datasetID: datasetID}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS sales_records (
			id         SERIAL PRIMARY KEY,
			dataset_id TEXT          NOT NULL,
			sale_date  DATE,
			category   TEXT          NOT NULL DEFAULT '',
			region     TEXT          NOT NULL DEFAULT '',
			status     TEXT          NOT NULL DEFAULT '',
			amount     NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_sales_dataset  ON sales_records(dataset_id);
		CREATE INDEX IF NOT EXISTS idx_sales_date     ON sales_records(sale_date);
		CREATE INDEX IF NOT EXISTS idx_sales_category ON sales_records(category);
	`)
	return err
}

// Write batch-inserts the dataset view, replacing any rows previously
// stored for the same dataset ID.
func (pw *PostgresWriter) Write(ds *dataset.Dataset, rows []int) error {
	if _, err := pw.db.Exec(`DELETE FROM sales_records WHERE dataset_id = $1`, pw.datasetID); err != nil {
		return fmt.Errorf("postgres: clear dataset: %w", err)
	}

	if rows == nil {
		rows = make([]int, ds.NumRows())
		for i := range rows {
			rows[i] = i
		}
	}

	const batchSize = 100
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := pw.insertBatch(ds, rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(ds *dataset.Dataset, batch []int) error {
	schema := ds.Schema
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*6)

	for idx, row := range batch {
		base := idx * 6
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6))

		var saleDate interface{}
		if schema.DateCol >= 0 {
			if t, ok := ds.Date(row, schema.DateCol); ok {
				saleDate = t.Format(dataset.DateLayout)
			}
		}
		amount := 0.0
		if v, ok := ds.Amount(row); ok {
			amount = v
		}
		valueArgs = append(valueArgs,
			pw.datasetID,
			saleDate,
			cellOrEmpty(ds, row, schema.ProductCol),
			cellOrEmpty(ds, row, schema.RegionCol),
			cellOrEmpty(ds, row, schema.StatusCol),
			amount,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO sales_records (dataset_id, sale_date, category, region, status, amount)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

// Close closes the database connection.
func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

func cellOrEmpty(ds *dataset.Dataset, row, col int) string {
	if col < 0 {
		return ""
	}
	return ds.Cell(row, col)
}
