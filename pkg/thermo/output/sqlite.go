package output

import (
	"database/sql"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{
	`CREATE TABLE dataset (generated_at TEXT, source_workbook TEXT, table_count INTEGER)`,
	`CREATE TABLE tables (
		id TEXT PRIMARY KEY,
		sheet_name TEXT NOT NULL,
		fluid TEXT NOT NULL,
		unit_system TEXT NOT NULL,
		mode TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		properties TEXT NOT NULL
	)`,
	`CREATE TABLE table_columns (table_id TEXT NOT NULL, key TEXT NOT NULL, col INTEGER NOT NULL)`,
	`CREATE TABLE table_inputs (table_id TEXT NOT NULL, key TEXT NOT NULL, min REAL NOT NULL, max REAL NOT NULL)`,
	`CREATE TABLE table_rows (table_id TEXT NOT NULL, row_idx INTEGER NOT NULL, key TEXT NOT NULL, value REAL NOT NULL)`,
	`CREATE INDEX idx_rows_table_key ON table_rows(table_id, key)`,
}

// WriteSQLite writes ds to a fresh SQLite database at path.
// Rows are stored in long form, one (row_idx, key, value) triple per value.
func WriteSQLite(path string, ds *models.Dataset) (err error) {
	_ = os.Remove(path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()

	for _, stmt := range sqliteSchema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := insertDataset(tx, ds); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return multierror.Append(err, rerr)
		}
		return err
	}
	return tx.Commit()
}

func insertDataset(tx *sql.Tx, ds *models.Dataset) error {
	if _, err := tx.Exec(`INSERT INTO dataset (generated_at, source_workbook, table_count) VALUES (?, ?, ?)`,
		ds.GeneratedAt, ds.SourceWorkbook, ds.TableCount); err != nil {
		return err
	}

	tableStmt, err := tx.Prepare(`INSERT INTO tables (id, sheet_name, fluid, unit_system, mode, row_count, properties) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer tableStmt.Close()
	colStmt, err := tx.Prepare(`INSERT INTO table_columns (table_id, key, col) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer colStmt.Close()
	inputStmt, err := tx.Prepare(`INSERT INTO table_inputs (table_id, key, min, max) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer inputStmt.Close()
	rowStmt, err := tx.Prepare(`INSERT INTO table_rows (table_id, row_idx, key, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer rowStmt.Close()

	for _, t := range ds.Tables {
		if _, err := tableStmt.Exec(t.ID, t.SheetName, t.Fluid, t.UnitSystem, string(t.Mode), t.RowCount, strings.Join(t.Properties, ",")); err != nil {
			return err
		}
		for _, key := range sortedKeys(t.Columns) {
			if _, err := colStmt.Exec(t.ID, key, t.Columns[key]); err != nil {
				return err
			}
		}
		for key, r := range t.Inputs {
			if _, err := inputStmt.Exec(t.ID, key, r.Min, r.Max); err != nil {
				return err
			}
		}
		for i, rec := range t.Rows {
			for key, value := range rec {
				if _, err := rowStmt.Exec(t.ID, i, key, value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func sortedKeys(cols models.Columns) []string {
	keys := make([]string, 0, len(cols))
	for key := range cols {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
