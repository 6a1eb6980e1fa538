package output

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDataset() *models.Dataset {
	return &models.Dataset{
		GeneratedAt:    "2024-03-01T11:30:45Z",
		SourceWorkbook: "tables.xlsm",
		TableCount:     1,
		Tables: []models.Table{{
			ID:         "eng-water",
			SheetName:  "ENG_Water",
			Fluid:      "Water",
			UnitSystem: "ENG",
			Mode:       models.ModeSatT,
			Columns:    models.Columns{"T": 0, "P": 1, "vf": 2},
			Properties: []string{"vf"},
			RowCount:   2,
			Rows: []models.Record{
				{"T": 32, "P": 0.0885, "vf": 0.01602},
				{"T": 35, "P": 0.0999},
			},
			Inputs: map[string]models.Range{"T": {Min: 32, Max: 35}},
		}},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleDataset(), false)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(data, &doc))
	for _, key := range []string{"generated_at", "source_workbook", "table_count", "tables"} {
		assert.Contains(t, doc, key)
	}

	tables := doc["tables"].([]interface{})
	table := tables[0].(map[string]interface{})
	for _, key := range []string{"id", "sheet_name", "fluid", "unit_system", "mode", "columns", "properties", "row_count", "rows", "inputs"} {
		assert.Contains(t, table, key)
	}
	assert.Equal(t, "sat-T", table["mode"])
	assert.Equal(t, map[string]interface{}{"min": 32.0, "max": 35.0}, table["inputs"].(map[string]interface{})["T"])

	// map keys are sorted, so output is stable
	assert.Contains(t, string(data), `{"P":0.0885,"T":32,"vf":0.01602}`)
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(sampleDataset(), true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"generated_at\": \"2024-03-01T11:30:45Z\"")
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleDataset())
	require.NoError(t, err)

	var ds models.Dataset
	require.NoError(t, yaml.Unmarshal(data, &ds))
	assert.Equal(t, *sampleDataset(), ds)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"sqlite3", FormatSQLite, false},
		{"csv", FormatAuto, true},
	}

	for _, tt := range tests {
		f, err := ParseFormat(tt.input)
		assert.Equal(t, tt.expected, f, tt.input)
		assert.Equal(t, tt.wantErr, err != nil, tt.input)
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("data/thermo_tables.json"))
	assert.Equal(t, FormatJSON, DetectFormat("out"))
	assert.Equal(t, FormatYAML, DetectFormat("out.YAML"))
	assert.Equal(t, FormatSQLite, DetectFormat("out.db"))
	assert.Equal(t, FormatSQLite, DetectFormat("out.sqlite"))
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(dir, "data", "nested", "thermo_tables.json")
		require.NoError(t, Write(path, sampleDataset(), FormatAuto, true))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var ds models.Dataset
		require.NoError(t, jsoniter.Unmarshal(data, &ds))
		assert.Equal(t, *sampleDataset(), ds)
	})

	t.Run("explicit format wins over extension", func(t *testing.T) {
		path := filepath.Join(dir, "tables.out")
		require.NoError(t, Write(path, sampleDataset(), FormatYAML, false))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "source_workbook: tables.xlsm")
	})
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermo.db")
	require.NoError(t, Write(path, sampleDataset(), FormatAuto, false))
	// rewriting replaces the previous database
	require.NoError(t, WriteSQLite(path, sampleDataset()))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT table_count FROM dataset`).Scan(&count))
	assert.Equal(t, 1, count)

	var fluid, mode, props string
	var rowCount int
	require.NoError(t, db.QueryRow(`SELECT fluid, mode, row_count, properties FROM tables WHERE id = ?`, "eng-water").
		Scan(&fluid, &mode, &rowCount, &props))
	assert.Equal(t, "Water", fluid)
	assert.Equal(t, "sat-T", mode)
	assert.Equal(t, 2, rowCount)
	assert.Equal(t, "vf", props)

	var col int
	require.NoError(t, db.QueryRow(`SELECT col FROM table_columns WHERE table_id = ? AND key = ?`, "eng-water", "vf").Scan(&col))
	assert.Equal(t, 2, col)

	var lo, hi float64
	require.NoError(t, db.QueryRow(`SELECT min, max FROM table_inputs WHERE table_id = ? AND key = 'T'`, "eng-water").Scan(&lo, &hi))
	assert.Equal(t, 32.0, lo)
	assert.Equal(t, 35.0, hi)

	var values int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM table_rows WHERE table_id = ?`, "eng-water").Scan(&values))
	assert.Equal(t, 5, values)

	var vf float64
	require.NoError(t, db.QueryRow(`SELECT value FROM table_rows WHERE table_id = ? AND row_idx = 0 AND key = 'vf'`, "eng-water").Scan(&vf))
	assert.Equal(t, 0.01602, vf)
}
