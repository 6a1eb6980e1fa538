package models

// Dataset is the document produced from one workbook.
type Dataset struct {
	// GeneratedAt is an ISO-8601 UTC timestamp truncated to seconds.
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	// SourceWorkbook is the workbook file name (no path).
	SourceWorkbook string `json:"source_workbook" yaml:"source_workbook"`
	// TableCount is len(Tables).
	TableCount int `json:"table_count" yaml:"table_count"`
	// Tables are ordered by fluid then sheet name, case-insensitive.
	Tables []Table `json:"tables" yaml:"tables"`
}
