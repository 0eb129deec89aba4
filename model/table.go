package model

// DatasetIndexPage is the model for the dataset index page: the shared page
// furniture plus the index rendered as a fixed-column table
type DatasetIndexPage struct {
	Page
	Data Table `json:"data"`
}

// Table is a table with one header row and one body row per dataset
type Table struct {
	Columns []Column   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// Column is a single header cell
type Column struct {
	Label string `json:"label"`
}

// TableRow is one dataset in the table. The first cell links Name to URI;
// Cells holds the pre-formatted display values for the remaining columns, in
// the same order as Columns
type TableRow struct {
	Name  string   `json:"name"`
	URI   string   `json:"uri"`
	Cells []string `json:"cells"`
}
