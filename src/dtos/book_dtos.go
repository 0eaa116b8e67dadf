package dtos

// ImportResult summarizes a bulk catalog import: rows created plus one
// message per skipped row.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
