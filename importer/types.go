// Package importer parses asprak roster files (CSV and Excel) and loads
// them into the database, generating 3-letter codes for rows that do not
// bring their own.
package importer

import "time"

// RosterRecord is one parsed input row before code generation.
type RosterRecord struct {
	Line     int    // 1-based line/row number in the source file
	NIM      string `json:"nim"`
	FullName string `json:"nama_lengkap"`
	Angkatan int    `json:"angkatan"`
	Code     string `json:"kode,omitempty"` // explicit code, optional
}

// RowOutcome reports what happened to one input row, including the rule
// that produced its code so import previews can show provenance.
type RowOutcome struct {
	Line     int    `json:"line"`
	NIM      string `json:"nim"`
	FullName string `json:"nama_lengkap"`
	Code     string `json:"kode"`
	Rule     string `json:"rule"`
	Error    string `json:"error,omitempty"`
}

// ImportResult summarizes a roster import.
type ImportResult struct {
	Total     int           `json:"total"`
	Created   int           `json:"created"`
	Updated   int           `json:"updated"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Errors    []string      `json:"errors"`
	Rows      []RowOutcome  `json:"rows"`
	Started   time.Time     `json:"started"`
	Completed time.Time     `json:"completed"`
	Duration  time.Duration `json:"duration"`
}
