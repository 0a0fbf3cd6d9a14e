package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Asprak statuses. Expired rows keep their historical code but leave the
// active-code set, which is how a recycled code becomes assignable again.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// Asprak is one lab-assistant roster row.
type Asprak struct {
	ID          string    `json:"id"`
	NIM         string    `json:"nim"`
	FullName    string    `json:"nama_lengkap"`
	Code        string    `json:"kode"`
	CodeRule    string    `json:"kode_rule"`
	Angkatan    int       `json:"angkatan"`
	Status      string    `json:"status"`
	DisplacedBy string    `json:"displaced_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AsprakFilter narrows ListAspraks results. Zero values mean "no filter".
type AsprakFilter struct {
	Status       string // active | expired
	Angkatan     int
	AngkatanFrom int
	AngkatanTo   int
	Search       string // substring match on name, NIM or code
	Limit        int
	Offset       int
}

const asprakColumns = `id, nim, nama_lengkap, kode, kode_rule, angkatan, status, displaced_by, created_at, updated_at`

func scanAsprak(row interface{ Scan(...any) error }) (*Asprak, error) {
	var a Asprak
	err := row.Scan(&a.ID, &a.NIM, &a.FullName, &a.Code, &a.CodeRule,
		&a.Angkatan, &a.Status, &a.DisplacedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAsprak inserts a new roster row. An empty ID gets a fresh UUID.
func (db *AsprakDB) CreateAsprak(a *Asprak) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = StatusActive
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO aspraks (id, nim, nama_lengkap, kode, kode_rule, angkatan, status, displaced_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.conn.Exec(query, a.ID, a.NIM, a.FullName, a.Code, a.CodeRule,
		a.Angkatan, a.Status, a.DisplacedBy, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create asprak: %w", err)
	}
	return nil
}

// UpdateAsprak rewrites the mutable fields of an existing row by ID.
func (db *AsprakDB) UpdateAsprak(a *Asprak) error {
	a.UpdatedAt = time.Now()
	query := `
		UPDATE aspraks
		SET nim = ?, nama_lengkap = ?, kode = ?, kode_rule = ?, angkatan = ?,
		    status = ?, displaced_by = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := db.conn.Exec(query, a.NIM, a.FullName, a.Code, a.CodeRule,
		a.Angkatan, a.Status, a.DisplacedBy, a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update asprak: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("asprak %s not found", a.ID)
	}
	return nil
}

// DeleteAsprak removes a row by ID.
func (db *AsprakDB) DeleteAsprak(id string) error {
	result, err := db.conn.Exec(`DELETE FROM aspraks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asprak: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("asprak %s not found", id)
	}
	return nil
}

// GetAsprakByID returns a row by ID, or nil when absent.
func (db *AsprakDB) GetAsprakByID(id string) (*Asprak, error) {
	query := fmt.Sprintf(`SELECT %s FROM aspraks WHERE id = ?`, asprakColumns)
	a, err := scanAsprak(db.conn.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asprak by id: %w", err)
	}
	return a, nil
}

// GetAsprakByNIM returns a row by national student ID, or nil when absent.
func (db *AsprakDB) GetAsprakByNIM(nim string) (*Asprak, error) {
	query := fmt.Sprintf(`SELECT %s FROM aspraks WHERE nim = ?`, asprakColumns)
	a, err := scanAsprak(db.conn.QueryRow(query, nim))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asprak by nim: %w", err)
	}
	return a, nil
}

// GetAsprakByCode returns the ACTIVE holder of a code, or nil when the
// code is free. Expired rows never own a code.
func (db *AsprakDB) GetAsprakByCode(code string) (*Asprak, error) {
	query := fmt.Sprintf(`SELECT %s FROM aspraks WHERE kode = ? AND status = ?`, asprakColumns)
	a, err := scanAsprak(db.conn.QueryRow(query, strings.ToUpper(code), StatusActive))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asprak by code: %w", err)
	}
	return a, nil
}

// GetActiveCodes returns every code currently held by an active row,
// uppercased. This is the used set the generator checks against; expired
// codes are deliberately excluded.
func (db *AsprakDB) GetActiveCodes() (map[string]bool, error) {
	rows, err := db.conn.Query(`SELECT kode FROM aspraks WHERE status = ?`, StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query active codes: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan code: %w", err)
		}
		codes[strings.ToUpper(code)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate active codes: %w", err)
	}
	return codes, nil
}

// ExpireAsprakCode displaces the current holder of a code: the row keeps
// its historical code for the record but switches to expired status, so
// the code leaves the active set and becomes assignable.
func (db *AsprakDB) ExpireAsprakCode(id string, displacedByNIM string) error {
	query := `
		UPDATE aspraks
		SET status = ?, displaced_by = ?, updated_at = ?
		WHERE id = ? AND status = ?
	`
	result, err := db.conn.Exec(query, StatusExpired, displacedByNIM, time.Now(), id, StatusActive)
	if err != nil {
		return fmt.Errorf("failed to expire asprak code: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("active asprak %s not found", id)
	}
	return nil
}

// ListAspraks returns roster rows matching the filter, newest cohort first.
func (db *AsprakDB) ListAspraks(filter AsprakFilter) ([]Asprak, int, error) {
	var conditions []string
	var args []any

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Angkatan > 0 {
		conditions = append(conditions, "angkatan = ?")
		args = append(args, filter.Angkatan)
	}
	if filter.AngkatanFrom > 0 {
		conditions = append(conditions, "angkatan >= ?")
		args = append(args, filter.AngkatanFrom)
	}
	if filter.AngkatanTo > 0 {
		conditions = append(conditions, "angkatan <= ?")
		args = append(args, filter.AngkatanTo)
	}
	if filter.Search != "" {
		conditions = append(conditions, "(nama_lengkap LIKE ? OR nim LIKE ? OR kode LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, strings.ToUpper(filter.Search)+"%")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM aspraks" + where
	if err := db.conn.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count aspraks: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM aspraks%s ORDER BY angkatan DESC, nama_lengkap ASC`, asprakColumns, where)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list aspraks: %w", err)
	}
	defer rows.Close()

	var aspraks []Asprak
	for rows.Next() {
		a, err := scanAsprak(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan asprak: %w", err)
		}
		aspraks = append(aspraks, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate aspraks: %w", err)
	}

	return aspraks, total, nil
}

// Stats summarizes the roster for the dashboard endpoint.
type Stats struct {
	Total       int         `json:"total"`
	Active      int         `json:"active"`
	Expired     int         `json:"expired"`
	PerAngkatan map[int]int `json:"per_angkatan"`
}

// GetStats computes roster totals and the per-cohort breakdown.
func (db *AsprakDB) GetStats() (*Stats, error) {
	stats := &Stats{PerAngkatan: make(map[int]int)}

	query := `SELECT status, COUNT(*) FROM aspraks GROUP BY status`
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		stats.Total += count
		switch status {
		case StatusActive:
			stats.Active = count
		case StatusExpired:
			stats.Expired = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	cohortRows, err := db.conn.Query(`SELECT angkatan, COUNT(*) FROM aspraks GROUP BY angkatan`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cohort counts: %w", err)
	}
	defer cohortRows.Close()
	for cohortRows.Next() {
		var angkatan, count int
		if err := cohortRows.Scan(&angkatan, &count); err != nil {
			return nil, fmt.Errorf("failed to scan cohort count: %w", err)
		}
		stats.PerAngkatan[angkatan] = count
	}
	if err := cohortRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cohort counts: %w", err)
	}

	return stats, nil
}
