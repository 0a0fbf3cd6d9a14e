package importer

import (
	"fmt"
	"log"
	"strings"
	"time"

	"asprakserver/codegen"
	"asprakserver/database"
)

// RosterImporter loads parsed roster records into the database, resolving
// codes through the batch generator and the conflict policy.
type RosterImporter struct {
	db                *database.AsprakDB
	activeWindowYears int
}

// NewRosterImporter creates an importer bound to the roster database.
// activeWindowYears is the recycling window from configuration.
func NewRosterImporter(db *database.AsprakDB, activeWindowYears int) *RosterImporter {
	return &RosterImporter{db: db, activeWindowYears: activeWindowYears}
}

// ImportRoster imports records in file order. currentYear is passed in so
// the conflict policy stays reproducible.
//
// Rows with an explicit code are checked against the conflict policy
// first: an active holder blocks the row (it is skipped with an error),
// an inactive holder is marked for displacement. All remaining rows then
// go through the batch generator in one call, which guarantees codes are
// unique within the file and against the stored active set. The marked
// holder is only expired once its code is actually claimed, right before
// the claiming row is written, so a row that ends up with a different
// code (or none) never displaces anyone. Per-row failures never abort
// the rest of the import.
func (ri *RosterImporter) ImportRoster(records []RosterRecord, currentYear int) (*ImportResult, error) {
	result := &ImportResult{
		Total:   len(records),
		Errors:  make([]string, 0),
		Rows:    make([]RowOutcome, len(records)),
		Started: time.Now(),
	}

	used, err := ri.db.GetActiveCodes()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active codes: %w", err)
	}

	blocked := make([]bool, len(records))

	// pendingRecycle marks an inactive holder whose code a row wants to
	// claim. The expiry is deferred until the claim actually lands.
	type pendingRecycle struct {
		ownerID  string
		ownerNIM string
		code     string
	}
	pending := make(map[int]pendingRecycle)

	// Resolve explicit-code claims against current holders before any
	// generation happens.
	for i, rec := range records {
		code := strings.ToUpper(strings.TrimSpace(rec.Code))
		if code == "" || !codegen.IsValidCode(code) {
			continue
		}

		owner, err := ri.db.GetAsprakByCode(code)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			continue
		}

		assessment := codegen.AssessConflict(toOwner(owner), rec.NIM, currentYear, ri.activeWindowYears)
		switch {
		case assessment.HasConflict:
			msg := codegen.ConflictErrorMessage(code, assessment.ExistingOwner)
			result.Rows[i] = RowOutcome{Line: rec.Line, NIM: rec.NIM, FullName: rec.FullName, Error: msg}
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rec.Line, msg))
			result.Skipped++
			blocked[i] = true
		case assessment.CanRecycle:
			pending[i] = pendingRecycle{ownerID: owner.ID, ownerNIM: owner.NIM, code: code}
			delete(used, code)
		default:
			// same person re-importing their own code; free it so the
			// claims pass can hand it back
			delete(used, code)
		}
	}

	// One batch call over the surviving rows keeps the in-file uniqueness
	// guarantee of the generator.
	batchRows := make([]codegen.BatchRow, 0, len(records))
	batchIdx := make([]int, 0, len(records))
	for i, rec := range records {
		if blocked[i] {
			continue
		}
		batchRows = append(batchRows, codegen.BatchRow{FullName: rec.FullName, Code: rec.Code})
		batchIdx = append(batchIdx, i)
	}
	results := codegen.GenerateBatch(batchRows, used)

	logInterval := 100
	if len(records) > 1000 {
		logInterval = 500
	}

	for bi, genResult := range results {
		i := batchIdx[bi]
		rec := records[i]
		outcome := RowOutcome{
			Line:     rec.Line,
			NIM:      rec.NIM,
			FullName: rec.FullName,
			Code:     genResult.Code,
			Rule:     genResult.Rule.Label(),
		}

		if genResult.Code == "" {
			outcome.Error = "no code could be generated; assign one manually"
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s (%s): %s", rec.Line, rec.FullName, rec.NIM, outcome.Error))
			result.Failed++
			result.Rows[i] = outcome
			continue
		}

		// Displace the marked holder only when this row really claimed
		// their code; a duplicate in-file claim falls through to a
		// generated code and must leave the holder alone.
		if p, ok := pending[i]; ok && genResult.Code == p.code {
			if err := ri.db.ExpireAsprakCode(p.ownerID, rec.NIM); err != nil {
				outcome.Error = fmt.Sprintf("failed to displace owner of %s: %v", p.code, err)
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s (%s): %s", rec.Line, rec.FullName, rec.NIM, outcome.Error))
				result.Failed++
				result.Rows[i] = outcome
				continue
			}
			log.Printf("Recycled code %s from inactive asprak %s for %s", p.code, p.ownerNIM, rec.NIM)
		}

		if err := ri.upsertAsprak(rec, genResult, result); err != nil {
			outcome.Error = err.Error()
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s (%s): %v", rec.Line, rec.FullName, rec.NIM, err))
			result.Failed++
		}
		result.Rows[i] = outcome

		if (bi+1)%logInterval == 0 {
			log.Printf("Imported %d/%d rows (%.1f%%)", bi+1, len(results), float64(bi+1)/float64(len(results))*100)
		}
	}

	result.Completed = time.Now()
	result.Duration = result.Completed.Sub(result.Started)

	log.Printf("Roster import completed: %d created, %d updated, %d failed, %d skipped of %d",
		result.Created, result.Updated, result.Failed, result.Skipped, result.Total)

	return result, nil
}

// upsertAsprak writes one resolved row, keyed by NIM.
func (ri *RosterImporter) upsertAsprak(rec RosterRecord, genResult codegen.Result, result *ImportResult) error {
	existing, err := ri.db.GetAsprakByNIM(rec.NIM)
	if err != nil {
		return err
	}

	if existing != nil {
		existing.FullName = rec.FullName
		existing.Code = genResult.Code
		existing.CodeRule = genResult.Rule.Label()
		existing.Angkatan = rec.Angkatan
		existing.Status = database.StatusActive
		if err := ri.db.UpdateAsprak(existing); err != nil {
			return err
		}
		result.Updated++
		return nil
	}

	asprak := &database.Asprak{
		NIM:      rec.NIM,
		FullName: rec.FullName,
		Code:     genResult.Code,
		CodeRule: genResult.Rule.Label(),
		Angkatan: rec.Angkatan,
	}
	if err := ri.db.CreateAsprak(asprak); err != nil {
		return err
	}
	result.Created++
	return nil
}

func toOwner(a *database.Asprak) *codegen.Owner {
	return &codegen.Owner{
		ID:       a.ID,
		NIM:      a.NIM,
		FullName: a.FullName,
		Code:     a.Code,
		Angkatan: a.Angkatan,
	}
}
