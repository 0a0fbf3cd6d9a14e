package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asprakserver/database"
)

func newTestImporter(t *testing.T) (*RosterImporter, *database.AsprakDB) {
	t.Helper()
	db, err := database.NewAsprakDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRosterImporter(db, 6), db
}

func TestImportRosterCreatesRows(t *testing.T) {
	ri, db := newTestImporter(t)

	records := []RosterRecord{
		{Line: 2, NIM: "1", FullName: "BUDI SANTOSO", Angkatan: 2024},
		{Line: 3, NIM: "2", FullName: "ANDI WIJAYA", Angkatan: 2024, Code: "ANW"},
	}
	result, err := ri.ImportRoster(records, 2025)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Created)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Errors)

	budi, err := db.GetAsprakByNIM("1")
	require.NoError(t, err)
	assert.Equal(t, "BUS", budi.Code)
	assert.Equal(t, "Standard 2.1", budi.CodeRule)

	andi, err := db.GetAsprakByNIM("2")
	require.NoError(t, err)
	assert.Equal(t, "ANW", andi.Code)
	assert.Equal(t, "Provided (CSV)", andi.CodeRule)
}

func TestImportRosterUpdatesExistingByNIM(t *testing.T) {
	ri, db := newTestImporter(t)

	require.NoError(t, db.CreateAsprak(&database.Asprak{NIM: "1", FullName: "BUDI", Code: "BUD", Angkatan: 2023}))

	result, err := ri.ImportRoster([]RosterRecord{
		{Line: 2, NIM: "1", FullName: "BUDI SANTOSO", Angkatan: 2024, Code: "BUD"},
	}, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Zero(t, result.Created)

	updated, err := db.GetAsprakByNIM("1")
	require.NoError(t, err)
	assert.Equal(t, "BUDI SANTOSO", updated.FullName)
	assert.Equal(t, "BUD", updated.Code)
	assert.Equal(t, 2024, updated.Angkatan)
}

func TestImportRosterActiveOwnerBlocksExplicitCode(t *testing.T) {
	ri, db := newTestImporter(t)

	require.NoError(t, db.CreateAsprak(&database.Asprak{NIM: "1", FullName: "BUDI SANTOSO", Code: "XYZ", Angkatan: 2024}))

	result, err := ri.ImportRoster([]RosterRecord{
		{Line: 2, NIM: "2", FullName: "CITRA DEWI", Angkatan: 2025, Code: "XYZ"},
	}, 2025)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Zero(t, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "CONFLICT")
	assert.Contains(t, result.Errors[0], "BUDI SANTOSO")

	// the blocked row was not written
	missing, err := db.GetAsprakByNIM("2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestImportRosterRecyclesInactiveOwnerCode(t *testing.T) {
	ri, db := newTestImporter(t)

	old := &database.Asprak{NIM: "1", FullName: "BUDI SANTOSO", Code: "XYZ", Angkatan: 2015}
	require.NoError(t, db.CreateAsprak(old))

	result, err := ri.ImportRoster([]RosterRecord{
		{Line: 2, NIM: "2", FullName: "CITRA DEWI", Angkatan: 2025, Code: "XYZ"},
	}, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Zero(t, result.Skipped)

	// the new row owns the code and the old holder is expired
	citra, err := db.GetAsprakByNIM("2")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", citra.Code)

	displaced, err := db.GetAsprakByID(old.ID)
	require.NoError(t, err)
	assert.Equal(t, database.StatusExpired, displaced.Status)
	assert.Equal(t, "2", displaced.DisplacedBy)
}

func TestImportRosterDuplicateClaimsDisplaceOwnerOnce(t *testing.T) {
	ri, db := newTestImporter(t)

	old := &database.Asprak{NIM: "1", FullName: "BUDI SANTOSO", Code: "XYZ", Angkatan: 2015}
	require.NoError(t, db.CreateAsprak(old))

	// both rows want the inactive owner's code; only the first claim lands
	result, err := ri.ImportRoster([]RosterRecord{
		{Line: 2, NIM: "2", FullName: "CITRA DEWI", Angkatan: 2025, Code: "XYZ"},
		{Line: 3, NIM: "3", FullName: "DIAN PUTRI", Angkatan: 2025, Code: "XYZ"},
	}, 2025)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Errors)

	citra, err := db.GetAsprakByNIM("2")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", citra.Code)

	// the loser of the claim got a generated code instead
	dian, err := db.GetAsprakByNIM("3")
	require.NoError(t, err)
	assert.NotEqual(t, "XYZ", dian.Code)
	assert.NotEmpty(t, dian.Code)

	// the holder was displaced exactly once, by the winning claim
	displaced, err := db.GetAsprakByID(old.ID)
	require.NoError(t, err)
	assert.Equal(t, database.StatusExpired, displaced.Status)
	assert.Equal(t, "2", displaced.DisplacedBy)
}

func TestImportRosterBlockedRowLeavesHolderUntouched(t *testing.T) {
	ri, db := newTestImporter(t)

	inactive := &database.Asprak{NIM: "1", FullName: "BUDI SANTOSO", Code: "XYZ", Angkatan: 2015}
	require.NoError(t, db.CreateAsprak(inactive))
	active := &database.Asprak{NIM: "2", FullName: "CITRA DEWI", Code: "CDE", Angkatan: 2024}
	require.NoError(t, db.CreateAsprak(active))

	// the row is blocked by the active owner of CDE; no displacement
	// may happen anywhere in the roster
	result, err := ri.ImportRoster([]RosterRecord{
		{Line: 2, NIM: "3", FullName: "DIAN PUTRI", Angkatan: 2025, Code: "CDE"},
	}, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)

	// neither holder changed state
	stillInactive, err := db.GetAsprakByID(inactive.ID)
	require.NoError(t, err)
	assert.Equal(t, database.StatusActive, stillInactive.Status)
	stillActive, err := db.GetAsprakByID(active.ID)
	require.NoError(t, err)
	assert.Equal(t, database.StatusActive, stillActive.Status)
}

func TestImportRosterFailureIsolation(t *testing.T) {
	ri, db := newTestImporter(t)

	records := []RosterRecord{
		{Line: 2, NIM: "1", FullName: "BUDI", Angkatan: 2024},
		{Line: 3, NIM: "2", FullName: "12345", Angkatan: 2024}, // unusable name
		{Line: 4, NIM: "3", FullName: "CITRA DEWI", Angkatan: 2024},
	}
	result, err := ri.ImportRoster(records, 2025)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Row 3")
	assert.Equal(t, "FAILED", result.Rows[1].Rule)

	citra, err := db.GetAsprakByNIM("3")
	require.NoError(t, err)
	assert.NotNil(t, citra)
}

func TestImportRosterBatchUniqueness(t *testing.T) {
	ri, db := newTestImporter(t)

	records := []RosterRecord{
		{Line: 2, NIM: "1", FullName: "BUDI SANTOSO", Angkatan: 2024},
		{Line: 3, NIM: "2", FullName: "BUDI SANTORO", Angkatan: 2024},
		{Line: 4, NIM: "3", FullName: "BUDI SANTOS", Angkatan: 2024},
	}
	result, err := ri.ImportRoster(records, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)

	codes, err := db.GetActiveCodes()
	require.NoError(t, err)
	assert.Len(t, codes, 3)
}

func TestImportRosterRowOutcomesCarryProvenance(t *testing.T) {
	ri, _ := newTestImporter(t)

	result, err := ri.ImportRoster([]RosterRecord{
		{Line: 2, NIM: "1", FullName: "BUDI", Angkatan: 2024},
		{Line: 3, NIM: "2", FullName: "AGUS", Angkatan: 2024, Code: "AGX"},
	}, 2025)
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, "Standard 1.1", result.Rows[0].Rule)
	assert.Equal(t, "Provided (CSV)", result.Rows[1].Rule)
}
