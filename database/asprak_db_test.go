package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *AsprakDB {
	t.Helper()
	db, err := NewAsprakDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetAsprak(t *testing.T) {
	db := newTestDB(t)

	a := &Asprak{
		NIM:      "1301223344",
		FullName: "BUDI SANTOSO",
		Code:     "BSA",
		CodeRule: "Standard 2.1",
		Angkatan: 2024,
	}
	require.NoError(t, db.CreateAsprak(a))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, StatusActive, a.Status)

	byNIM, err := db.GetAsprakByNIM("1301223344")
	require.NoError(t, err)
	require.NotNil(t, byNIM)
	assert.Equal(t, "BUDI SANTOSO", byNIM.FullName)

	byCode, err := db.GetAsprakByCode("bsa")
	require.NoError(t, err)
	require.NotNil(t, byCode)
	assert.Equal(t, a.ID, byCode.ID)

	missing, err := db.GetAsprakByCode("ZZZ")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDuplicateNIMRejected(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.CreateAsprak(&Asprak{NIM: "1", FullName: "A B", Code: "ABX", Angkatan: 2024}))
	err := db.CreateAsprak(&Asprak{NIM: "1", FullName: "C D", Code: "CDX", Angkatan: 2024})
	assert.Error(t, err)
}

func TestActiveCodeUniqueness(t *testing.T) {
	db := newTestDB(t)

	first := &Asprak{NIM: "1", FullName: "A B", Code: "ABX", Angkatan: 2024}
	require.NoError(t, db.CreateAsprak(first))

	// same code on a second active row must be rejected by the partial index
	err := db.CreateAsprak(&Asprak{NIM: "2", FullName: "C D", Code: "ABX", Angkatan: 2024})
	assert.Error(t, err)

	// once the holder is expired the code becomes assignable again
	require.NoError(t, db.ExpireAsprakCode(first.ID, "2"))
	err = db.CreateAsprak(&Asprak{NIM: "2", FullName: "C D", Code: "ABX", Angkatan: 2024})
	assert.NoError(t, err)
}

func TestGetActiveCodesExcludesExpired(t *testing.T) {
	db := newTestDB(t)

	a := &Asprak{NIM: "1", FullName: "A B", Code: "ABX", Angkatan: 2018}
	b := &Asprak{NIM: "2", FullName: "C D", Code: "CDX", Angkatan: 2024}
	require.NoError(t, db.CreateAsprak(a))
	require.NoError(t, db.CreateAsprak(b))

	codes, err := db.GetActiveCodes()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"ABX": true, "CDX": true}, codes)

	require.NoError(t, db.ExpireAsprakCode(a.ID, "2"))
	codes, err = db.GetActiveCodes()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"CDX": true}, codes)

	// the expired row keeps its code for the historical record
	expired, err := db.GetAsprakByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "ABX", expired.Code)
	assert.Equal(t, StatusExpired, expired.Status)
	assert.Equal(t, "2", expired.DisplacedBy)
}

func TestExpireAsprakCodeRequiresActiveRow(t *testing.T) {
	db := newTestDB(t)
	assert.Error(t, db.ExpireAsprakCode("no-such-id", "2"))
}

func TestListAspraksFilters(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.CreateAsprak(&Asprak{NIM: "1", FullName: "BUDI SANTOSO", Code: "BSA", Angkatan: 2022}))
	require.NoError(t, db.CreateAsprak(&Asprak{NIM: "2", FullName: "ANDI WIJAYA", Code: "ANW", Angkatan: 2024}))
	require.NoError(t, db.CreateAsprak(&Asprak{NIM: "3", FullName: "CITRA DEWI", Code: "CDE", Angkatan: 2024}))

	all, total, err := db.ListAspraks(AsprakFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, all, 3)
	// newest cohort first, then by name
	assert.Equal(t, "ANDI WIJAYA", all[0].FullName)

	byYear, total, err := db.ListAspraks(AsprakFilter{Angkatan: 2024})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, byYear, 2)

	byRange, _, err := db.ListAspraks(AsprakFilter{AngkatanFrom: 2023})
	require.NoError(t, err)
	assert.Len(t, byRange, 2)

	bySearch, _, err := db.ListAspraks(AsprakFilter{Search: "BUDI"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "1", bySearch[0].NIM)

	limited, total, err := db.ListAspraks(AsprakFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, limited, 2)
}

func TestUpdateAndDeleteAsprak(t *testing.T) {
	db := newTestDB(t)

	a := &Asprak{NIM: "1", FullName: "BUDI", Code: "BUD", Angkatan: 2024}
	require.NoError(t, db.CreateAsprak(a))

	a.FullName = "BUDI SANTOSO"
	a.Code = "BSA"
	require.NoError(t, db.UpdateAsprak(a))

	got, err := db.GetAsprakByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "BUDI SANTOSO", got.FullName)
	assert.Equal(t, "BSA", got.Code)

	require.NoError(t, db.DeleteAsprak(a.ID))
	gone, err := db.GetAsprakByID(a.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.Error(t, db.DeleteAsprak(a.ID))
}

func TestGetStats(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.CreateAsprak(&Asprak{NIM: "1", FullName: "A B", Code: "ABX", Angkatan: 2022}))
	b := &Asprak{NIM: "2", FullName: "C D", Code: "CDX", Angkatan: 2024}
	require.NoError(t, db.CreateAsprak(b))
	require.NoError(t, db.ExpireAsprakCode(b.ID, "1"))

	stats, err := db.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 1, stats.PerAngkatan[2022])
	assert.Equal(t, 1, stats.PerAngkatan[2024])
}

func TestSeedFakeAspraks(t *testing.T) {
	db := newTestDB(t)

	created, err := db.SeedFakeAspraks(25, 2025, 1)
	require.NoError(t, err)
	assert.Greater(t, created, 0)

	codes, err := db.GetActiveCodes()
	require.NoError(t, err)
	assert.Len(t, codes, created)
}
