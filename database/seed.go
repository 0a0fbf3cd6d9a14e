package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"asprakserver/codegen"
)

// SeedFakeAspraks fills the roster with generated assistants for local
// development and load testing. Codes go through the real batch generator
// so the seeded data has realistic provenance.
func (db *AsprakDB) SeedFakeAspraks(count int, year int, seed int64) (int, error) {
	gofakeit.Seed(seed)

	rows := make([]codegen.BatchRow, count)
	nims := make([]string, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("%s %s", gofakeit.FirstName(), gofakeit.LastName())
		if gofakeit.Bool() {
			name += " " + gofakeit.LastName()
		}
		rows[i] = codegen.BatchRow{FullName: strings.ToUpper(name)}
		nims[i] = fmt.Sprintf("%d%08d", year%100, gofakeit.Number(0, 99999999))
	}

	existing, err := db.GetActiveCodes()
	if err != nil {
		return 0, err
	}
	results := codegen.GenerateBatch(rows, existing)

	created := 0
	for i, result := range results {
		if result.Code == "" {
			log.Printf("Seed: no code available for %q, skipping", rows[i].FullName)
			continue
		}
		asprak := &Asprak{
			NIM:      nims[i],
			FullName: rows[i].FullName,
			Code:     result.Code,
			CodeRule: result.Rule.Label(),
			Angkatan: year - gofakeit.Number(0, 3),
		}
		if err := db.CreateAsprak(asprak); err != nil {
			// NIM collisions from the fake generator are tolerable in seed data
			log.Printf("Seed: skipping %q: %v", asprak.FullName, err)
			continue
		}
		created++
	}

	log.Printf("Seeded %d/%d fake aspraks", created, count)
	return created, nil
}
