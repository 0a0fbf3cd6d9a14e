// Command seed fills a roster database with generated test data.
package main

import (
	"flag"
	"log"
	"time"

	"asprakserver/database"
)

func main() {
	dbPath := flag.String("db", "aspraks.db", "path to the roster database")
	count := flag.Int("count", 50, "number of aspraks to create")
	year := flag.Int("year", time.Now().Year(), "cohort year for the seeded rows")
	seed := flag.Int64("seed", 0, "random seed, 0 means time-based")
	flag.Parse()

	db, err := database.NewAsprakDB(*dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	created, err := db.SeedFakeAspraks(*count, *year, *seed)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("Seeded %d aspraks into %s (angkatan %d)", created, *dbPath, *year)
}
