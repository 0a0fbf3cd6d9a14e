// Command import-roster loads a CSV or Excel roster file into the database
// without going through the HTTP server.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"asprakserver/database"
	"asprakserver/importer"
)

func main() {
	dbPath := flag.String("db", "aspraks.db", "path to the roster database")
	filePath := flag.String("file", "", "roster file to import (.csv or .xlsx)")
	window := flag.Int("window", 6, "active window in years for code recycling")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: import-roster -file roster.csv [-db aspraks.db] [-window 6]")
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("failed to open roster file: %v", err)
	}
	defer f.Close()

	var records []importer.RosterRecord
	switch ext := strings.ToLower(filepath.Ext(*filePath)); ext {
	case ".csv", ".txt":
		records, err = importer.ParseRosterCSV(f)
	case ".xlsx", ".xlsm":
		records, err = importer.ParseRosterExcel(f)
	default:
		log.Fatalf("unsupported file type %s, expected .csv or .xlsx", ext)
	}
	if err != nil {
		log.Fatalf("failed to parse roster: %v", err)
	}
	log.Printf("Parsed %d roster rows from %s", len(records), *filePath)

	db, err := database.NewAsprakDB(*dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ri := importer.NewRosterImporter(db, *window)
	result, err := ri.ImportRoster(records, time.Now().Year())
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("Import finished in %s: %d created, %d updated, %d failed, %d skipped",
		result.Duration, result.Created, result.Updated, result.Failed, result.Skipped)
	for _, msg := range result.Errors {
		log.Printf("  %s", msg)
	}
}
