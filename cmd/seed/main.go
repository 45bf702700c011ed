package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/krafty-kitchen/api/internal/seed"
	"github.com/krafty-kitchen/api/internal/storage"
)

func main() {
	// CLI flags
	dataFile := flag.String("data", "", "Path to the data file")
	force := flag.Bool("force", false, "Wipe existing orders and expenses and re-seed everything")
	flag.Parse()

	// Fall back to environment, then default
	if *dataFile == "" {
		_ = godotenv.Load()
		*dataFile = os.Getenv("DATA_FILE")
	}
	if *dataFile == "" {
		*dataFile = "krafty-data.json"
	}

	store := storage.NewFile(*dataFile)
	now := time.Now()

	if *force {
		if err := seed.Reset(store, now); err != nil {
			log.Fatalf("Unable to reset store: %v", err)
		}
		log.Printf("Reset %s: %d menu items, %d tables, empty order book", *dataFile, len(seed.Menu()), len(seed.Tables()))
		return
	}

	if err := seed.EnsureDefaults(store, now); err != nil {
		log.Fatalf("Unable to seed store: %v", err)
	}
	log.Printf("Seeded missing defaults in %s", *dataFile)
}
