package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carfinder/site/config"
	"github.com/carfinder/site/db"
	"github.com/carfinder/site/vehicle"
)

// Seeds the Vehicle table used when CATALOG_SOURCE=sqlite. Without -file
// the built-in four-car catalog is written.
func main() {
	jsonFile := flag.String("file", "", "JSON array of vehicles to import")
	dbURL := flag.String("db", config.DatabaseURL, "sqlite database URL")
	flag.Parse()

	vehicles := vehicle.Fixture()
	if *jsonFile != "" {
		var err error
		vehicles, err = readVehicles(*jsonFile)
		if err != nil {
			log.Fatalf("Failed to read vehicles: %v", err)
		}
	}

	if err := db.Init(*dbURL); err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := vehicle.SaveAll(db.Get(), vehicles); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	fmt.Printf("Imported %d vehicles into %s\n", len(vehicles), *dbURL)
}

func readVehicles(path string) ([]vehicle.Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var vehicles []vehicle.Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	seen := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		if v.ID == "" {
			return nil, fmt.Errorf("vehicle without id in %s", path)
		}
		if seen[v.ID] {
			return nil, fmt.Errorf("duplicate vehicle id %q in %s", v.ID, path)
		}
		seen[v.ID] = true
	}
	return vehicles, nil
}
