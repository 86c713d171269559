package vehicle

import (
	"database/sql"
	"fmt"
	"log"
)

// Schema creates the Vehicle table. position preserves catalog order.
const Schema = `CREATE TABLE IF NOT EXISTS Vehicle (
	id           TEXT PRIMARY KEY,
	position     INTEGER NOT NULL,
	make         TEXT NOT NULL,
	model        TEXT NOT NULL,
	year         INTEGER NOT NULL,
	price        REAL NOT NULL CHECK (price >= 0),
	mileage      REAL NOT NULL CHECK (mileage >= 0),
	fuel_type    TEXT NOT NULL,
	transmission TEXT NOT NULL,
	image_url    TEXT NOT NULL DEFAULT ''
)`

// DBSource reads the catalog from the Vehicle table.
type DBSource struct {
	db *sql.DB
}

func NewDBSource(db *sql.DB) *DBSource {
	return &DBSource{db: db}
}

const listQuery = `SELECT id, make, model, year, price, mileage, fuel_type, transmission, image_url
	FROM Vehicle ORDER BY position, id`

func (s *DBSource) List() ([]Vehicle, error) {
	rows, err := s.db.Query(listQuery)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []Vehicle{}
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.Price,
			&v.Mileage, &v.FuelType, &v.Transmission, &v.ImageURL); err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading vehicles: %w", err)
	}

	log.Printf("[vehicle] Loaded %d vehicles from database", len(vehicles))
	return vehicles, nil
}

const upsertQuery = `INSERT INTO Vehicle (id, position, make, model, year, price, mileage, fuel_type, transmission, image_url)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET position = excluded.position, make = excluded.make,
	model = excluded.model, year = excluded.year, price = excluded.price,
	mileage = excluded.mileage, fuel_type = excluded.fuel_type,
	transmission = excluded.transmission, image_url = excluded.image_url`

// SaveAll creates the Vehicle table if needed and replaces its contents with
// vehicles, in order. It runs in a single transaction.
func SaveAll(db *sql.DB, vehicles []Vehicle) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("error creating Vehicle table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM Vehicle`); err != nil {
		return fmt.Errorf("error clearing vehicles: %w", err)
	}

	for i, v := range vehicles {
		if _, err := tx.Exec(upsertQuery, v.ID, i, v.Make, v.Model, v.Year, v.Price,
			v.Mileage, v.FuelType, v.Transmission, v.ImageURL); err != nil {
			return fmt.Errorf("error saving vehicle %s: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing vehicles: %w", err)
	}
	log.Printf("[vehicle] Saved %d vehicles", len(vehicles))
	return nil
}
