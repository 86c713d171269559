package vehicle

import "strconv"

// Vehicle is one catalog entry. Vehicles are created once when the catalog
// is loaded and never modified.
type Vehicle struct {
	ID           string  `db:"id" json:"id"`
	Make         string  `db:"make" json:"make"`
	Model        string  `db:"model" json:"model"`
	Year         int     `db:"year" json:"year"`
	Price        float64 `db:"price" json:"price"`
	Mileage      float64 `db:"mileage" json:"mileage"`
	FuelType     string  `db:"fuel_type" json:"fuelType"`
	Transmission string  `db:"transmission" json:"transmission"`
	ImageURL     string  `db:"image_url" json:"imageUrl"`
}

// Title returns the display name, e.g. "2022 Toyota Camry".
func (v Vehicle) Title() string {
	return strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
}

const (
	TransmissionAutomatic = "Automatic"
	TransmissionManual    = "Manual"

	FuelGasoline = "Gasoline"
	FuelDiesel   = "Diesel"
	FuelElectric = "Electric"
	FuelHybrid   = "Hybrid"
)

var (
	Transmissions = []string{TransmissionAutomatic, TransmissionManual}
	FuelTypes     = []string{FuelGasoline, FuelDiesel, FuelElectric, FuelHybrid}
)

// Source supplies the catalog in display order.
type Source interface {
	List() ([]Vehicle, error)
}

// StaticSource serves a fixed in-memory catalog.
type StaticSource []Vehicle

func (s StaticSource) List() ([]Vehicle, error) {
	out := make([]Vehicle, len(s))
	copy(out, s)
	return out, nil
}

// Fixture is the built-in demo catalog.
func Fixture() []Vehicle {
	return []Vehicle{
		{
			ID:           "1",
			Make:         "Toyota",
			Model:        "Camry",
			Year:         2022,
			Price:        25000,
			Mileage:      15000,
			FuelType:     FuelGasoline,
			Transmission: TransmissionAutomatic,
			ImageURL:     "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:           "2",
			Make:         "Tesla",
			Model:        "Model 3",
			Year:         2023,
			Price:        45000,
			Mileage:      5000,
			FuelType:     FuelElectric,
			Transmission: TransmissionAutomatic,
			ImageURL:     "https://images.unsplash.com/photo-1560958089-b8a1929cea89?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:           "3",
			Make:         "Honda",
			Model:        "Civic",
			Year:         2021,
			Price:        22000,
			Mileage:      25000,
			FuelType:     FuelGasoline,
			Transmission: TransmissionManual,
			ImageURL:     "https://images.unsplash.com/photo-1590362891991-f776e747a588?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:           "4",
			Make:         "BMW",
			Model:        "i4",
			Year:         2023,
			Price:        55000,
			Mileage:      1000,
			FuelType:     FuelElectric,
			Transmission: TransmissionAutomatic,
			ImageURL:     "https://images.unsplash.com/photo-1617814076367-b759c7d7e738?auto=format&fit=crop&w=800&q=80",
		},
	}
}
