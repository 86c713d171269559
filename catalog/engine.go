package catalog

import (
	"fmt"
	"log"

	"github.com/carfinder/site/cache"
	"github.com/carfinder/site/filter"
	"github.com/carfinder/site/vehicle"
)

// vehicleCost approximates the memory held by one cached vehicle.
const vehicleCost = 256

// Engine owns the loaded catalog and memoizes filtered results. The catalog
// is read once from the source and never modified afterwards.
type Engine struct {
	vehicles []vehicle.Vehicle
	byID     map[string]int
	results  *cache.Cache[[]vehicle.Vehicle]
}

// NewEngine loads the catalog from src.
func NewEngine(src vehicle.Source) (*Engine, error) {
	vehicles, err := src.List()
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}

	byID := make(map[string]int, len(vehicles))
	for i, v := range vehicles {
		if _, dup := byID[v.ID]; dup {
			return nil, fmt.Errorf("duplicate vehicle id %q in catalog", v.ID)
		}
		byID[v.ID] = i
	}

	results, err := cache.New[[]vehicle.Vehicle]("Catalog Results Cache", 1<<24,
		func(value []vehicle.Vehicle) int64 {
			return int64(len(value)*vehicleCost + 1)
		})
	if err != nil {
		return nil, fmt.Errorf("error creating results cache: %w", err)
	}

	log.Printf("[catalog] Loaded %d vehicles", len(vehicles))

	return &Engine{
		vehicles: vehicles,
		byID:     byID,
		results:  results,
	}, nil
}

// Catalog returns a copy of the full catalog in order.
func (e *Engine) Catalog() []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, len(e.vehicles))
	copy(out, e.vehicles)
	return out
}

func (e *Engine) Len() int {
	return len(e.vehicles)
}

// State builds the browsing state for a query and criteria.
func (e *Engine) State(query string, c filter.Criteria) State {
	s := State{
		Catalog:  e.vehicles,
		Query:    query,
		Criteria: c,
	}
	s.Visible = e.Visible(query, c)
	return s
}

// Visible returns the vehicles matching query and c. Callers must not
// modify the returned slice.
func (e *Engine) Visible(query string, c filter.Criteria) []vehicle.Vehicle {
	key := fmt.Sprintf("%q|%s", query, c.Key())
	if cached, found := e.results.Get(key); found {
		return cached
	}

	visible := filter.Apply(e.vehicles, query, c)
	e.results.Set(key, visible, 0)
	return visible
}

// Find returns the vehicle with id.
func (e *Engine) Find(id string) (vehicle.Vehicle, bool) {
	i, ok := e.byID[id]
	if !ok {
		return vehicle.Vehicle{}, false
	}
	return e.vehicles[i], true
}

func (e *Engine) CacheStats() map[string]interface{} {
	return e.results.Stats()
}

func (e *Engine) ClearCache() {
	e.results.Clear()
	log.Printf("[catalog] Results cache cleared")
}

// Close releases the results cache.
func (e *Engine) Close() {
	e.results.Close()
}
