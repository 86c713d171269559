// Package catalog holds the browsing state and the engine that derives the
// visible vehicles from it.
package catalog

import (
	"github.com/carfinder/site/filter"
	"github.com/carfinder/site/vehicle"
)

// State is one snapshot of a browsing session. Transitions return a new
// State; Visible is always recomputed from Catalog, Query and Criteria.
type State struct {
	Catalog  []vehicle.Vehicle
	Query    string
	Criteria filter.Criteria
	Visible  []vehicle.Vehicle
	Selected *vehicle.Vehicle
}

// New returns the initial state: empty query, default criteria, nothing
// selected.
func New(catalog []vehicle.Vehicle) State {
	s := State{
		Catalog:  catalog,
		Criteria: filter.Default(),
	}
	return s.recompute()
}

func (s State) recompute() State {
	s.Visible = filter.Apply(s.Catalog, s.Query, s.Criteria)
	return s
}

func ApplySearch(s State, query string) State {
	s.Query = query
	return s.recompute()
}

func ApplyFilter(s State, c filter.Criteria) State {
	s.Criteria = c
	return s.recompute()
}

// Select marks the vehicle with id as selected. If no catalog vehicle has
// that id the state is returned unchanged with ok false.
func Select(s State, id string) (State, bool) {
	for i := range s.Catalog {
		if s.Catalog[i].ID == id {
			v := s.Catalog[i]
			s.Selected = &v
			return s, true
		}
	}
	return s, false
}

func Deselect(s State) State {
	s.Selected = nil
	return s
}

// Empty reports whether no vehicle is visible.
func (s State) Empty() bool {
	return len(s.Visible) == 0
}
