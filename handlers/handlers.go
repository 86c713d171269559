package handlers

import (
	"github.com/carfinder/site/catalog"
	"github.com/carfinder/site/config"
)

var (
	engine *catalog.Engine

	// salesEmail is the "Contact Seller" recipient.
	salesEmail = config.SalesEmail
)

// Init wires the catalog engine used by every handler.
func Init(e *catalog.Engine) {
	engine = e
	salesEmail = config.SalesEmail
}
