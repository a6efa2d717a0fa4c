package domain

import (
	"fmt"
	"sort"
)

// Location is a raw map variant as named by the game data.
type Location string

// Known raw locations. Some display maps have several variants (day/night, low/high).
const (
	LocationCustoms        Location = "bigmap"
	LocationFactoryDay     Location = "factory4_day"
	LocationFactoryNight   Location = "factory4_night"
	LocationInterchange    Location = "interchange"
	LocationLabs           Location = "laboratory"
	LocationLighthouse     Location = "lighthouse"
	LocationReserve        Location = "rezervbase"
	LocationGroundZeroLow  Location = "sandbox"
	LocationGroundZeroHigh Location = "sandbox_high"
	LocationShoreline      Location = "shoreline"
	LocationStreets        Location = "tarkovstreets"
	LocationWoods          Location = "woods"
)

// DisplayLocation is the player-facing map a Location belongs to.
type DisplayLocation string

const (
	DisplayCustoms     DisplayLocation = "Customs"
	DisplayFactory     DisplayLocation = "Factory"
	DisplayInterchange DisplayLocation = "Interchange"
	DisplayLabs        DisplayLocation = "Labs"
	DisplayLighthouse  DisplayLocation = "Lighthouse"
	DisplayReserve     DisplayLocation = "Reserve"
	DisplayGroundZero  DisplayLocation = "Ground Zero"
	DisplayShoreline   DisplayLocation = "Shoreline"
	DisplayStreets     DisplayLocation = "Streets"
	DisplayWoods       DisplayLocation = "Woods"
)

// LocationInfo is the static display metadata of a raw location.
type LocationInfo struct {
	Display DisplayLocation
	Slug    string // url-friendly name
}

var locationTable = map[Location]LocationInfo{
	LocationCustoms:        {Display: DisplayCustoms, Slug: "customs"},
	LocationFactoryDay:     {Display: DisplayFactory, Slug: "factory"},
	LocationFactoryNight:   {Display: DisplayFactory, Slug: "factory-night"},
	LocationInterchange:    {Display: DisplayInterchange, Slug: "interchange"},
	LocationLabs:           {Display: DisplayLabs, Slug: "labs"},
	LocationLighthouse:     {Display: DisplayLighthouse, Slug: "lighthouse"},
	LocationReserve:        {Display: DisplayReserve, Slug: "reserve"},
	LocationGroundZeroLow:  {Display: DisplayGroundZero, Slug: "ground-zero-low"},
	LocationGroundZeroHigh: {Display: DisplayGroundZero, Slug: "ground-zero-high"},
	LocationShoreline:      {Display: DisplayShoreline, Slug: "shoreline"},
	LocationStreets:        {Display: DisplayStreets, Slug: "streets"},
	LocationWoods:          {Display: DisplayWoods, Slug: "woods"},
}

// mapMetadataNames maps the normalizedName used by map metadata collections
// to the display location.
var mapMetadataNames = map[string]DisplayLocation{
	"customs":           DisplayCustoms,
	"factory":           DisplayFactory,
	"interchange":       DisplayInterchange,
	"the-lab":           DisplayLabs,
	"lighthouse":        DisplayLighthouse,
	"reserve":           DisplayReserve,
	"ground-zero":       DisplayGroundZero,
	"shoreline":         DisplayShoreline,
	"streets-of-tarkov": DisplayStreets,
	"woods":             DisplayWoods,
}

// AllLocations returns every known raw location in a stable order.
func AllLocations() []Location {
	locs := make([]Location, 0, len(locationTable))
	for loc := range locationTable {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i] < locs[j] })
	return locs
}

// Info returns the display metadata for l.
func (l Location) Info() (LocationInfo, bool) {
	info, ok := locationTable[l]
	return info, ok
}

// Display returns the display location, or "" when l is unknown.
func (l Location) Display() DisplayLocation {
	return locationTable[l].Display
}

// Valid reports whether l is one of the known raw locations.
func (l Location) Valid() bool {
	_, ok := locationTable[l]
	return ok
}

// ParseLocation accepts a raw location name or a slug.
func ParseLocation(s string) (Location, error) {
	if l := Location(s); l.Valid() {
		return l, nil
	}
	for loc, info := range locationTable {
		if info.Slug == s {
			return loc, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownLocation, s)
}

// Variants returns the raw locations that share display location d.
func (d DisplayLocation) Variants() []Location {
	var out []Location
	for _, loc := range AllLocations() {
		if locationTable[loc].Display == d {
			out = append(out, loc)
		}
	}
	return out
}

// DisplayLocationForMapMetadata resolves a map metadata normalizedName.
func DisplayLocationForMapMetadata(normalizedName string) (DisplayLocation, bool) {
	d, ok := mapMetadataNames[normalizedName]
	return d, ok
}
