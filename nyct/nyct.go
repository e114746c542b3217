// Package nyct contains conventions of the New York City Transit subway GTFS static feed.
package nyct

import "strings"

// Route is a subway route together with the destinations its trains show in each direction.
type Route struct {
	ID         string
	Northbound string
	Southbound string
}

// SubwayRoutes lists the subway routes whose stops are extracted by default.
var SubwayRoutes = []Route{
	{ID: "1", Northbound: "Bronx", Southbound: "South Ferry"},
	{ID: "2", Northbound: "Bronx", Southbound: "Brooklyn"},
	{ID: "3", Northbound: "Harlem", Southbound: "Brooklyn"},
	{ID: "4", Northbound: "Bronx", Southbound: "Brooklyn"},
	{ID: "5", Northbound: "Bronx", Southbound: "Brooklyn"},
	{ID: "5X", Northbound: "Bronx", Southbound: "Brooklyn"},
	{ID: "6", Northbound: "Bronx", Southbound: "Brooklyn Brdg"},
	{ID: "6X", Northbound: "Bronx", Southbound: "Brooklyn Brdg"},
	// The shuttle has no meaningful direction labels.
	{ID: "S"},
	{ID: "L", Northbound: "Manhattan", Southbound: "Brooklyn"},
	{ID: "B", Northbound: "Bronx", Southbound: "Brooklyn"},
	{ID: "D", Northbound: "Bronx", Southbound: "Brooklyn"},
	{ID: "A", Northbound: "Manhattan", Southbound: "Queens"},
	{ID: "G", Northbound: "Queens", Southbound: "Brooklyn"},
	{ID: "C", Northbound: "Manhattan", Southbound: "Brooklyn"},
	{ID: "E", Northbound: "Queens", Southbound: "Manhattan"},
	{ID: "N", Northbound: "Manhattan", Southbound: "Brooklyn"},
	{ID: "Q", Northbound: "Manhattan", Southbound: "Brooklyn"},
	{ID: "R", Northbound: "Queens", Southbound: "Brooklyn"},
	{ID: "W", Northbound: "Queens", Southbound: "Manhattan"},
}

// SubwayRouteIDs returns the IDs of SubwayRoutes in order.
func SubwayRouteIDs() []string {
	routeIDs := make([]string, 0, len(SubwayRoutes))
	for _, route := range SubwayRoutes {
		routeIDs = append(routeIDs, route.ID)
	}
	return routeIDs
}

// FindRoute returns the subway route with the given ID.
func FindRoute(routeID string) (Route, bool) {
	for _, route := range SubwayRoutes {
		if route.ID == routeID {
			return route, true
		}
	}
	return Route{}, false
}

// Direction is the direction of travel encoded in the last character of a NYCT platform stop ID.
type Direction uint8

const (
	DirectionUnspecified Direction = 0
	North                Direction = 1
	South                Direction = 2
)

func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	default:
		return "UNSPECIFIED"
	}
}

// StopDirection returns the direction of the platform with the given stop ID.
//
// Parent stations, like "635", have no direction suffix.
func StopDirection(stopID string) Direction {
	switch {
	case strings.HasSuffix(stopID, "S"):
		return South
	case strings.HasSuffix(stopID, "N"):
		return North
	default:
		return DirectionUnspecified
	}
}
