// Package trainstops lists the southbound stops of each NYC subway route using a GTFS static feed.
//
// For every route the longest southbound stop sequence of any of its trips is selected,
// and each stop in that sequence is paired with its name from stops.txt.
package trainstops

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jamespfennell/trainstops/constants"
	"github.com/jamespfennell/trainstops/csv"
	"github.com/jamespfennell/trainstops/nyct"
)

// Routes maps a route ID to its stops.
type Routes map[string]RouteStops

type RouteStops struct {
	Stops []Stop `json:"stops"`
}

// Stop is serialized as the two element array [stop_id, stop_name].
type Stop struct {
	ID   string
	Name string
}

func (s Stop) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	// Names like "Jay St & MetroTech" are written as is.
	enc.SetEscapeHTML(false)
	if err := enc.Encode([2]string{s.ID, s.Name}); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

func (s *Stop) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected a [stop_id, stop_name] pair, got %d elements", len(pair))
	}
	s.ID, s.Name = pair[0], pair[1]
	return nil
}

type BuildOptions struct {
	// Routes whose stops are extracted. If empty, the routes in nyct.SubwayRoutes are used.
	Routes []string
}

// Build reads trips.txt, stop_times.txt and stops.txt from dir and returns the southbound stops of each route.
//
// Routes without any southbound stops are omitted.
func Build(dir string, opts BuildOptions) (Routes, error) {
	allowedRoutes := opts.Routes
	if len(allowedRoutes) == 0 {
		allowedRoutes = nyct.SubwayRouteIDs()
	}
	allowed := map[string]bool{}
	for _, routeID := range allowedRoutes {
		allowed[routeID] = true
	}

	var tripToRoute map[string]string
	var sequences map[string]*routeSequences
	var stopNames map[string]string
	for _, table := range []struct {
		fileName constants.StaticFile
		action   func(file *csv.File) error
	}{
		{
			constants.TripsFile,
			func(file *csv.File) (err error) {
				tripToRoute, err = parseTrips(file, allowed)
				return err
			},
		},
		{
			constants.StopTimesFile,
			func(file *csv.File) (err error) {
				sequences, err = parseStopTimes(file, tripToRoute)
				return err
			},
		},
		{
			constants.StopsFile,
			func(file *csv.File) (err error) {
				stopNames, err = parseStops(file)
				return err
			},
		},
	} {
		if err := readTable(dir, table.fileName, table.action); err != nil {
			return nil, err
		}
	}

	selected := selectLongest(sequences)
	if missing := routesWithoutStops(allowedRoutes, selected); len(missing) > 0 {
		log.Printf("No southbound stops found for %d routes: %s", len(missing), strings.Join(missing, ", "))
	}
	return joinNames(selected, stopNames)
}

// routesWithoutStops describes each allowed route that has no selected stops, e.g. "1 (to South Ferry)".
func routesWithoutStops(allowedRoutes []string, selected map[string][]string) []string {
	var missing []string
	for _, routeID := range allowedRoutes {
		if _, ok := selected[routeID]; ok {
			continue
		}
		route, ok := nyct.FindRoute(routeID)
		if !ok || route.Southbound == "" {
			missing = append(missing, routeID)
			continue
		}
		missing = append(missing, fmt.Sprintf("%s (to %s)", routeID, route.Southbound))
	}
	return missing
}

func readTable(dir string, fileName constants.StaticFile, action func(file *csv.File) error) (err error) {
	file, err := csv.Open(dir, fileName)
	if err != nil {
		return err
	}
	defer func() {
		// The error of the stage takes precedence over the close error.
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return action(file)
}

// Write writes the routes to w as a single line of JSON.
func Write(w io.Writer, routes Routes) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(routes); err != nil {
		return fmt.Errorf("failed to write routes: %w", err)
	}
	return nil
}

