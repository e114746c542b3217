package trainstops

import (
	"sort"

	"github.com/jamespfennell/trainstops/constants"
	"github.com/jamespfennell/trainstops/csv"
	"github.com/jamespfennell/trainstops/feederrors"
	"github.com/jamespfennell/trainstops/nyct"
)

// parseTrips returns the route of every trip that belongs to an allowed route.
//
// Earlier versions of this tool keyed the lookup by trip ID but checked the route allow-list
// against that key, so stop times were resolved to the wrong values. The map now always holds
// trip ID -> route ID.
func parseTrips(file *csv.File, allowed map[string]bool) (map[string]string, error) {
	tripIDColumn := file.RequiredColumn("trip_id")
	routeIDColumn := file.RequiredColumn("route_id")
	if err := file.CheckRequiredColumns(); err != nil {
		return nil, err
	}
	tripToRoute := map[string]string{}
	for file.NextRow() {
		tripID := tripIDColumn.Read()
		routeID := routeIDColumn.Read()
		if err := file.CheckRow(); err != nil {
			return nil, err
		}
		if !allowed[routeID] {
			continue
		}
		tripToRoute[tripID] = routeID
	}
	return tripToRoute, nil
}

type tripStops struct {
	tripID  string
	stopIDs []string
}

// routeSequences holds the southbound stop sequence of each trip of a route.
// Trips are kept in the order they first appear in stop_times.txt.
type routeSequences struct {
	trips       []tripStops
	tripToIndex map[string]int
}

func (s *routeSequences) add(tripID, stopID string) {
	i, ok := s.tripToIndex[tripID]
	if !ok {
		i = len(s.trips)
		s.tripToIndex[tripID] = i
		s.trips = append(s.trips, tripStops{tripID: tripID})
	}
	s.trips[i].stopIDs = append(s.trips[i].stopIDs, stopID)
}

// parseStopTimes collects the southbound stops of every trip in tripToRoute, grouped by route.
//
// Rows for other trips are skipped.
func parseStopTimes(file *csv.File, tripToRoute map[string]string) (map[string]*routeSequences, error) {
	tripIDColumn := file.RequiredColumn("trip_id")
	stopIDColumn := file.RequiredColumn("stop_id")
	if err := file.CheckRequiredColumns(); err != nil {
		return nil, err
	}
	sequences := map[string]*routeSequences{}
	for file.NextRow() {
		tripID := tripIDColumn.Read()
		stopID := stopIDColumn.Read()
		if err := file.CheckRow(); err != nil {
			return nil, err
		}
		routeID, ok := tripToRoute[tripID]
		if !ok {
			continue
		}
		if nyct.StopDirection(stopID) != nyct.South {
			continue
		}
		s := sequences[routeID]
		if s == nil {
			s = &routeSequences{tripToIndex: map[string]int{}}
			sequences[routeID] = s
		}
		s.add(tripID, stopID)
	}
	return sequences, nil
}

// selectLongest returns the longest stop sequence of each route.
//
// When several trips share the longest length, the one that appeared first in stop_times.txt wins.
func selectLongest(sequences map[string]*routeSequences) map[string][]string {
	selected := map[string][]string{}
	for routeID, s := range sequences {
		var longest []string
		for _, trip := range s.trips {
			if len(longest) < len(trip.stopIDs) {
				longest = trip.stopIDs
			}
		}
		if len(longest) == 0 {
			continue
		}
		selected[routeID] = longest
	}
	return selected
}

func parseStops(file *csv.File) (map[string]string, error) {
	stopIDColumn := file.RequiredColumn("stop_id")
	stopNameColumn := file.RequiredColumn("stop_name")
	if err := file.CheckRequiredColumns(); err != nil {
		return nil, err
	}
	stopNames := map[string]string{}
	for file.NextRow() {
		stopID := stopIDColumn.Read()
		stopName := stopNameColumn.Read()
		if err := file.CheckRow(); err != nil {
			return nil, err
		}
		stopNames[stopID] = stopName
	}
	return stopNames, nil
}

// joinNames pairs every selected stop with its name.
//
// Every stop must appear in stopNames; there is no fallback name.
func joinNames(selected map[string][]string, stopNames map[string]string) (Routes, error) {
	var routeIDs []string
	for routeID := range selected {
		routeIDs = append(routeIDs, routeID)
	}
	// Sorted so the same missing stop is reported on every run.
	sort.Strings(routeIDs)

	routes := Routes{}
	for _, routeID := range routeIDs {
		stopIDs := selected[routeID]
		stops := make([]Stop, 0, len(stopIDs))
		for _, stopID := range stopIDs {
			stopName, ok := stopNames[stopID]
			if !ok {
				return nil, feederrors.KeyNotFoundError{
					FileName: constants.StopsFile,
					RouteID:  routeID,
					Key:      stopID,
				}
			}
			stops = append(stops, Stop{ID: stopID, Name: stopName})
		}
		routes[routeID] = RouteStops{Stops: stops}
	}
	return routes, nil
}
