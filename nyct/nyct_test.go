package nyct_test

import (
	"testing"

	"github.com/jamespfennell/trainstops/nyct"
)

func TestStopDirection(t *testing.T) {
	testCases := []struct {
		StopID   string
		Expected nyct.Direction
	}{
		{
			StopID:   "635S",
			Expected: nyct.South,
		},
		{
			StopID:   "R14N",
			Expected: nyct.North,
		},
		{
			StopID:   "635",
			Expected: nyct.DirectionUnspecified,
		},
		{
			StopID:   "",
			Expected: nyct.DirectionUnspecified,
		},
		{
			// Only the suffix matters.
			StopID:   "S09N",
			Expected: nyct.North,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.StopID, func(t *testing.T) {
			if got := nyct.StopDirection(testCase.StopID); got != testCase.Expected {
				t.Errorf("StopDirection(%q) = %s, want %s", testCase.StopID, got, testCase.Expected)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	for direction, expected := range map[nyct.Direction]string{
		nyct.North:                "NORTH",
		nyct.South:                "SOUTH",
		nyct.DirectionUnspecified: "UNSPECIFIED",
		nyct.Direction(7):         "UNSPECIFIED",
	} {
		if got := direction.String(); got != expected {
			t.Errorf("Direction(%d).String() = %q, want %q", direction, got, expected)
		}
	}
}

func TestSubwayRoutesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, routeID := range nyct.SubwayRouteIDs() {
		if seen[routeID] {
			t.Errorf("route %s listed twice", routeID)
		}
		seen[routeID] = true
	}
	if len(seen) != len(nyct.SubwayRoutes) {
		t.Errorf("SubwayRouteIDs() returned %d routes, want %d", len(seen), len(nyct.SubwayRoutes))
	}
}

func TestFindRoute(t *testing.T) {
	route, ok := nyct.FindRoute("1")
	if !ok {
		t.Fatalf("FindRoute(\"1\") found nothing")
	}
	expected := nyct.Route{ID: "1", Northbound: "Bronx", Southbound: "South Ferry"}
	if route != expected {
		t.Errorf("FindRoute(\"1\") = %+v, want %+v", route, expected)
	}
	if _, ok := nyct.FindRoute("Z"); ok {
		t.Errorf("FindRoute(\"Z\") found a route outside SubwayRoutes")
	}
}
