package constants

type StaticFile string

const (
	TripsFile     StaticFile = "trips.txt"
	StopTimesFile StaticFile = "stop_times.txt"
	StopsFile     StaticFile = "stops.txt"
)
