package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jamespfennell/trainstops/constants"
)

// FeedBuilder writes a GTFS static feed into a temporary directory.
//
// Every table starts with just its header.
type FeedBuilder struct {
	t *testing.T
	m map[constants.StaticFile]string
}

func NewFeedBuilder(t *testing.T) *FeedBuilder {
	return (&FeedBuilder{t: t, m: map[constants.StaticFile]string{}}).Add(
		constants.TripsFile, "route_id,service_id,trip_id",
	).Add(
		constants.StopTimesFile, "trip_id,arrival_time,departure_time,stop_id,stop_sequence",
	).Add(
		constants.StopsFile, "stop_id,stop_name,stop_lat,stop_lon",
	)
}

// Add replaces the content of a table. Each line is one CSV record.
func (b *FeedBuilder) Add(file constants.StaticFile, lines ...string) *FeedBuilder {
	b.m[file] = strings.Join(lines, "\n")
	return b
}

// Remove drops a table from the feed.
func (b *FeedBuilder) Remove(file constants.StaticFile) *FeedBuilder {
	delete(b.m, file)
	return b
}

// Build writes the feed and returns its directory.
func (b *FeedBuilder) Build() string {
	dir := b.t.TempDir()
	for file, content := range b.m {
		if err := os.WriteFile(filepath.Join(dir, string(file)), []byte(content), 0644); err != nil {
			b.t.Fatalf("failed to write %s: %s", file, err)
		}
	}
	return dir
}
