package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/jamespfennell/trainstops"
)

var out = flag.String("out", "trainstops_profile.pb.gz", "file path to output the profile to")

func main() {
	if err := run(); err != nil {
		fmt.Println("failed:", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	feedDirs := flag.Args()
	if len(feedDirs) == 0 {
		return fmt.Errorf("no GTFS static feed directories provided")
	}

	fmt.Println("starting profile")
	var profile bytes.Buffer
	if err := pprof.StartCPUProfile(&profile); err != nil {
		return err
	}
	for i, dir := range feedDirs {
		fmt.Printf("building feed %d/%d (%s)\n", i+1, len(feedDirs), dir)
		routes, err := trainstops.Build(dir, trainstops.BuildOptions{})
		if err != nil {
			pprof.StopCPUProfile()
			return err
		}
		fmt.Printf("found stops for %d routes\n", len(routes))
	}
	pprof.StopCPUProfile()

	fmt.Println("writing profile to", *out)
	return os.WriteFile(*out, profile.Bytes(), 0644)
}
