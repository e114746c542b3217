package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jamespfennell/trainstops"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "trainstops",
		Usage: "print the southbound stops of each NYC subway route as JSON",
		Description: "Reads trips.txt, stop_times.txt and stops.txt from the current directory. " +
			"For each route the longest southbound stop sequence of any trip is printed, " +
			"each stop paired with its name.",
		Action: func(*cli.Context) error {
			routes, err := trainstops.Build(".", trainstops.BuildOptions{})
			if err != nil {
				return fmt.Errorf("failed to build route stops: %w", err)
			}
			return trainstops.Write(os.Stdout, routes)
		},
	}
	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
