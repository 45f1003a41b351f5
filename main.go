package main

import (
	"flag"
	"fmt"
	"os"

	"chatalyzer/internal/di"
	"chatalyzer/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the yaml config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug mode")
	flag.Parse()

	_, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatalyzer: %s\n", err)
		os.Exit(1)
	}
}
