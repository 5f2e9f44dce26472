package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pranavtiwari1/chess-master/internal/engine"
	"github.com/pranavtiwari1/chess-master/internal/storage"
	"github.com/pranavtiwari1/chess-master/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	difficulty = flag.String("difficulty", "", "easy, medium or hard (default: saved preference)")
	parallel   = flag.Int("parallel", runtime.NumCPU(), "goroutines used to search root moves")
	dbDir      = flag.String("db", "", "preferences database directory (default: platform data dir)")
	noDB       = flag.Bool("nodb", false, "do not read saved preferences")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	diff := engine.Medium
	if !*noDB {
		diff = savedDifficulty()
	}
	if *difficulty != "" {
		d, err := engine.ParseDifficulty(*difficulty)
		if err != nil {
			log.Fatal(err)
		}
		diff = d
	}

	eng := engine.NewEngine(
		engine.WithDifficulty(diff),
		engine.WithParallelRoot(*parallel),
	)

	protocol := uci.New(eng, os.Stdout, os.Stderr)
	if err := protocol.Run(os.Stdin); err != nil {
		log.Printf("Warning: reading input: %v", err)
	}
}

// savedDifficulty returns the difficulty stored by the desktop game, or
// medium when no preferences can be read.
func savedDifficulty() engine.Difficulty {
	store, err := storage.Open(*dbDir)
	if err != nil {
		log.Printf("Warning: preferences not loaded: %v", err)
		return engine.Medium
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: preferences not loaded: %v", err)
	}
	return prefs.Difficulty
}
