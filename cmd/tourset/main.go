// Command tourset runs a full tour census on a small planar TSP instance
// and prints one "key normalized-length" line per undirected route, where
// normalized-length = recorded length − global minimum.
//
// The instance comes from one of two sources:
//   - sampled: -n, -size and -seed feed the deterministic uniform sampler;
//   - explicit: -input points at a JSON file with town coordinates.
//
// Output order follows the census map's natural iteration order and is
// NOT sorted; pass -sorted to order lines by key for reproducible diffs.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/tourset/enumerate"
	"github.com/katalvlaran/tourset/plane"
)

// entry is one reported line of the census.
type entry struct {
	Key    uint64
	Length float64
}

func main() {
	nPtr := flag.Int("n", 0, "number of towns to sample (required unless -input is given)")
	sizePtr := flag.Float64("size", 0, "side length of the square sampling plane (required with -n)")
	seedPtr := flag.Uint64("seed", 1, "seed for the town sampler, where 1 is the default")
	inputPtr := flag.String("input", "", "path to a JSON instance file with explicit town coordinates")
	sortedPtr := flag.Bool("sorted", false, "sort output lines by canonical key")
	flag.Parse()

	// Validate arguments: exactly one instance source.
	var (
		towns []plane.Point
		err   error
	)
	if *inputPtr != "" {
		if *nPtr != 0 || *sizePtr != 0 {
			log.Fatal("-input and -n/-size are mutually exclusive")
		}
		towns, err = townsFromFile(*inputPtr)
	} else {
		if *nPtr <= 0 {
			log.Fatal("a positive -n is required when no -input file is given")
		}
		if *sizePtr <= 0 {
			log.Fatalf("-size must be positive: %v", *sizePtr)
		}
		towns, err = plane.Towns(*nPtr, *sizePtr, *seedPtr)
	}
	if err != nil {
		log.Fatalf("build instance: %v", err)
	}

	census, err := enumerate.Run(plane.DistMatrix(towns))
	if err != nil {
		log.Fatalf("enumerate: %v", err)
	}

	entries := lo.MapToSlice(census.Normalized(), func(key uint64, length float64) entry {
		return entry{Key: key, Length: length}
	})
	if *sortedPtr {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	}

	for _, e := range entries {
		fmt.Printf("%d %v\n", e.Key, e.Length)
	}
}
