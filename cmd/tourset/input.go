package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"github.com/katalvlaran/tourset/plane"
)

// rawTown mirrors one coordinate pair in the instance file.
type rawTown struct {
	X float64
	Y float64
}

// rawInstance mirrors the instance file layout:
//
//	{ "towns": [ {"x": 0, "y": 0}, {"x": 3, "y": 0}, ... ] }
type rawInstance struct {
	Towns []rawTown
}

// townsFromFile loads explicit town coordinates from a JSON instance
// file: unmarshal into a generic map, then decode into the typed layout
// via mapstructure (case-insensitive keys, tolerant of extra fields).
func townsFromFile(path string) ([]plane.Point, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instance: %w", err)
	}

	var doc map[string]any
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse instance: %w", err)
	}

	var instance rawInstance
	if err = mapstructure.Decode(doc, &instance); err != nil {
		return nil, fmt.Errorf("decode instance: %w", err)
	}
	if len(instance.Towns) == 0 {
		return nil, fmt.Errorf("instance %q lists no towns", path)
	}

	return lo.Map(instance.Towns, func(t rawTown, _ int) plane.Point {
		return plane.Point{X: t.X, Y: t.Y}
	}), nil
}
