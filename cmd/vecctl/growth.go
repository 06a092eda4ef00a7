package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/rawvec/vector"
)

// parseGrowth turns a --growth flag value into a growth function.
//
//	double      capacity * 2
//	identity    capacity (only valid with --fixed)
//	chunk:N     capacity + N
//	hybrid:N    double below N, then +25%
func parseGrowth(spec string) (vector.GrowthFunc, error) {
	name, arg, hasArg := strings.Cut(spec, ":")
	switch name {
	case "double", "identity":
		if hasArg {
			return nil, fmt.Errorf("growth %q takes no argument", name)
		}
		if name == "double" {
			return vector.Double, nil
		}
		return vector.Identity, nil
	case "chunk", "hybrid":
		if !hasArg {
			return nil, fmt.Errorf("growth %q needs an argument, e.g. %s:8", name, name)
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("growth %q: argument must be a positive integer, got %q", name, arg)
		}
		if name == "chunk" {
			return vector.AddChunk(n), nil
		}
		return vector.Hybrid(n), nil
	default:
		return nil, fmt.Errorf("unknown growth policy %q (want double, identity, chunk:N or hybrid:N)", spec)
	}
}
