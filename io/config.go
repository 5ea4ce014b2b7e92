package io

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

const ExampleDemoFile = `[Demo]

#######################
# Required Parameters #
#######################

# Whitespace-separated table of sample nodes. The first column holds the
# keys, the second column the values. Lines starting with # are skipped.
Nodes = path/to/nodes.txt

# Interpolation strategy used in-between nodes. One of:
# [ Step | Linear | LogLinear ]
Strategy = Linear

# Keys at which the map is evaluated. Points may be repeated and each line
# may hold a comma-separated list.
Points = 0.5, 1.5, 7
Points = 1123.54

#######################
# Optional Parameters #
#######################

# If set, a matplotlib script plotting the sampled curve and the input
# nodes is written to this file.
# Plot = plot.py

# Number of curve samples used for the plot. Default is 200.
# Samples = 200`

type DemoConfig struct {
	// Required
	Nodes    string
	Strategy string
	Points   []string

	// Optional
	Plot    string
	Samples int
}

type DemoWrapper struct {
	Demo DemoConfig
}

func DefaultDemoWrapper() *DemoWrapper {
	con := DemoConfig{}
	con.Samples = 200
	return &DemoWrapper{con}
}

func (con *DemoConfig) ValidNodes() bool {
	return con.Nodes != ""
}

func (con *DemoConfig) ValidStrategy() bool {
	switch strings.ToLower(con.Strategy) {
	case "step", "linear", "loglinear":
		return true
	}
	return false
}

func (con *DemoConfig) ValidPoints() bool {
	return len(con.Points) > 0
}

func (con *DemoConfig) ValidSamples() bool {
	return con.Samples > 1
}

// QueryPoints parses the accumulated Points entries into keys. Each entry
// may be a single number or a comma-separated list of numbers.
func (con *DemoConfig) QueryPoints() ([]float64, error) {
	xs := []float64{}
	for _, entry := range con.Points {
		for _, tok := range strings.Split(entry, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			x, err := cast.ToFloat64E(tok)
			if err != nil {
				return nil, fmt.Errorf(
					"Could not parse 'Points' entry '%s': %s", tok, err,
				)
			}
			xs = append(xs, x)
		}
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("'Points' contains no values.")
	}
	return xs, nil
}
