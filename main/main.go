package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
	"gopkg.in/gcfg.v1"

	numap "github.com/muellan/numeric-map"
	"github.com/muellan/numeric-map/flatmap"
	"github.com/muellan/numeric-map/io"
)

func main() {
	var (
		demo          string
		exampleConfig string
	)
	vars := map[string]*string{
		"Demo":          &demo,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&demo, "Demo", "",
		"Configuration file for [Demo] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Demo'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Demo":
		wrap := io.DefaultDemoWrapper()
		err := gcfg.ReadFileInto(wrap, demo)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Demo

		if !con.ValidNodes() {
			log.Fatal("Invalid/non-existent 'Nodes' value.")
		} else if !con.ValidStrategy() {
			log.Fatal(
				"Invalid/non-existent 'Strategy' value. The only accepted " +
					"strategies are 'Step', 'Linear', and 'LogLinear'.",
			)
		} else if !con.ValidPoints() {
			log.Fatal("Invalid/non-existent 'Points' value.")
		} else if !con.ValidSamples() {
			log.Fatal("Invalid 'Samples' value.")
		}

		demoMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "Demo":
			fmt.Println(io.ExampleDemoFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Demo'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but numap_cmd only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func demoMain(con *io.DemoConfig) {
	keys, vals, err := readNodes(con.Nodes)
	if err != nil {
		log.Fatal(err.Error())
	}

	nodes := make([]flatmap.Node[float64, float64], len(keys))
	for i := range keys {
		nodes[i] = flatmap.Node[float64, float64]{Key: keys[i], Value: vals[i]}
	}

	var m *numap.InterpolatingMap[float64, float64]
	switch strings.ToLower(con.Strategy) {
	case "step":
		m = numap.NewStep(nodes...)
	case "linear":
		m = numap.NewLinear(nodes...)
	case "loglinear":
		m = numap.NewLogLinear(nodes...)
	default:
		panic("Impossible")
	}

	xs, err := con.QueryPoints()
	if err != nil {
		log.Fatal(err.Error())
	}
	ys := m.EvalAll(xs)

	for i := range xs {
		fmt.Printf("%g %g\n", xs[i], ys[i])
	}

	if con.Plot != "" {
		plotMap(con, m, keys, vals)
	}
}

// readNodes reads the key and value columns of a whitespace table file.
func readNodes(file string) (keys, vals []float64, err error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return nil, nil, err
	}

	keys, vals = cols[0], cols[1]
	if len(keys) == 0 {
		return nil, nil, fmt.Errorf("Node file '%s' is empty.", file)
	}
	return keys, vals, nil
}

func plotMap(
	con *io.DemoConfig,
	m *numap.InterpolatingMap[float64, float64],
	keys, vals []float64,
) {
	lo, hi := m.Front().Key, m.Back().Key

	curveXs := make([]float64, con.Samples)
	dx := (hi - lo) / float64(con.Samples-1)
	for i := range curveXs {
		curveXs[i] = lo + dx*float64(i)
	}
	curveXs[len(curveXs)-1] = hi
	curveYs := m.EvalAll(curveXs)

	plt.Reset()
	plt.Plot(curveXs, curveYs, "r", plt.LW(3))
	plt.Plot(keys, vals, "ok")
	plt.Title(fmt.Sprintf("%s interpolation of %s", con.Strategy, con.Nodes))
	plt.XLabel("x")
	plt.YLabel("f(x)")
	plt.SaveFig(con.Plot)
	plt.Execute()
}
