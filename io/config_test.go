package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"
)

func TestReadDemoConfig(t *testing.T) {
	text := `[Demo]
Nodes = points.txt
Strategy = LogLinear
Points = 0.5, 1.5
Points = 1123.54
Plot = plot.py
Samples = 100`

	wrap := DefaultDemoWrapper()
	err := gcfg.ReadStringInto(wrap, text)
	assert.NoError(t, err, "config parses")
	con := &wrap.Demo

	assert.True(t, con.ValidNodes(), "nodes set")
	assert.True(t, con.ValidStrategy(), "strategy recognized")
	assert.True(t, con.ValidPoints(), "points set")
	assert.True(t, con.ValidSamples(), "samples positive")
	assert.Equal(t, "plot.py", con.Plot, "plot file")

	xs, err := con.QueryPoints()
	assert.NoError(t, err, "points parse")
	assert.Equal(t, []float64{0.5, 1.5, 1123.54}, xs, "accumulated points")
}

func TestDemoConfigDefaults(t *testing.T) {
	text := `[Demo]
Nodes = points.txt
Strategy = Step
Points = 1`

	wrap := DefaultDemoWrapper()
	err := gcfg.ReadStringInto(wrap, text)
	assert.NoError(t, err, "config parses")

	assert.Equal(t, 200, wrap.Demo.Samples, "default sample count")
	assert.Equal(t, "", wrap.Demo.Plot, "plotting off by default")
}

func TestInvalidStrategy(t *testing.T) {
	con := DemoConfig{Strategy: "cubic"}
	assert.False(t, con.ValidStrategy(), "unknown strategy rejected")
}

func TestBadQueryPoints(t *testing.T) {
	con := DemoConfig{Points: []string{"1.5, zebra"}}
	_, err := con.QueryPoints()
	assert.Error(t, err, "non-numeric point rejected")

	con = DemoConfig{Points: []string{" , "}}
	_, err = con.QueryPoints()
	assert.Error(t, err, "blank entries rejected")
}

func TestExampleDemoFileIsValid(t *testing.T) {
	wrap := DefaultDemoWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleDemoFile)
	assert.NoError(t, err, "example config parses")
	con := &wrap.Demo

	assert.True(t, con.ValidNodes(), "example nodes")
	assert.True(t, con.ValidStrategy(), "example strategy")
	assert.True(t, con.ValidPoints(), "example points")
	assert.True(t, con.ValidSamples(), "example samples")
}
