package study

import (
	"math"
	"strconv"
	"strings"
)

// Person is the identity shared by patients and doctors
type Person struct {
	Name string
}

func (p Person) String() string {
	return p.Name
}

// Observation is a single day-stamped measurement. It cannot be changed once created.
type Observation struct {
	day   int
	value float64
}

// NewObservation creates an observation for the given day
func NewObservation(day int, value float64) Observation {
	return Observation{day: day, value: value}
}

// Day returns the study day the observation was taken on
func (o Observation) Day() int {
	return o.day
}

// Value returns the measured value
func (o Observation) Value() float64 {
	return o.value
}

// String renders the value the way study reports print floats: whole numbers
// keep a trailing ".0" and non-finite values are lower case.
func (o Observation) String() string {
	switch {
	case math.IsNaN(o.value):
		return "nan"
	case math.IsInf(o.value, 1):
		return "inf"
	case math.IsInf(o.value, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(o.value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
