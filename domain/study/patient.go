package study

// Patient is a person in the inflammation study with an ordered list of observations
type Patient struct {
	Person
	observations []Observation
}

// NewPatient creates a patient with no observations
func NewPatient(name string) *Patient {
	return &Patient{Person: Person{Name: name}}
}

// AddObservation records a value on the day after the last observation, or day 0
// for a patient with no observations yet.
func (p *Patient) AddObservation(value float64) Observation {
	day := 0
	if last, ok := p.LastObservation(); ok {
		day = last.Day() + 1
	}
	return p.AddObservationOnDay(value, day)
}

// AddObservationOnDay records a value on an explicit day. Days are not required
// to be increasing.
func (p *Patient) AddObservationOnDay(value float64, day int) Observation {
	obs := NewObservation(day, value)
	p.observations = append(p.observations, obs)
	return obs
}

// LastObservation returns the most recently appended observation
func (p *Patient) LastObservation() (Observation, bool) {
	if len(p.observations) == 0 {
		return Observation{}, false
	}
	return p.observations[len(p.observations)-1], true
}

// Observations returns the observations in the order they were added
func (p *Patient) Observations() []Observation {
	out := make([]Observation, len(p.observations))
	copy(out, p.observations)
	return out
}
