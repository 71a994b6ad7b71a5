package study

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Series lays the patient's observations out as a row indexed by day. Days
// without an observation are NaN; observations outside [0, days) are dropped.
// When a day was recorded more than once the latest observation wins.
func (p *Patient) Series(days int) []float64 {
	row := make([]float64, days)
	for i := range row {
		row[i] = math.NaN()
	}
	for _, obs := range p.observations {
		if obs.day < 0 || obs.day >= days {
			continue
		}
		row[obs.day] = obs.value
	}
	return row
}

// CohortTable builds an inflammation table with one row per patient and one
// column per day, spanning day 0 to the latest day observed in the cohort.
// It returns nil when the cohort has no observations on non-negative days.
func CohortTable(patients []*Patient) *mat.Dense {
	days := 0
	for _, p := range patients {
		for _, obs := range p.observations {
			if obs.day+1 > days {
				days = obs.day + 1
			}
		}
	}
	if len(patients) == 0 || days == 0 {
		return nil
	}

	table := mat.NewDense(len(patients), days, nil)
	for i, p := range patients {
		table.SetRow(i, p.Series(days))
	}
	return table
}

// PatientsFromTable creates one patient per table row, named by namer, with
// an observation for every day column.
func PatientsFromTable(table mat.Matrix, namer func(row int) string) []*Patient {
	rows, cols := table.Dims()
	patients := make([]*Patient, rows)
	for i := 0; i < rows; i++ {
		p := NewPatient(namer(i))
		for j := 0; j < cols; j++ {
			p.AddObservation(table.At(i, j))
		}
		patients[i] = p
	}
	return patients
}
