package study

// Doctor is a person responsible for a set of patients. Patients are unique by
// name and are shared references, not owned by the doctor.
type Doctor struct {
	Person
	patients []*Patient
}

// NewDoctor creates a doctor with no patients
func NewDoctor(name string) *Doctor {
	return &Doctor{Person: Person{Name: name}}
}

// AddPatient appends the patient unless one with the same name is already
// assigned, in which case the existing patient is kept and this is a no-op.
func (d *Doctor) AddPatient(patient *Patient) {
	for _, existing := range d.patients {
		if existing.Name == patient.Name {
			return
		}
	}
	d.patients = append(d.patients, patient)
}

// Patients returns the assigned patients in the order they were added
func (d *Doctor) Patients() []*Patient {
	out := make([]*Patient, len(d.patients))
	copy(out, d.patients)
	return out
}
