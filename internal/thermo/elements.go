package thermo

import "sort"

// AtomicWeight holds the atomic weights (g/mol) of the elements the species
// table is built from.
var AtomicWeight = map[string]float64{
	"H":  1.00794,
	"C":  12.0107,
	"N":  14.0067,
	"O":  15.9994,
	"Ar": 39.948,
}

func molarMass(elements map[string]float64) (float64, error) {
	names := make([]string, 0, len(elements))
	for el := range elements {
		names = append(names, el)
	}
	sort.Strings(names)

	m := 0.0
	for _, el := range names {
		w, ok := AtomicWeight[el]
		if !ok {
			return 0, &SpeciesError{Element: el, Wrapped: ErrUnknownElement}
		}
		m += w * elements[el]
	}
	return m, nil
}
