// Package thermo provides the species reference data and the mixture
// property evaluator used by flow stations.
//
// Species carry NASA 7-coefficient curve fits (two temperature ranges split
// at TMid) and their elemental makeup. A [SpeciesTable] is immutable after
// construction and safe to share between goroutines:
//
//   - [Species]: one chemical species and its thermodynamic fit
//   - [Table]: lookup interface consumed by the flow package
//   - [Composition]: a resolved mixture with mass and mole fractions
//
// # Units
//
// Everything outside the curve fits is in English engineering units:
// temperature in degrees Rankine, pressure in psia, enthalpy in BTU/lbm,
// entropy in BTU/(lbm·R), density in lbm/ft³ and velocity in ft/s.
// Enthalpies are absolute (heats of formation included) so that reacting
// mixtures balance energy without a separate heat-release term.
//
// # Example
//
//	air, _ := thermo.NewComposition(thermo.Default(), map[string]float64{
//	    "N2": 0.75474, "O2": 0.232, "AR": 0.0128, "CO2": 0.00046,
//	})
//	h := air.Enthalpy(518)     // BTU/lbm
//	rho := air.Density(518, 15) // lbm/ft³
package thermo
