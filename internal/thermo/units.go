package thermo

const (
	// RuSI is the universal gas constant in J/(mol·K).
	RuSI = 8.314462618

	RankinePerKelvin = 1.8

	// kJ/kg per BTU/lbm and kJ/(kg·K) per BTU/(lbm·R).
	KJPerKgPerBTU   = 2.326
	KJPerKgKPerBTUR = 4.1868

	// Ru in BTU/(lbmol·R).
	RuBTU = RuSI / KJPerKgKPerBTUR

	// JouleConst converts BTU to ft·lbf.
	JouleConst = 778.169262

	// GC is the gravitational constant in lbm·ft/(lbf·s²).
	GC = 32.174049

	SqInPerSqFt = 144.0

	// PRef is the standard-state pressure of the entropy fits (1 atm) in psia.
	PRef = 14.6959488
)

// Temperature limits for root-finding, degrees Rankine. The GRI fits are
// valid from 360 °R, so TMin already extrapolates; a static state colder
// than TMin has no solution.
const (
	TMin = 100.0
	TMax = 9000.0
)
