package thermo

// Fits are the GRI-Mech 3.0 thermodynamic set except Jet-A(g), a C12H23
// surrogate whose high range is shifted to join the low range at TMid.
func defaultSpecies() []Species {
	return []Species{
		{
			Name:     "N2",
			Elements: map[string]float64{"N": 2},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{3.298677, 1.4082404e-3, -3.963222e-6, 5.641515e-9, -2.444854e-12, -1020.8999, 3.950372},
				High: [7]float64{2.92664, 1.4879768e-3, -5.68476e-7, 1.0097038e-10, -6.753351e-15, -922.7977, 5.980528},
			},
		},
		{
			Name:     "O2",
			Elements: map[string]float64{"O": 2},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{3.78245636, -2.99673416e-3, 9.84730201e-6, -9.68129509e-9, 3.24372837e-12, -1063.94356, 3.65767573},
				High: [7]float64{3.28253784, 1.48308754e-3, -7.57966669e-7, 2.09470555e-10, -2.16717794e-14, -1088.45772, 5.45323129},
			},
		},
		{
			Name:     "AR",
			Elements: map[string]float64{"Ar": 1},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{2.5, 0, 0, 0, 0, -745.375, 4.366},
				High: [7]float64{2.5, 0, 0, 0, 0, -745.375, 4.366},
			},
		},
		{
			Name:     "CO2",
			Elements: map[string]float64{"C": 1, "O": 2},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{2.35677352, 8.98459677e-3, -7.12356269e-6, 2.45919022e-9, -1.43699548e-13, -48371.9697, 9.90105222},
				High: [7]float64{3.85746029, 4.41437026e-3, -2.21481404e-6, 5.23490188e-10, -4.72084164e-14, -48759.166, 2.27163806},
			},
		},
		{
			Name:     "H2O",
			Elements: map[string]float64{"H": 2, "O": 1},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{4.19864056, -2.0364341e-3, 6.52040211e-6, -5.48797062e-9, 1.77197817e-12, -30293.7267, -0.849032208},
				High: [7]float64{3.03399249, 2.17691804e-3, -1.64072518e-7, -9.7041987e-11, 1.68200992e-14, -30004.2971, 4.9667701},
			},
		},
		{
			Name:     "CO",
			Elements: map[string]float64{"C": 1, "O": 1},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{3.57953347, -6.1035368e-4, 1.01681433e-6, 9.07005884e-10, -9.04424499e-13, -14344.086, 3.50840928},
				High: [7]float64{2.71518561, 2.06252743e-3, -9.98825771e-7, 2.30053008e-10, -2.03647716e-14, -14151.8724, 7.81868772},
			},
		},
		{
			Name:     "H2",
			Elements: map[string]float64{"H": 2},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{2.34433112, 7.98052075e-3, -1.9478151e-5, 2.01572094e-8, -7.37611761e-12, -917.935173, 0.683010238},
				High: [7]float64{3.3372792, -4.94024731e-5, 4.99456778e-7, -1.79566394e-10, 2.00255376e-14, -950.158922, -3.20502331},
			},
		},
		{
			Name:     "CH4",
			Elements: map[string]float64{"C": 1, "H": 4},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{5.14987613, -1.36709788e-2, 4.91800599e-5, -4.84743026e-8, 1.66693956e-11, -10246.6476, -4.64130376},
				High: [7]float64{7.4851495e-2, 1.33909467e-2, -5.73285809e-6, 1.22292535e-9, -1.0181523e-13, -9468.34459, 18.437318},
			},
		},
		{
			Name:     "C3H8",
			Elements: map[string]float64{"C": 3, "H": 8},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{0.93355381, 2.64245790e-2, 6.10597270e-6, -2.19774990e-8, 9.51492530e-12, -13958.52, 19.201691},
				High: [7]float64{7.5341368, 1.8872239e-2, -6.2718491e-6, 9.1475649e-10, -4.7838069e-14, -16467.516, -17.892349},
			},
		},
		{
			Name:     "CH2",
			Elements: map[string]float64{"C": 1, "H": 2},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{3.76267867, 9.68872143e-4, 2.79489841e-6, -3.85091153e-9, 1.68741719e-12, 46004.0401, 1.56253185},
				High: [7]float64{2.87410113, 3.65639292e-3, -1.40894597e-6, 2.60179549e-10, -1.87727567e-14, 46263.604, 6.17119324},
			},
		},
		{
			Name:     "CH",
			Elements: map[string]float64{"C": 1, "H": 1},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{3.48981665, 3.23835541e-4, -1.68899065e-6, 3.16217327e-9, -1.40609067e-12, 70797.2934, 2.08401108},
				High: [7]float64{2.87846473, 9.70913681e-4, 1.44445655e-7, -1.30687849e-10, 1.76079383e-14, 71012.4364, 5.48497999},
			},
		},
		{
			Name:     "C",
			Elements: map[string]float64{"C": 1},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{2.55423955, -3.21537724e-4, 7.33792245e-7, -7.32234889e-10, 2.66521446e-13, 85443.8832, 4.53130848},
				High: [7]float64{2.49266888, 4.79889284e-5, -7.2433502e-8, 3.74291029e-11, -4.87277893e-15, 85451.2953, 4.80150373},
			},
		},
		{
			Name:     "H",
			Elements: map[string]float64{"H": 1},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{2.5, 7.05332819e-13, -1.99591964e-15, 2.30081632e-18, -9.27732332e-22, 25473.6599, -0.446682853},
				High: [7]float64{2.50000001, -2.30842973e-11, 1.61561948e-14, -4.73515235e-18, 4.98197357e-22, 25473.6599, -0.446682914},
			},
		},
		{
			Name:     "Jet-A(g)",
			Elements: map[string]float64{"C": 12, "H": 23},
			Fit: NASA7{
				TMid: 1000,
				Low:  [7]float64{2.0869217, 0.13314965, -8.1157452e-5, 2.9409286e-8, -6.5195213e-12, -27587.632, 34.527022},
				High: [7]float64{24.880201, 7.8250048e-2, -3.1550973e-5, 5.78789e-9, -3.9827968e-13, -34785.503, -86.483523},
			},
		},
	}
}
