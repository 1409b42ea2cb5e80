package landinggear

// Unit conversion factors. The reference tables (tyre geometry, seal gland
// bores, airfield survey data) are published in imperial units; all internal
// calculation is SI. Conversion happens once, at the table boundary.
const (
	// MetersPerInch converts inches to meters (exact).
	MetersPerInch = 0.0254

	// MetersPerFoot converts feet to meters (exact).
	MetersPerFoot = 0.3048

	// NewtonsPerPoundForce converts pounds-force to newtons.
	NewtonsPerPoundForce = 4.44822

	// StandardGravity is g in m/s².
	StandardGravity = 9.81
)
