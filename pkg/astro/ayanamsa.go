package astro

// AyanamsaSystem selects one of the supported sidereal zero-point
// definitions.
type AyanamsaSystem string

// Supported ayanamsa systems.
const (
	AyanamsaLahiri       AyanamsaSystem = "lahiri"
	AyanamsaRaman        AyanamsaSystem = "raman"
	AyanamsaKrishnamurti AyanamsaSystem = "krishnamurti"
	AyanamsaFaganBradley AyanamsaSystem = "fagan_bradley"
)

// ayanamsaJ2000 holds each system's offset at the J2000.0 epoch, in degrees.
var ayanamsaJ2000 = map[AyanamsaSystem]float64{
	AyanamsaLahiri:       23.85,
	AyanamsaRaman:        22.50,
	AyanamsaKrishnamurti: 23.77,
	AyanamsaFaganBradley: 24.04,
}

// precessionRate is the annual precession in degrees per Julian year.
const precessionRate = 50.29 / 3600

// Valid reports whether the system is a recognized ayanamsa system.
func (s AyanamsaSystem) Valid() bool {
	_, ok := ayanamsaJ2000[s]
	return ok
}

// Ayanamsa returns the ayanamsa offset in degrees for a Julian Day.
// Unknown systems fall back to Lahiri.
func Ayanamsa(system AyanamsaSystem, jd float64) float64 {
	base, ok := ayanamsaJ2000[system]
	if !ok {
		base = ayanamsaJ2000[AyanamsaLahiri]
	}
	years := (jd - J2000) / DaysPerJulianYear
	return base + years*precessionRate
}

// TropicalToSidereal converts a tropical longitude to sidereal by
// subtracting the ayanamsa for the given system and Julian Day.
func TropicalToSidereal(tropical float64, system AyanamsaSystem, jd float64) float64 {
	return Normalize(tropical - Ayanamsa(system, jd))
}

// SiderealToTropical converts a sidereal longitude back to tropical.
func SiderealToTropical(sidereal float64, system AyanamsaSystem, jd float64) float64 {
	return Normalize(sidereal + Ayanamsa(system, jd))
}
