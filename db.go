package landinggear

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/aircraft_db.csv data/tyre_db.csv data/as4716_seal_db.csv
var dataFS embed.FS

// AircraftData holds the mass properties and tyre fitment for one aircraft,
// keyed by its name in the aircraft database.
type AircraftData struct {
	Name             string
	MTOM             float64 // Maximum takeoff mass [kg]
	MLM              float64 // Maximum landing mass [kg]
	NumMainTyres     int     // Total tyres across all main gear legs
	MainGearTyreCode string
	NoseGearTyreCode string
}

// TyreData holds the physical properties of one tyre, converted to SI on
// load. The database publishes diameters and radii in inches and rated loads
// in pounds-force.
type TyreData struct {
	Code          string
	OuterDiameter float64 // Maximum outer diameter [m]
	StaticRadius  float64 // Maximum static (loaded) radius [m]
	RatedLoad     float64 // Rated load per tyre [N]
}

// OuterRadius returns half the maximum outer diameter [m].
func (t TyreData) OuterRadius() float64 { return t.OuterDiameter / 2 }

// UsableStroke returns the radial deflection available between the unloaded
// outer radius and the fully loaded static radius [m].
func (t TyreData) UsableStroke() float64 { return t.OuterRadius() - t.StaticRadius }

// SealGland is one row of the AS4716 standard gland table. Bore is the "C"
// dimension in inches; rows are kept in ascending bore order so the
// round-up-to-next-standard-size selection can scan front to back.
type SealGland struct {
	Dash string  // Dash number, e.g. "-332"
	Bore float64 // Gland bore (C dimension) [in]
}

var (
	loadTablesOnce sync.Once
	aircraftByName map[string]AircraftData
	tyreByCode     map[string]TyreData
	sealGlands     []SealGland
)

// LookupAircraft returns the database row for the named aircraft. The match
// is exact; a miss wraps ErrAircraftNotFound.
func LookupAircraft(name string) (AircraftData, error) {
	loadTablesOnce.Do(loadTables)
	ac, ok := aircraftByName[name]
	if !ok {
		return AircraftData{}, fmt.Errorf("aircraft %q: %w", name, ErrAircraftNotFound)
	}
	return ac, nil
}

// LookupTyre returns the database row for the given tyre code. The match is
// exact; a miss wraps ErrTyreNotFound.
func LookupTyre(code string) (TyreData, error) {
	loadTablesOnce.Do(loadTables)
	tyre, ok := tyreByCode[code]
	if !ok {
		return TyreData{}, fmt.Errorf("tyre %q: %w", code, ErrTyreNotFound)
	}
	return tyre, nil
}

// StandardSealGlands returns the AS4716 gland table in ascending bore order.
// The returned slice is shared; callers must not modify it.
func StandardSealGlands() []SealGland {
	loadTablesOnce.Do(loadTables)
	return sealGlands
}

func loadTables() {
	aircraftByName = make(map[string]AircraftData)
	mungeCSV("aircraft_db.csv",
		[]string{"name", "mtom", "mlm", "num_main_tyres", "main_gear_tyre_code", "nose_gear_tyre_code"},
		func(s []string) {
			aircraftByName[s[0]] = AircraftData{
				Name:             s[0],
				MTOM:             parseNumeric("mtom", s[1]),
				MLM:              parseNumeric("mlm", s[2]),
				NumMainTyres:     int(parseNumeric("num_main_tyres", s[3])),
				MainGearTyreCode: s[4],
				NoseGearTyreCode: s[5],
			}
		})

	tyreByCode = make(map[string]TyreData)
	mungeCSV("tyre_db.csv",
		[]string{"tyre_code", "do_max_in", "static_radius_max_in", "rated_load_lbs"},
		func(s []string) {
			tyreByCode[s[0]] = TyreData{
				Code:          s[0],
				OuterDiameter: parseNumeric("do_max_in", s[1]) * MetersPerInch,
				StaticRadius:  parseNumeric("static_radius_max_in", s[2]) * MetersPerInch,
				RatedLoad:     parseNumeric("rated_load_lbs", s[3]) * NewtonsPerPoundForce,
			}
		})

	prevBore := 0.0
	mungeCSV("as4716_seal_db.csv",
		[]string{"dash", "C"},
		func(s []string) {
			bore := parseNumeric("C", s[1])
			if bore <= prevBore {
				panic(fmt.Sprintf("as4716_seal_db.csv: bores not in ascending order at dash %s", s[0]))
			}
			prevBore = bore
			sealGlands = append(sealGlands, SealGland{Dash: s[0], Bore: bore})
		})
}

// mungeCSV parses one of the embedded CSV databases, resolving the requested
// header fields to column indices and invoking the callback with the
// requested fields of each record, in order. The databases ship inside the
// binary, so any parse failure is a build defect and panics.
func mungeCSV(filename string, fields []string, callback func([]string)) {
	f, err := dataFS.Open("data/" + filename)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", filename, err))
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		panic(fmt.Sprintf("%s: error parsing CSV header: %v", filename, err))
	}
	fieldIndices := make([]int, 0, len(fields))
	for _, field := range fields {
		idx := -1
		for hi, h := range header {
			if field == strings.TrimSpace(h) {
				idx = hi
				break
			}
		}
		if idx == -1 {
			panic(fmt.Sprintf("%s: field %q not found in header", filename, field))
		}
		fieldIndices = append(fieldIndices, idx)
	}

	strs := make([]string, 0, len(fields))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			panic(fmt.Sprintf("%s: error parsing CSV file: %v", filename, err))
		}
		for _, i := range fieldIndices {
			strs = append(strs, record[i])
		}
		callback(strs)
		strs = strs[:0]
	}
}

// parseNumeric parses a numeric database field, tolerating thousands
// separators ("50,000"). Malformed values in the embedded tables are fatal.
func parseNumeric(field, s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil {
		panic(fmt.Sprintf("field %s: cannot parse %q as number", field, s))
	}
	return v
}
