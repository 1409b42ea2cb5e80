package landinggear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitConversions(t *testing.T) {
	// These factors are contractual; every conversion path depends on them.
	assert.Equal(t, 0.0254, MetersPerInch)
	assert.Equal(t, 0.3048, MetersPerFoot)
	assert.Equal(t, 4.44822, NewtonsPerPoundForce)
}

func TestLookupAircraft(t *testing.T) {
	ac, err := LookupAircraft("A320")
	require.NoError(t, err)

	assert.Equal(t, "A320", ac.Name)
	assert.Equal(t, 78000.0, ac.MTOM)
	assert.Equal(t, 66000.0, ac.MLM)
	assert.Equal(t, 4, ac.NumMainTyres)
	assert.Equal(t, "1270x455R22", ac.MainGearTyreCode)
	assert.Equal(t, "30x8.8R15", ac.NoseGearTyreCode)
}

func TestLookupAircraft_NotFound(t *testing.T) {
	_, err := LookupAircraft("DC-3")
	require.ErrorIs(t, err, ErrAircraftNotFound)
	assert.Contains(t, err.Error(), "DC-3")
}

func TestLookupTyre(t *testing.T) {
	tyre, err := LookupTyre("H49x19.0-22")
	require.NoError(t, err)

	assert.Equal(t, "H49x19.0-22", tyre.Code)
	assert.InDelta(t, 49.5*MetersPerInch, tyre.OuterDiameter, 1e-12)
	assert.InDelta(t, 20.5*MetersPerInch, tyre.StaticRadius, 1e-12)
	// The rated load is stored with a thousands separator ("50,000") and
	// must normalize before conversion to newtons.
	assert.InDelta(t, 50000*NewtonsPerPoundForce, tyre.RatedLoad, 1e-9)

	assert.InDelta(t, tyre.OuterDiameter/2, tyre.OuterRadius(), 1e-12)
	assert.Greater(t, tyre.UsableStroke(), 0.0,
		"outer radius must exceed static radius")
}

func TestLookupTyre_NotFound(t *testing.T) {
	_, err := LookupTyre("99x9.9R99")
	require.ErrorIs(t, err, ErrTyreNotFound)
}

func TestStandardSealGlands(t *testing.T) {
	glands := StandardSealGlands()
	require.NotEmpty(t, glands)

	for i := 1; i < len(glands); i++ {
		assert.Greater(t, glands[i].Bore, glands[i-1].Bore,
			"gland bores must ascend for the round-up selection to be minimal")
	}
}

func TestParseNumeric(t *testing.T) {
	assert.Equal(t, 50000.0, parseNumeric("rated_load_lbs", "50,000"))
	assert.Equal(t, 49.5, parseNumeric("do_max_in", " 49.5"))

	assert.Panics(t, func() { parseNumeric("rated_load_lbs", "fifty") },
		"malformed numeric fields in the embedded tables are fatal")
}

func TestAllAircraftTyreCodesResolve(t *testing.T) {
	// Every tyre code referenced by the aircraft table must have a tyre row,
	// and every tyre must have physically ordered radii.
	for _, name := range []string{"A320", "A321", "A350-900", "B737-800", "E190"} {
		ac, err := LookupAircraft(name)
		require.NoError(t, err)

		for _, code := range []string{ac.MainGearTyreCode, ac.NoseGearTyreCode} {
			tyre, err := LookupTyre(code)
			require.NoErrorf(t, err, "%s references %s", name, code)
			assert.Greater(t, tyre.OuterRadius(), tyre.StaticRadius, code)
			assert.Greater(t, tyre.RatedLoad, 0.0, code)
		}
	}
}
