package geology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratigo/borehole-backend-go/internal/models"
)

func TestIdentifyUnitsEmptyInput(t *testing.T) {
	summary := IdentifyUnits(nil)

	assert.Empty(t, summary.Units)
	assert.Equal(t, 0, summary.TotalBoreholes)
	assert.Empty(t, summary.EntryToUnit)
}

func TestIdentifyUnitsClayAndSand(t *testing.T) {
	// three boreholes log the same firm clay band; a fourth hits dense sand
	entries := []models.BoreholeEntry{
		{BoreholeID: "BH1", DepthTop: 1.0, DepthBottom: 3.5, Description: firmClay("Firm brown CLAY")},
		{BoreholeID: "BH2", DepthTop: 0.9, DepthBottom: 3.2, Description: firmClay("Firm brown CLAY")},
		{BoreholeID: "BH3", DepthTop: 1.2, DepthBottom: 3.8, Description: firmClay("Firm brown CLAY")},
		{BoreholeID: "BH4", DepthTop: 5.0, DepthBottom: 8.0, Description: denseSand("Dense brown SAND")},
	}

	summary := IdentifyUnits(entries)
	require.Len(t, summary.Units, 2)
	assert.Equal(t, 4, summary.TotalBoreholes)

	clay := summary.Units[0]
	assert.Equal(t, 1, clay.UnitID)
	assert.Equal(t, "Firm brown CLAY", clay.TypicalDescription)
	assert.Equal(t, 3, clay.EntryCount)
	assert.ElementsMatch(t, []string{"BH1", "BH2", "BH3"}, clay.BoreholeIDs)
	assert.InDelta(t, 2.467, clay.AvgThickness, 0.05)
	assert.Equal(t, 0.9, clay.MinDepthTop)
	assert.Equal(t, 1.2, clay.MaxDepthTop)
	assert.Equal(t, 3.2, clay.MinDepthBottom)
	assert.Equal(t, 3.8, clay.MaxDepthBottom)

	sand := summary.Units[1]
	assert.Equal(t, 2, sand.UnitID)
	assert.Equal(t, 1, sand.EntryCount)
}

func TestIdentifyUnitsOrderedByMeanDepth(t *testing.T) {
	// the sand is logged first but lies deeper, so it numbers second
	entries := []models.BoreholeEntry{
		{BoreholeID: "BH1", DepthTop: 6.0, DepthBottom: 9.0, Description: denseSand("Dense SAND")},
		{BoreholeID: "BH1", DepthTop: 1.0, DepthBottom: 3.0, Description: firmClay("Firm CLAY")},
		{BoreholeID: "BH2", DepthTop: 1.1, DepthBottom: 2.9, Description: firmClay("Firm CLAY")},
	}

	summary := IdentifyUnits(entries)
	require.Len(t, summary.Units, 2)

	assert.Equal(t, "Firm CLAY", summary.Units[0].TypicalDescription)
	assert.Equal(t, "Dense SAND", summary.Units[1].TypicalDescription)

	// unit IDs are positional and units are non-decreasing in mean depth
	var prevMean float64
	for i, u := range summary.Units {
		assert.Equal(t, i+1, u.UnitID)
		mean := (u.MinDepthTop + u.MaxDepthTop) / 2
		assert.GreaterOrEqual(t, mean, prevMean)
		prevMean = mean
	}
}

func TestIdentifyUnitsPartitionInvariant(t *testing.T) {
	entries := []models.BoreholeEntry{
		{BoreholeID: "BH1", DepthTop: 0.0, DepthBottom: 1.0, Description: firmClay("Firm CLAY")},
		{BoreholeID: "BH1", DepthTop: 1.0, DepthBottom: 4.0, Description: denseSand("Dense SAND")},
		{BoreholeID: "BH2", DepthTop: 0.2, DepthBottom: 1.1, Description: firmClay("Firm CLAY")},
		{BoreholeID: "BH2", DepthTop: 1.1, DepthBottom: 5.0, Description: strongSandstone("Strong SANDSTONE")},
		{BoreholeID: "BH3", DepthTop: 0.1, DepthBottom: 0.9, Description: firmClay("Firm CLAY")},
	}

	summary := IdentifyUnits(entries)

	// every entry index maps to exactly one valid unit ID
	assert.Len(t, summary.EntryToUnit, len(entries))
	for i := range entries {
		unitID, ok := summary.EntryToUnit[i]
		assert.True(t, ok, "entry %d missing from mapping", i)
		assert.GreaterOrEqual(t, unitID, 1)
		assert.LessOrEqual(t, unitID, len(summary.Units))
	}

	// entry counts partition the input
	total := 0
	for _, u := range summary.Units {
		total += u.EntryCount
	}
	assert.Equal(t, len(entries), total)

	assert.Equal(t, 3, summary.TotalBoreholes)
}

func TestIdentifyUnitsFirstMemberIsRepresentative(t *testing.T) {
	// soft clay seeds the cluster; stiff clay joins via the seed even though
	// it is closer to the later members, showing the greedy first-member rule
	soft := models.ClassifiedDescription{
		RawDescription:  "Soft CLAY",
		MaterialType:    models.MaterialTypeSoil,
		PrimarySoilType: soilTypePtr(models.SoilTypeClay),
		Consistency:     consistencyPtr(models.ConsistencySoft),
	}
	hard := models.ClassifiedDescription{
		RawDescription:  "Hard CLAY",
		MaterialType:    models.MaterialTypeSoil,
		PrimarySoilType: soilTypePtr(models.SoilTypeClay),
		Consistency:     consistencyPtr(models.ConsistencyHard),
	}

	// soft vs hard: (1+1+0)/3 < 0.7, so hard starts its own cluster even
	// though both are clay
	entries := []models.BoreholeEntry{
		{BoreholeID: "BH1", DepthTop: 1.0, DepthBottom: 2.0, Description: soft},
		{BoreholeID: "BH2", DepthTop: 1.0, DepthBottom: 2.0, Description: hard},
	}

	summary := IdentifyUnits(entries)
	assert.Len(t, summary.Units, 2)
}
