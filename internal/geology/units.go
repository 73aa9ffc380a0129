package geology

import (
	"sort"

	"github.com/stratigo/borehole-backend-go/internal/models"
)

// IdentifyUnits groups borehole entries into geological units by greedy
// similarity clustering, then numbers the units top-down by mean depth.
//
// The clustering is a single pass in input order: each entry is compared
// against the first member of every existing cluster and joins the first one
// whose representative it matches; otherwise it starts a new cluster. The
// first member stays the representative for the cluster's lifetime, so the
// result is order-sensitive.
func IdentifyUnits(entries []models.BoreholeEntry) models.UnitSummary {
	if len(entries) == 0 {
		return models.UnitSummary{
			Units:          []models.GeologicalUnit{},
			TotalBoreholes: 0,
			EntryToUnit:    map[int]int{},
		}
	}

	// Greedy single-pass clustering against cluster representatives
	var clusters [][]int
	for i, entry := range entries {
		assigned := false
		for ci := range clusters {
			rep := entries[clusters[ci][0]]
			if AreSimilar(rep.Description, entry.Description) {
				clusters[ci] = append(clusters[ci], i)
				assigned = true
				break
			}
		}
		if !assigned {
			clusters = append(clusters, []int{i})
		}
	}

	// Number units by mean depth_top ascending; stable sort keeps discovery
	// order for clusters at the same depth
	order := make([]int, len(clusters))
	meanTops := make([]float64, len(clusters))
	for ci, members := range clusters {
		order[ci] = ci
		var sum float64
		for _, idx := range members {
			sum += entries[idx].DepthTop
		}
		meanTops[ci] = sum / float64(len(members))
	}
	sort.SliceStable(order, func(a, b int) bool {
		return meanTops[order[a]] < meanTops[order[b]]
	})

	units := make([]models.GeologicalUnit, 0, len(clusters))
	entryToUnit := make(map[int]int, len(entries))

	for pos, ci := range order {
		members := clusters[ci]
		unitID := pos + 1

		unit := buildUnit(unitID, members, entries)
		units = append(units, unit)

		for _, idx := range members {
			entryToUnit[idx] = unitID
		}
	}

	return models.UnitSummary{
		Units:          units,
		TotalBoreholes: countDistinctBoreholes(entries),
		EntryToUnit:    entryToUnit,
	}
}

// buildUnit summarizes one cluster. The first member supplies the
// representative description; depth statistics span all members.
func buildUnit(unitID int, members []int, entries []models.BoreholeEntry) models.GeologicalUnit {
	first := entries[members[0]]

	unit := models.GeologicalUnit{
		UnitID:             unitID,
		TypicalDescription: first.Description.RawDescription,
		MaterialType:       first.Description.MaterialType,
		PrimarySoilType:    first.Description.PrimarySoilType,
		PrimaryRockType:    first.Description.PrimaryRockType,
		Consistency:        first.Description.Consistency,
		Density:            first.Description.Density,
		RockStrength:       first.Description.RockStrength,
		MinDepthTop:        first.DepthTop,
		MaxDepthTop:        first.DepthTop,
		MinDepthBottom:     first.DepthBottom,
		MaxDepthBottom:     first.DepthBottom,
		EntryCount:         len(members),
	}

	seen := make(map[string]bool)
	var totalThickness float64

	for _, idx := range members {
		entry := entries[idx]

		if entry.DepthTop < unit.MinDepthTop {
			unit.MinDepthTop = entry.DepthTop
		}
		if entry.DepthTop > unit.MaxDepthTop {
			unit.MaxDepthTop = entry.DepthTop
		}
		if entry.DepthBottom < unit.MinDepthBottom {
			unit.MinDepthBottom = entry.DepthBottom
		}
		if entry.DepthBottom > unit.MaxDepthBottom {
			unit.MaxDepthBottom = entry.DepthBottom
		}

		totalThickness += entry.DepthBottom - entry.DepthTop

		if !seen[entry.BoreholeID] {
			seen[entry.BoreholeID] = true
			unit.BoreholeIDs = append(unit.BoreholeIDs, entry.BoreholeID)
		}
	}

	unit.AvgThickness = totalThickness / float64(len(members))
	return unit
}

func countDistinctBoreholes(entries []models.BoreholeEntry) int {
	seen := make(map[string]bool)
	for _, e := range entries {
		seen[e.BoreholeID] = true
	}
	return len(seen)
}
