package models

// GeologicalUnit is a stratigraphic layer inferred to be the same material
// across one or more boreholes. The representative fields come from the first
// entry clustered into the unit.
type GeologicalUnit struct {
	UnitID             int           `json:"unit_id"`
	TypicalDescription string        `json:"typical_description"`
	MaterialType       MaterialType  `json:"material_type"`
	PrimarySoilType    *SoilType     `json:"primary_soil_type,omitempty"`
	PrimaryRockType    *RockType     `json:"primary_rock_type,omitempty"`
	Consistency        *Consistency  `json:"consistency,omitempty"`
	Density            *Density      `json:"density,omitempty"`
	RockStrength       *RockStrength `json:"rock_strength,omitempty"`

	MinDepthTop    float64 `json:"min_depth_top"`
	MaxDepthTop    float64 `json:"max_depth_top"`
	MinDepthBottom float64 `json:"min_depth_bottom"`
	MaxDepthBottom float64 `json:"max_depth_bottom"`
	AvgThickness   float64 `json:"avg_thickness"`

	BoreholeIDs []string `json:"borehole_ids"`
	EntryCount  int      `json:"entry_count"`
}

// UnitSummary is the unit-identification result. EntryToUnit maps every input
// entry's original index to the unit it was assigned; unit IDs are the
// contiguous range 1..len(Units).
type UnitSummary struct {
	Units          []GeologicalUnit `json:"units"`
	TotalBoreholes int              `json:"total_boreholes"`
	EntryToUnit    map[int]int      `json:"entry_to_unit"`
}
