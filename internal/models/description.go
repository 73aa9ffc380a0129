package models

import "strings"

// MaterialType represents the broad class of a geological material
type MaterialType int

const (
	MaterialTypeSoil MaterialType = iota
	MaterialTypeRock
)

func (m MaterialType) String() string {
	switch m {
	case MaterialTypeSoil:
		return "soil"
	case MaterialTypeRock:
		return "rock"
	default:
		return "unknown"
	}
}

// ParseMaterialType parses a material type from its string form
func ParseMaterialType(s string) (MaterialType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soil":
		return MaterialTypeSoil, true
	case "rock":
		return MaterialTypeRock, true
	default:
		return MaterialTypeSoil, false
	}
}

// Consistency represents cohesive soil consistency
// Ordered from weakest to strongest; range grades follow the single grades
type Consistency int

const (
	ConsistencyVerySoft Consistency = iota
	ConsistencySoft
	ConsistencyFirm
	ConsistencyStiff
	ConsistencyVeryStiff
	ConsistencyHard
	ConsistencySoftToFirm
	ConsistencyFirmToStiff
	ConsistencyStiffToVeryStiff
)

var consistencyNames = []string{
	"very soft", "soft", "firm", "stiff", "very stiff", "hard",
	"soft to firm", "firm to stiff", "stiff to very stiff",
}

func (c Consistency) String() string {
	if int(c) >= 0 && int(c) < len(consistencyNames) {
		return consistencyNames[c]
	}
	return "unknown"
}

// ParseConsistency parses a consistency grade from its string form
func ParseConsistency(s string) (Consistency, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, name := range consistencyNames {
		if name == needle {
			return Consistency(i), true
		}
	}
	return 0, false
}

// Density represents granular soil relative density
type Density int

const (
	DensityVeryLoose Density = iota
	DensityLoose
	DensityMediumDense
	DensityDense
	DensityVeryDense
)

var densityNames = []string{"very loose", "loose", "medium dense", "dense", "very dense"}

func (d Density) String() string {
	if int(d) >= 0 && int(d) < len(densityNames) {
		return densityNames[d]
	}
	return "unknown"
}

// ParseDensity parses a density grade from its string form
func ParseDensity(s string) (Density, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, name := range densityNames {
		if name == needle {
			return Density(i), true
		}
	}
	return 0, false
}

// RockStrength represents rock material strength
type RockStrength int

const (
	RockStrengthVeryWeak RockStrength = iota
	RockStrengthWeak
	RockStrengthModeratelyWeak
	RockStrengthModeratelyStrong
	RockStrengthStrong
	RockStrengthVeryStrong
	RockStrengthExtremelyStrong
)

var rockStrengthNames = []string{
	"very weak", "weak", "moderately weak", "moderately strong",
	"strong", "very strong", "extremely strong",
}

func (r RockStrength) String() string {
	if int(r) >= 0 && int(r) < len(rockStrengthNames) {
		return rockStrengthNames[r]
	}
	return "unknown"
}

// ParseRockStrength parses a rock strength grade from its string form
func ParseRockStrength(s string) (RockStrength, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, name := range rockStrengthNames {
		if name == needle {
			return RockStrength(i), true
		}
	}
	return 0, false
}

// WeatheringGrade represents the degree of rock weathering
type WeatheringGrade int

const (
	WeatheringGradeFresh WeatheringGrade = iota
	WeatheringGradeSlightly
	WeatheringGradeModerately
	WeatheringGradeHighly
	WeatheringGradeCompletely
)

var weatheringNames = []string{
	"fresh", "slightly weathered", "moderately weathered",
	"highly weathered", "completely weathered",
}

func (w WeatheringGrade) String() string {
	if int(w) >= 0 && int(w) < len(weatheringNames) {
		return weatheringNames[w]
	}
	return "unknown"
}

// ParseWeatheringGrade parses a weathering grade from its string form
func ParseWeatheringGrade(s string) (WeatheringGrade, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, name := range weatheringNames {
		if name == needle {
			return WeatheringGrade(i), true
		}
	}
	return 0, false
}

// SoilType represents the primary soil constituent
type SoilType int

const (
	SoilTypeClay SoilType = iota
	SoilTypeSilt
	SoilTypeSand
	SoilTypeGravel
	SoilTypePeat
	SoilTypeOrganic
)

var soilTypeNames = []string{"CLAY", "SILT", "SAND", "GRAVEL", "PEAT", "ORGANIC"}

func (s SoilType) String() string {
	if int(s) >= 0 && int(s) < len(soilTypeNames) {
		return soilTypeNames[s]
	}
	return "unknown"
}

// ParseSoilType parses a primary soil type from its string form
func ParseSoilType(s string) (SoilType, bool) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range soilTypeNames {
		if name == needle {
			return SoilType(i), true
		}
	}
	return 0, false
}

// RockType represents the primary rock lithology
type RockType int

const (
	RockTypeLimestone RockType = iota
	RockTypeSandstone
	RockTypeMudstone
	RockTypeShale
	RockTypeGranite
	RockTypeBasalt
	RockTypeChalk
	RockTypeDolomite
	RockTypeQuartzite
	RockTypeSlate
	RockTypeSchist
	RockTypeGneiss
	RockTypeMarble
	RockTypeConglomerate
	RockTypeBreccia
)

var rockTypeNames = []string{
	"LIMESTONE", "SANDSTONE", "MUDSTONE", "SHALE", "GRANITE",
	"BASALT", "CHALK", "DOLOMITE", "QUARTZITE", "SLATE",
	"SCHIST", "GNEISS", "MARBLE", "CONGLOMERATE", "BRECCIA",
}

func (r RockType) String() string {
	if int(r) >= 0 && int(r) < len(rockTypeNames) {
		return rockTypeNames[r]
	}
	return "unknown"
}

// ParseRockType parses a primary rock type from its string form
func ParseRockType(s string) (RockType, bool) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range rockTypeNames {
		if name == needle {
			return RockType(i), true
		}
	}
	return 0, false
}

// ClassifiedDescription is a structured geological description as produced by
// the upstream description parser. Only MaterialType is mandatory; every other
// attribute is optional and nil when the source text did not mention it.
type ClassifiedDescription struct {
	RawDescription  string           `json:"raw_description"`
	MaterialType    MaterialType     `json:"material_type"`
	PrimarySoilType *SoilType        `json:"primary_soil_type,omitempty"`
	PrimaryRockType *RockType        `json:"primary_rock_type,omitempty"`
	Consistency     *Consistency     `json:"consistency,omitempty"`
	Density         *Density         `json:"density,omitempty"`
	RockStrength    *RockStrength    `json:"rock_strength,omitempty"`
	WeatheringGrade *WeatheringGrade `json:"weathering_grade,omitempty"`
}
