package geology

import (
	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/spatial"
)

func soilTypePtr(v models.SoilType) *models.SoilType { return &v }
func rockTypePtr(v models.RockType) *models.RockType { return &v }
func consistencyPtr(v models.Consistency) *models.Consistency { return &v }
func densityPtr(v models.Density) *models.Density { return &v }
func rockStrengthPtr(v models.RockStrength) *models.RockStrength { return &v }
func weatheringPtr(v models.WeatheringGrade) *models.WeatheringGrade { return &v }

// firmClay builds the classified form of "Firm brown CLAY"
func firmClay(raw string) models.ClassifiedDescription {
	return models.ClassifiedDescription{
		RawDescription:  raw,
		MaterialType:    models.MaterialTypeSoil,
		PrimarySoilType: soilTypePtr(models.SoilTypeClay),
		Consistency:     consistencyPtr(models.ConsistencyFirm),
	}
}

// denseSand builds the classified form of "Dense brown SAND"
func denseSand(raw string) models.ClassifiedDescription {
	return models.ClassifiedDescription{
		RawDescription:  raw,
		MaterialType:    models.MaterialTypeSoil,
		PrimarySoilType: soilTypePtr(models.SoilTypeSand),
		Density:         densityPtr(models.DensityDense),
	}
}

// strongSandstone builds a classified rock description
func strongSandstone(raw string) models.ClassifiedDescription {
	return models.ClassifiedDescription{
		RawDescription:  raw,
		MaterialType:    models.MaterialTypeRock,
		PrimaryRockType: rockTypePtr(models.RockTypeSandstone),
		RockStrength:    rockStrengthPtr(models.RockStrengthStrong),
	}
}

// unitAt builds a one-interval spatial unit at the given collar
func unitAt(borehole string, x, y float64, top, bottom float64, desc models.ClassifiedDescription) models.SpatialUnit {
	return models.SpatialUnit{
		BoreholeID:   borehole,
		Location:     spatial.Point3D{X: x, Y: y, Z: 0},
		DepthTop:     top,
		DepthBottom:  bottom,
		Description:  desc,
		MaterialType: desc.MaterialType,
	}
}
