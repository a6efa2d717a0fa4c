package domain

// MapMetadata is the static rendering data of one map image. Immutable once loaded.
type MapMetadata struct {
	Key                string        `json:"key"`
	Transform          [4]float64    `json:"transform"` // scale x, margin x, scale y, margin y
	CoordinateRotation float64       `json:"coordinateRotation"`
	RawBounds          [2][2]float64 `json:"bounds"` // two corners, any order
	HeightRange        [2]float64    `json:"heightRange"`
	SvgPath            string        `json:"svgPath"`
}

// Bounds returns the min/max normalized world bounds.
func (m MapMetadata) Bounds() Bounds {
	return NewBounds(
		Point{X: m.RawBounds[0][0], Y: m.RawBounds[0][1]},
		Point{X: m.RawBounds[1][0], Y: m.RawBounds[1][1]},
	)
}

// MapMetadataCollection groups the map images published for one display map.
type MapMetadataCollection struct {
	NormalizedName string        `json:"normalizedName" validate:"required"`
	Maps           []MapMetadata `json:"maps" validate:"required,min=1,dive"`
}

// Primary returns the first map image of the collection.
func (c MapMetadataCollection) Primary() (MapMetadata, bool) {
	if len(c.Maps) == 0 {
		return MapMetadata{}, false
	}
	return c.Maps[0], true
}
