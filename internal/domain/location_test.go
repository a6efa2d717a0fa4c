package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationTable_CoversEveryLocation(t *testing.T) {
	locs := AllLocations()
	assert.Len(t, locs, 12)

	for _, loc := range locs {
		info, ok := loc.Info()
		require.True(t, ok, "location %s has no info", loc)
		assert.NotEmpty(t, info.Display)
		assert.NotEmpty(t, info.Slug)
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		input   string
		want    Location
		wantErr bool
	}{
		{"bigmap", LocationCustoms, false},
		{"customs", LocationCustoms, false},
		{"factory-night", LocationFactoryNight, false},
		{"sandbox_high", LocationGroundZeroHigh, false},
		{"atlantis", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLocation(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayLocation_Variants(t *testing.T) {
	assert.ElementsMatch(t, []Location{LocationFactoryDay, LocationFactoryNight}, DisplayFactory.Variants())
	assert.ElementsMatch(t, []Location{LocationGroundZeroLow, LocationGroundZeroHigh}, DisplayGroundZero.Variants())
	assert.Equal(t, []Location{LocationWoods}, DisplayWoods.Variants())
}

func TestDisplayLocationForMapMetadata(t *testing.T) {
	d, ok := DisplayLocationForMapMetadata("the-lab")
	assert.True(t, ok)
	assert.Equal(t, DisplayLabs, d)

	_, ok = DisplayLocationForMapMetadata("terminal")
	assert.False(t, ok)
}
