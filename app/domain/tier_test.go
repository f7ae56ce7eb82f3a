package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTierTable(t *testing.T) {
	table := DefaultTierTable()

	assert.True(t, table.Known(TierFree))
	assert.True(t, table.Known(TierCreator))
	assert.True(t, table.Known(TierStudio))
	assert.False(t, table.Known(TierName("platinum")))

	assert.Equal(t, 3, table.Definition(TierFree).MaxPhotospheres)
	assert.Equal(t, 200, table.Definition(TierStudio).MaxPhotospheres)
}

func TestTierTable_UnknownTierFailsClosed(t *testing.T) {
	table := DefaultTierTable()
	unknown := TierName("platinum")

	// unknown tiers fall back to the most restrictive definition
	assert.Equal(t, table.Definition(TierFree), table.Definition(unknown))
	assert.False(t, table.Allows(unknown, FeatureHDExport))
	assert.False(t, table.Allows(unknown, FeatureAPIAccess))
	assert.True(t, table.LimitReached(unknown, ResourcePhotospheres, Usage{ResourcePhotospheres: 3}))
}

func TestTierTable_Allows(t *testing.T) {
	table := DefaultTierTable()

	tests := []struct {
		tier    TierName
		feature string
		want    bool
	}{
		{TierFree, FeatureHDExport, false},
		{TierFree, FeatureCustomBranding, false},
		{TierCreator, FeatureHDExport, true},
		{TierCreator, FeaturePrivateGalleries, true},
		{TierCreator, FeatureAPIAccess, false},
		{TierStudio, FeatureAPIAccess, true},
		{TierStudio, FeatureCustomBranding, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Allows(tt.tier, tt.feature), "%s/%s", tt.tier, tt.feature)
	}
}

func TestTierTable_LimitReached(t *testing.T) {
	table := DefaultTierTable()

	assert.False(t, table.LimitReached(TierFree, ResourcePhotospheres, Usage{ResourcePhotospheres: 2}))
	assert.True(t, table.LimitReached(TierFree, ResourcePhotospheres, Usage{ResourcePhotospheres: 3}))
	assert.True(t, table.LimitReached(TierFree, ResourcePhotos, Usage{ResourcePhotos: 50}))
	assert.False(t, table.LimitReached(TierStudio, ResourcePhotos, Usage{ResourcePhotos: 50}))
}

func TestLoadTierTable(t *testing.T) {
	t.Run("valid override replaces the defaults", func(t *testing.T) {
		path := writeTierFile(t, `
free:
  features: []
  max_photospheres: 5
  max_photos: 100
creator:
  features: [hd_export]
  max_photospheres: 50
  max_photos: 2000
`)
		table, err := LoadTierTable(path)
		require.NoError(t, err)

		assert.Equal(t, 5, table.Definition(TierFree).MaxPhotospheres)
		assert.True(t, table.Allows(TierCreator, FeatureHDExport))
		assert.False(t, table.Known(TierStudio))
	})

	t.Run("missing free tier is rejected", func(t *testing.T) {
		path := writeTierFile(t, `
creator:
  features: []
  max_photospheres: 50
  max_photos: 2000
`)
		_, err := LoadTierTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "free")
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		path := writeTierFile(t, "")
		_, err := LoadTierTable(path)
		require.Error(t, err)
	})

	t.Run("missing file is reported", func(t *testing.T) {
		_, err := LoadTierTable(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func writeTierFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
