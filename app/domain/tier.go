package domain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TierName identifies a subscription level
type TierName string

const (
	TierFree    TierName = "free"
	TierCreator TierName = "creator"
	TierStudio  TierName = "studio"
)

// Resource identifies a usage-limited resource kind
type Resource string

const (
	ResourcePhotospheres Resource = "photospheres"
	ResourcePhotos       Resource = "photos"
)

// Feature names gated by tier
const (
	FeatureCustomBranding  = "custom_branding"
	FeatureHDExport        = "hd_export"
	FeaturePrivateGalleries = "private_galleries"
	FeatureAPIAccess       = "api_access"
)

// Usage holds a profile's counters keyed by resource
type Usage map[Resource]int

// TierDefinition maps a tier to its feature flags and numeric limits
type TierDefinition struct {
	Features         []string `yaml:"features" json:"features"`
	MaxPhotospheres  int      `yaml:"max_photospheres" json:"max_photospheres"`
	MaxPhotos        int      `yaml:"max_photos" json:"max_photos"`
}

// Limit returns the numeric limit for a resource kind. Unknown resource
// kinds are limited to zero.
func (d TierDefinition) Limit(resource Resource) int {
	switch resource {
	case ResourcePhotospheres:
		return d.MaxPhotospheres
	case ResourcePhotos:
		return d.MaxPhotos
	default:
		return 0
	}
}

// TierTable is the static capability table. It is defined once per
// process lifetime and never persisted. Lookups against unrecognized
// tier names fall back to the most restrictive tier and fail closed.
type TierTable struct {
	tiers       map[TierName]TierDefinition
	restrictive TierName
}

// DefaultTierTable returns the built-in capability table.
func DefaultTierTable() *TierTable {
	return &TierTable{
		restrictive: TierFree,
		tiers: map[TierName]TierDefinition{
			TierFree: {
				Features:        []string{},
				MaxPhotospheres: 3,
				MaxPhotos:       50,
			},
			TierCreator: {
				Features:        []string{FeatureHDExport, FeaturePrivateGalleries},
				MaxPhotospheres: 25,
				MaxPhotos:       1000,
			},
			TierStudio: {
				Features:        []string{FeatureHDExport, FeaturePrivateGalleries, FeatureCustomBranding, FeatureAPIAccess},
				MaxPhotospheres: 200,
				MaxPhotos:       20000,
			},
		},
	}
}

// LoadTierTable reads a tier table override from a YAML file. Missing
// tiers inherit nothing: the file must be complete, and the free tier
// must be present because it is the fail-safe fallback.
func LoadTierTable(path string) (*TierTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier table: %w", err)
	}

	var raw map[TierName]TierDefinition
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tier table: %w", err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("tier table is empty")
	}

	if _, ok := raw[TierFree]; !ok {
		return nil, fmt.Errorf("tier table must define the %q tier", TierFree)
	}

	return &TierTable{tiers: raw, restrictive: TierFree}, nil
}

// Known reports whether the tier name is present in the table
func (t *TierTable) Known(tier TierName) bool {
	_, ok := t.tiers[tier]
	return ok
}

// Definition returns the definition for a tier, falling back to the
// most restrictive tier for unknown names.
func (t *TierTable) Definition(tier TierName) TierDefinition {
	if def, ok := t.tiers[tier]; ok {
		return def
	}
	return t.tiers[t.restrictive]
}

// Allows reports whether the tier grants the named feature. Unknown
// tiers never grant anything.
func (t *TierTable) Allows(tier TierName, feature string) bool {
	def, ok := t.tiers[tier]
	if !ok {
		return false
	}
	for _, f := range def.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// LimitReached reports whether usage has reached the tier's limit for
// the resource kind. Unknown tiers are judged against the most
// restrictive tier's limits.
func (t *TierTable) LimitReached(tier TierName, resource Resource, usage Usage) bool {
	def := t.Definition(tier)
	return usage[resource] >= def.Limit(resource)
}
