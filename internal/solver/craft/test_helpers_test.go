package craft

import (
	"github.com/napolitain/solver-craft/internal/models"
)

// newTestSetting creates a small setting that solves quickly
func newTestSetting(maxDurability, maxCP int, sustain bool) models.Setting {
	return models.Setting{
		MaxDurability:           maxDurability,
		MaxCP:                   maxCP,
		Sustain:                 sustain,
		ProcessAccuracy:         2910,
		RequiredProcessAccuracy: 2540,
	}
}

// flatSetting makes the quality formula easy to compute by hand
func flatSetting() models.Setting {
	return models.Setting{
		MaxDurability:           55,
		MaxCP:                   657,
		ProcessAccuracy:         100,
		RequiredProcessAccuracy: 100,
	}
}
