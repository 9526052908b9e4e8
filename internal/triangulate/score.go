package triangulate

import (
	"github.com/lemina/startup-cli/internal/model"
)

// Quality score weights. Base plus completeness bonuses plus a corroboration
// bonus read from the final source count, clamped to 100.
const (
	scoreBase             = 50
	bonusWebsite          = 10
	bonusShortDescription = 5 // only when longer than shortDescMinLen
	bonusLongDescription  = 5
	bonusFounders         = 5
	bonusSector           = 5 // not awarded for the "other" sentinel

	shortDescMinLen = 50

	bonusThreeSources = 20
	bonusTwoSources   = 10
	bonusOneSource    = 5

	scoreMax = 100
)

// sectorOther is the sentinel upstream extraction assigns when no sector
// keyword matched; it carries no information and earns no bonus.
const sectorOther = "other"

// scoreAll computes the data quality score for each finalized entity. Must
// run only after all merges settle: the corroboration bonus depends on the
// final source count and the completeness bonuses on final field state.
func scoreAll(companies []*model.Company) {
	for _, c := range companies {
		c.DataQualityScore = qualityScore(c)
	}
}

func qualityScore(c *model.Company) int {
	score := scoreBase

	if c.Website != "" {
		score += bonusWebsite
	}
	if len(c.ShortDescription) > shortDescMinLen {
		score += bonusShortDescription
	}
	if c.LongDescription != "" {
		score += bonusLongDescription
	}
	if len(c.Founders) > 0 {
		score += bonusFounders
	}
	if c.Sector != "" && c.Sector != sectorOther {
		score += bonusSector
	}

	switch n := len(c.Sources); {
	case n >= 3:
		score += bonusThreeSources
	case n == 2:
		score += bonusTwoSources
	case n == 1:
		score += bonusOneSource
	}

	if score > scoreMax {
		score = scoreMax
	}
	return score
}
