package triangulate

import (
	"github.com/lemina/startup-cli/internal/model"
)

// merge folds a matched record's fields into the existing entity in place.
// Idempotent per distinct source: the source-id set deduplicates, so merging
// the same source+record twice changes nothing after the first merge.
//
// Field rules, in order:
//   - long description: longer-wins (not latest-wins)
//   - short description: first-wins
//   - founders: set union
//   - source bookkeeping: append + recompute verification tier
//   - sub-sector, then scalar fields: fill-if-missing
//   - regulatory flags: boolean OR, sticky once true
func merge(existing *model.Company, rec model.RawRecord) {
	if rec.LongDescription != "" &&
		(existing.LongDescription == "" || len(rec.LongDescription) > len(existing.LongDescription)) {
		existing.LongDescription = rec.LongDescription
	}

	if existing.ShortDescription == "" {
		existing.ShortDescription = rec.ShortDescription
	}

	for _, f := range rec.Founders {
		if !existing.HasFounder(f) {
			existing.Founders = append(existing.Founders, f)
		}
	}

	existing.AddSource(rec.Source, rec.SourceURL)

	if existing.SubSector == "" {
		existing.SubSector = rec.SubSector
	}

	if existing.Website == "" {
		existing.Website = rec.Website
	}
	if existing.FoundedYear == 0 {
		existing.FoundedYear = rec.FoundedYear
	}
	if existing.TeamSize == 0 {
		existing.TeamSize = rec.TeamSize
	}
	if existing.LinkedInURL == "" {
		existing.LinkedInURL = rec.LinkedInURL
	}
	if existing.TwitterURL == "" {
		existing.TwitterURL = rec.TwitterURL
	}
	if existing.Sector == "" {
		existing.Sector = rec.Sector
	}
	if existing.BusinessModel == "" {
		existing.BusinessModel = rec.BusinessModel
	}

	existing.CACVerified = existing.CACVerified || rec.CACVerified
	existing.CBNLicensed = existing.CBNLicensed || rec.CBNLicensed
	existing.SECRegistered = existing.SECRegistered || rec.SECRegistered
	existing.NAICOMLicensed = existing.NAICOMLicensed || rec.NAICOMLicensed
}
