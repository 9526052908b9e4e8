package triangulate

import (
	"fmt"

	"github.com/lemina/startup-cli/internal/model"
)

// extractFundingRounds collects a FundingRound for every raw record carrying
// funding sub-data. Events stay keyed by the raw company name; no
// deduplication happens here, duplicate mentions produce duplicate events
// and the persistence layer joins them to resolved company ids.
func extractFundingRounds(raw map[string][]model.RawRecord) []model.FundingRound {
	var rounds []model.FundingRound

	for _, source := range sortedSources(raw) {
		for _, rec := range raw[source] {
			f := rec.Funding
			if f == nil || rec.Name == "" {
				continue
			}

			roundType := f.RoundType
			if roundType == "" {
				roundType = "seed"
			}
			currency := f.Currency
			if currency == "" {
				currency = "usd"
			}

			rounds = append(rounds, model.FundingRound{
				CompanyName:            rec.Name,
				RoundType:              roundType,
				RoundName:              f.RoundName,
				Amount:                 f.Amount,
				Currency:               currency,
				AmountUSD:              f.AmountUSD,
				IsDisclosed:            f.IsDisclosed,
				AnnouncedDate:          f.AnnouncedDate,
				LeadInvestors:          f.LeadInvestors,
				ParticipatingInvestors: f.ParticipatingInvestors,
				Source:                 recSource(rec, source),
				SourceURL:              rec.SourceURL,
			})
		}
	}

	return rounds
}

// extractUpdates emits exactly one CompanyUpdate per raw record, tagged
// "funding" when funding data is present and "news" otherwise.
func extractUpdates(raw map[string][]model.RawRecord) []model.CompanyUpdate {
	var updates []model.CompanyUpdate

	for _, source := range sortedSources(raw) {
		for _, rec := range raw[source] {
			if rec.Name == "" {
				continue
			}

			updateType := model.UpdateTypeNews
			if rec.Funding != nil {
				updateType = model.UpdateTypeFunding
			}

			updates = append(updates, model.CompanyUpdate{
				CompanyName: rec.Name,
				UpdateType:  updateType,
				Title:       fmt.Sprintf("%s - %s article", rec.Name, source),
				Description: rec.ShortDescription,
				SourceName:  recSource(rec, source),
				SourceURL:   rec.SourceURL,
			})
		}
	}

	return updates
}

func recSource(rec model.RawRecord, fallback string) string {
	if rec.Source != "" {
		return rec.Source
	}
	return fallback
}
