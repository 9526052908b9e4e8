package model

// FundingRound is a source-tagged funding event keyed by the raw company
// name at extraction time. The persistence layer joins it to a canonical
// company id by name; the engine never deduplicates events.
type FundingRound struct {
	CompanyName            string   `json:"company_name"`
	RoundType              string   `json:"round_type"`
	RoundName              string   `json:"round_name,omitempty"`
	Amount                 float64  `json:"amount,omitempty"`
	Currency               string   `json:"currency"`
	AmountUSD              float64  `json:"amount_usd,omitempty"`
	IsDisclosed            bool     `json:"is_disclosed"`
	AnnouncedDate          string   `json:"announced_date,omitempty"`
	LeadInvestors          []string `json:"lead_investors,omitempty"`
	ParticipatingInvestors []string `json:"participating_investors,omitempty"`
	Source                 string   `json:"source"`
	SourceURL              string   `json:"source_url,omitempty"`

	// Set by the persistence layer after joining to a canonical company.
	CompanyID int64 `json:"company_id,omitempty"`
}

// Update types for CompanyUpdate.
const (
	UpdateTypeFunding = "funding"
	UpdateTypeNews    = "news"
)

// CompanyUpdate is a source-tagged news/funding mention keyed by the raw
// company name. Exactly one update is emitted per raw record.
type CompanyUpdate struct {
	CompanyName string `json:"company_name"`
	UpdateType  string `json:"update_type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	SourceName  string `json:"source_name"`
	SourceURL   string `json:"source_url,omitempty"`
	UpdateDate  string `json:"update_date,omitempty"`

	CompanyID int64 `json:"company_id,omitempty"`
}
