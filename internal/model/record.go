// Package model defines the data types flowing through the scraping and
// triangulation pipeline: per-source raw records, the canonical company
// entity, and the event records derived alongside it.
package model

// Funding is the funding-shaped sub-data a source extracted from one
// article. Amounts are in whole currency units.
type Funding struct {
	RoundType              string   `json:"round_type"`
	RoundName              string   `json:"round_name,omitempty"`
	Amount                 float64  `json:"amount,omitempty"`
	Currency               string   `json:"currency"`
	AmountUSD              float64  `json:"amount_usd,omitempty"`
	IsDisclosed            bool     `json:"is_disclosed"`
	AnnouncedDate          string   `json:"announced_date,omitempty"`
	LeadInvestors          []string `json:"lead_investors,omitempty"`
	ParticipatingInvestors []string `json:"participating_investors,omitempty"`
}

// RawRecord is one source's observation of one company mention, produced by
// upstream extraction and consumed exactly once by the triangulation engine.
// Name is the only required field.
type RawRecord struct {
	Name             string   `json:"name"`
	Website          string   `json:"website,omitempty"`
	Sector           string   `json:"sector,omitempty"`
	SubSector        string   `json:"sub_sector,omitempty"`
	BusinessModel    string   `json:"business_model,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	LongDescription  string   `json:"long_description,omitempty"`
	FoundedYear      int      `json:"founded_year,omitempty"`
	TeamSize         int      `json:"team_size,omitempty"`
	Founders         []string `json:"founders,omitempty"`
	LinkedInURL      string   `json:"linkedin_url,omitempty"`
	TwitterURL       string   `json:"twitter_url,omitempty"`

	// Regulatory flags asserted by this source.
	CACVerified    bool `json:"cac_verified,omitempty"`
	CBNLicensed    bool `json:"cbn_licensed,omitempty"`
	SECRegistered  bool `json:"sec_registered,omitempty"`
	NAICOMLicensed bool `json:"naicom_licensed,omitempty"`

	Funding *Funding `json:"funding,omitempty"`

	// Provenance.
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
}
