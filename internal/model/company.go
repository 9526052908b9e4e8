package model

// Verification tiers, derived from the count of distinct corroborating
// sources. Never set directly.
const (
	VerificationUnverified      = "unverified"       // 0 sources
	VerificationSelfReported    = "self_reported"    // 1 source
	VerificationCrossReferenced = "cross_referenced" // 2 sources
	VerificationVerified        = "verified"         // 3+ sources
)

// VerificationFor maps a corroborating-source count to a verification tier.
func VerificationFor(sourceCount int) string {
	switch {
	case sourceCount >= 3:
		return VerificationVerified
	case sourceCount == 2:
		return VerificationCrossReferenced
	case sourceCount == 1:
		return VerificationSelfReported
	default:
		return VerificationUnverified
	}
}

// DefaultHeadquarters is assumed when no source reports one.
const DefaultHeadquarters = "lagos, nigeria"

// Company is the canonical, deduplicated company entity. It is created on
// the first sighting of an unmatched record and mutated in place by every
// subsequent merge; Sources grows monotonically and drives
// VerificationStatus.
type Company struct {
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
	Headquarters     string   `json:"headquarters"`

	// Social/data profiles.
	LinkedInURL    string `json:"linkedin_url,omitempty"`
	TwitterURL     string `json:"twitter_url,omitempty"`
	CrunchbaseURL  string `json:"crunchbase_url,omitempty"`

	// Corroboration metadata. Sources is an ordered set of distinct source
	// ids, insertion order = first-contribution order. SourceURLs maps each
	// source id to the URL it contributed.
	Sources            []string          `json:"sources"`
	SourceURLs         map[string]string `json:"source_urls"`
	VerificationStatus string            `json:"verification_status"`
	DataQualityScore   int               `json:"data_quality_score"`

	// Regulatory flags, OR-combined across merges.
	CACVerified    bool `json:"cac_verified"`
	CBNLicensed    bool `json:"cbn_licensed"`
	SECRegistered  bool `json:"sec_registered"`
	NAICOMLicensed bool `json:"naicom_licensed"`
}

// NewCompany creates a canonical entity from a first-sighting raw record and
// registers its contributing source.
func NewCompany(rec RawRecord) *Company {
	c := &Company{
		Name:               rec.Name,
		Website:            rec.Website,
		Sector:             rec.Sector,
		SubSector:          rec.SubSector,
		BusinessModel:      rec.BusinessModel,
		ShortDescription:   rec.ShortDescription,
		LongDescription:    rec.LongDescription,
		FoundedYear:        rec.FoundedYear,
		TeamSize:           rec.TeamSize,
		Founders:           append([]string(nil), rec.Founders...),
		Headquarters:       DefaultHeadquarters,
		LinkedInURL:        rec.LinkedInURL,
		TwitterURL:         rec.TwitterURL,
		SourceURLs:         make(map[string]string),
		VerificationStatus: VerificationUnverified,
		CACVerified:        rec.CACVerified,
		CBNLicensed:        rec.CBNLicensed,
		SECRegistered:      rec.SECRegistered,
		NAICOMLicensed:     rec.NAICOMLicensed,
	}
	c.AddSource(rec.Source, rec.SourceURL)
	return c
}

// AddSource records a contributing source. Re-adding a known source id is a
// no-op, so merging the same source twice never double-counts corroboration.
// VerificationStatus is recomputed after every successful addition; callers
// reading it mid-run always see the tier for the current source count.
func (c *Company) AddSource(source, sourceURL string) {
	if source == "" {
		return
	}
	for _, s := range c.Sources {
		if s == source {
			return
		}
	}
	c.Sources = append(c.Sources, source)
	if c.SourceURLs == nil {
		c.SourceURLs = make(map[string]string)
	}
	c.SourceURLs[source] = sourceURL
	c.VerificationStatus = VerificationFor(len(c.Sources))
}

// HasFounder reports whether the founder name is already recorded.
func (c *Company) HasFounder(name string) bool {
	for _, f := range c.Founders {
		if f == name {
			return true
		}
	}
	return false
}
