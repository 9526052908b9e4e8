package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/lemina/startup-cli/internal/db"
	"github.com/lemina/startup-cli/internal/model"
	"github.com/lemina/startup-cli/internal/normalize"
	"github.com/lemina/startup-cli/internal/triangulate"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresFromPool wraps an existing pool. Used by tests with pgxmock.
func NewPostgresFromPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS companies (
	id                  BIGSERIAL PRIMARY KEY,
	name                TEXT NOT NULL UNIQUE,
	website             TEXT,
	sector              TEXT,
	sub_sector          TEXT,
	business_model      TEXT,
	short_description   TEXT,
	long_description    TEXT,
	founded_year        INT,
	team_size           INT,
	founders            JSONB,
	headquarters        TEXT,
	linkedin_url        TEXT,
	twitter_url         TEXT,
	crunchbase_url      TEXT,
	sources             JSONB NOT NULL DEFAULT '[]',
	source_urls         JSONB NOT NULL DEFAULT '{}',
	verification_status TEXT NOT NULL DEFAULT 'unverified',
	data_quality_score  INT NOT NULL DEFAULT 0,
	cac_verified        BOOLEAN NOT NULL DEFAULT false,
	cbn_licensed        BOOLEAN NOT NULL DEFAULT false,
	sec_registered      BOOLEAN NOT NULL DEFAULT false,
	naicom_licensed     BOOLEAN NOT NULL DEFAULT false,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS funding_rounds (
	id                      BIGSERIAL PRIMARY KEY,
	company_id              BIGINT REFERENCES companies(id),
	company_name            TEXT NOT NULL,
	round_type              TEXT NOT NULL,
	round_name              TEXT,
	amount                  DOUBLE PRECISION,
	currency                TEXT,
	amount_usd              DOUBLE PRECISION,
	is_disclosed            BOOLEAN NOT NULL DEFAULT false,
	announced_date          TEXT,
	lead_investors          JSONB,
	participating_investors JSONB,
	source                  TEXT NOT NULL,
	source_url              TEXT,
	created_at              TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS company_updates (
	id           BIGSERIAL PRIMARY KEY,
	company_id   BIGINT REFERENCES companies(id),
	company_name TEXT NOT NULL,
	update_type  TEXT NOT NULL,
	title        TEXT NOT NULL,
	description  TEXT,
	source_name  TEXT NOT NULL,
	source_url   TEXT,
	update_date  TEXT,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_companies_verification ON companies(verification_status);
CREATE INDEX IF NOT EXISTS idx_companies_sector ON companies(sector);
CREATE INDEX IF NOT EXISTS idx_funding_rounds_company_id ON funding_rounds(company_id);
CREATE INDEX IF NOT EXISTS idx_company_updates_company_id ON company_updates(company_id);
`

// Migrate creates the schema if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresMigration); err != nil {
		return eris.Wrap(err, "postgres: migrate")
	}
	return nil
}

const upsertCompanySQL = `
INSERT INTO companies (
	name, website, sector, sub_sector, business_model,
	short_description, long_description, founded_year, team_size,
	founders, headquarters, linkedin_url, twitter_url, crunchbase_url,
	sources, source_urls, verification_status, data_quality_score,
	cac_verified, cbn_licensed, sec_registered, naicom_licensed, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
	$15, $16, $17, $18, $19, $20, $21, $22, now()
)
ON CONFLICT (name) DO UPDATE SET
	website = EXCLUDED.website,
	sector = EXCLUDED.sector,
	sub_sector = EXCLUDED.sub_sector,
	business_model = EXCLUDED.business_model,
	short_description = EXCLUDED.short_description,
	long_description = EXCLUDED.long_description,
	founded_year = EXCLUDED.founded_year,
	team_size = EXCLUDED.team_size,
	founders = EXCLUDED.founders,
	headquarters = EXCLUDED.headquarters,
	linkedin_url = EXCLUDED.linkedin_url,
	twitter_url = EXCLUDED.twitter_url,
	crunchbase_url = EXCLUDED.crunchbase_url,
	sources = EXCLUDED.sources,
	source_urls = EXCLUDED.source_urls,
	verification_status = EXCLUDED.verification_status,
	data_quality_score = EXCLUDED.data_quality_score,
	cac_verified = EXCLUDED.cac_verified,
	cbn_licensed = EXCLUDED.cbn_licensed,
	sec_registered = EXCLUDED.sec_registered,
	naicom_licensed = EXCLUDED.naicom_licensed,
	updated_at = now()
RETURNING id`

// SaveResult upserts companies and appends event rows via COPY.
func (s *PostgresStore) SaveResult(ctx context.Context, result *triangulate.Result) (*Stats, error) {
	stats := &Stats{}

	// Upsert companies one at a time: RETURNING id gives us the join
	// key for event rows, and runs are small enough that COPY would
	// buy nothing here.
	ids := make(map[string]int64, len(result.Companies))
	for _, c := range result.Companies {
		id, err := s.upsertCompany(ctx, c)
		if err != nil {
			return stats, err
		}
		ids[normalize.Name(c.Name)] = id
		stats.Companies++
	}

	n, err := s.insertFundingRounds(ctx, result.FundingRounds, ids)
	if err != nil {
		return stats, err
	}
	stats.FundingRounds = int(n)

	n, err = s.insertUpdates(ctx, result.Updates, ids)
	if err != nil {
		return stats, err
	}
	stats.Updates = int(n)

	return stats, nil
}

func (s *PostgresStore) upsertCompany(ctx context.Context, c *model.Company) (int64, error) {
	founders, err := json.Marshal(c.Founders)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: marshal founders")
	}
	sources, err := json.Marshal(c.Sources)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: marshal sources")
	}
	sourceURLs, err := json.Marshal(c.SourceURLs)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: marshal source urls")
	}

	var id int64
	err = s.pool.QueryRow(ctx, upsertCompanySQL,
		c.Name, c.Website, c.Sector, c.SubSector, c.BusinessModel,
		c.ShortDescription, c.LongDescription, c.FoundedYear, c.TeamSize,
		string(founders), c.Headquarters, c.LinkedInURL, c.TwitterURL, c.CrunchbaseURL,
		string(sources), string(sourceURLs), c.VerificationStatus, c.DataQualityScore,
		c.CACVerified, c.CBNLicensed, c.SECRegistered, c.NAICOMLicensed,
	).Scan(&id)
	if err != nil {
		return 0, eris.Wrapf(err, "postgres: upsert company %s", c.Name)
	}
	return id, nil
}

var fundingRoundColumns = []string{
	"company_id", "company_name", "round_type", "round_name",
	"amount", "currency", "amount_usd", "is_disclosed", "announced_date",
	"lead_investors", "participating_investors", "source", "source_url",
}

func (s *PostgresStore) insertFundingRounds(ctx context.Context, rounds []model.FundingRound, ids map[string]int64) (int64, error) {
	rows := make([][]any, 0, len(rounds))
	for _, fr := range rounds {
		lead, err := json.Marshal(fr.LeadInvestors)
		if err != nil {
			return 0, eris.Wrap(err, "postgres: marshal lead investors")
		}
		part, err := json.Marshal(fr.ParticipatingInvestors)
		if err != nil {
			return 0, eris.Wrap(err, "postgres: marshal participating investors")
		}
		rows = append(rows, []any{
			companyID(ids, fr.CompanyName), fr.CompanyName, fr.RoundType, fr.RoundName,
			fr.Amount, fr.Currency, fr.AmountUSD, fr.IsDisclosed, fr.AnnouncedDate,
			string(lead), string(part), fr.Source, fr.SourceURL,
		})
	}

	n, err := db.CopyFrom(ctx, s.pool, "funding_rounds", fundingRoundColumns, rows)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: insert funding rounds")
	}
	return n, nil
}

var updateColumns = []string{
	"company_id", "company_name", "update_type", "title",
	"description", "source_name", "source_url", "update_date",
}

func (s *PostgresStore) insertUpdates(ctx context.Context, updates []model.CompanyUpdate, ids map[string]int64) (int64, error) {
	rows := make([][]any, 0, len(updates))
	for _, u := range updates {
		rows = append(rows, []any{
			companyID(ids, u.CompanyName), u.CompanyName, u.UpdateType, u.Title,
			u.Description, u.SourceName, u.SourceURL, u.UpdateDate,
		})
	}

	n, err := db.CopyFrom(ctx, s.pool, "company_updates", updateColumns, rows)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: insert company updates")
	}
	return n, nil
}

// companyID resolves an event's raw company name to a canonical id.
// Events whose company did not survive triangulation keep a NULL id.
func companyID(ids map[string]int64, rawName string) any {
	if id, ok := ids[normalize.Name(rawName)]; ok {
		return id
	}
	return nil
}

// CountByVerification returns company counts per verification tier.
func (s *PostgresStore) CountByVerification(ctx context.Context) (map[string]int, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT verification_status, COUNT(*) FROM companies GROUP BY verification_status`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: count by verification")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, eris.Wrap(err, "postgres: scan verification count")
		}
		counts[status] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate verification counts")
	}
	return counts, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}
