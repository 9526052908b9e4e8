package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/lemina/startup-cli/internal/model"
	"github.com/lemina/startup-cli/internal/normalize"
	"github.com/lemina/startup-cli/internal/triangulate"
)

// SQLiteStore implements Store using modernc.org/sqlite. This is the
// default backend: a single local file, no server to run.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS companies (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	name                TEXT NOT NULL UNIQUE,
	website             TEXT,
	sector              TEXT,
	sub_sector          TEXT,
	business_model      TEXT,
	short_description   TEXT,
	long_description    TEXT,
	founded_year        INTEGER,
	team_size           INTEGER,
	founders            TEXT,
	headquarters        TEXT,
	linkedin_url        TEXT,
	twitter_url         TEXT,
	crunchbase_url      TEXT,
	sources             TEXT NOT NULL DEFAULT '[]',
	source_urls         TEXT NOT NULL DEFAULT '{}',
	verification_status TEXT NOT NULL DEFAULT 'unverified',
	data_quality_score  INTEGER NOT NULL DEFAULT 0,
	cac_verified        INTEGER NOT NULL DEFAULT 0,
	cbn_licensed        INTEGER NOT NULL DEFAULT 0,
	sec_registered      INTEGER NOT NULL DEFAULT 0,
	naicom_licensed     INTEGER NOT NULL DEFAULT 0,
	created_at          DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at          DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS funding_rounds (
	id                      INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id              INTEGER REFERENCES companies(id),
	company_name            TEXT NOT NULL,
	round_type              TEXT NOT NULL,
	round_name              TEXT,
	amount                  REAL,
	currency                TEXT,
	amount_usd              REAL,
	is_disclosed            INTEGER NOT NULL DEFAULT 0,
	announced_date          TEXT,
	lead_investors          TEXT,
	participating_investors TEXT,
	source                  TEXT NOT NULL,
	source_url              TEXT,
	created_at              DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS company_updates (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id   INTEGER REFERENCES companies(id),
	company_name TEXT NOT NULL,
	update_type  TEXT NOT NULL,
	title        TEXT NOT NULL,
	description  TEXT,
	source_name  TEXT NOT NULL,
	source_url   TEXT,
	update_date  TEXT,
	created_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_companies_verification ON companies(verification_status);
CREATE INDEX IF NOT EXISTS idx_companies_sector ON companies(sector);
CREATE INDEX IF NOT EXISTS idx_funding_rounds_company_id ON funding_rounds(company_id);
CREATE INDEX IF NOT EXISTS idx_company_updates_company_id ON company_updates(company_id);
`

// Migrate creates the schema if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

const sqliteUpsertCompanySQL = `
INSERT INTO companies (
	name, website, sector, sub_sector, business_model,
	short_description, long_description, founded_year, team_size,
	founders, headquarters, linkedin_url, twitter_url, crunchbase_url,
	sources, source_urls, verification_status, data_quality_score,
	cac_verified, cbn_licensed, sec_registered, naicom_licensed, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
ON CONFLICT (name) DO UPDATE SET
	website = excluded.website,
	sector = excluded.sector,
	sub_sector = excluded.sub_sector,
	business_model = excluded.business_model,
	short_description = excluded.short_description,
	long_description = excluded.long_description,
	founded_year = excluded.founded_year,
	team_size = excluded.team_size,
	founders = excluded.founders,
	headquarters = excluded.headquarters,
	linkedin_url = excluded.linkedin_url,
	twitter_url = excluded.twitter_url,
	crunchbase_url = excluded.crunchbase_url,
	sources = excluded.sources,
	source_urls = excluded.source_urls,
	verification_status = excluded.verification_status,
	data_quality_score = excluded.data_quality_score,
	cac_verified = excluded.cac_verified,
	cbn_licensed = excluded.cbn_licensed,
	sec_registered = excluded.sec_registered,
	naicom_licensed = excluded.naicom_licensed,
	updated_at = datetime('now')
RETURNING id`

// SaveResult upserts companies and appends event rows in one transaction.
func (s *SQLiteStore) SaveResult(ctx context.Context, result *triangulate.Result) (*Stats, error) {
	stats := &Stats{}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	ids := make(map[string]int64, len(result.Companies))
	for _, c := range result.Companies {
		id, err := upsertCompanySQLite(ctx, tx, c)
		if err != nil {
			return stats, err
		}
		ids[normalize.Name(c.Name)] = id
		stats.Companies++
	}

	for _, fr := range result.FundingRounds {
		if err := insertFundingRoundSQLite(ctx, tx, fr, ids); err != nil {
			return stats, err
		}
		stats.FundingRounds++
	}

	for _, u := range result.Updates {
		if err := insertUpdateSQLite(ctx, tx, u, ids); err != nil {
			return stats, err
		}
		stats.Updates++
	}

	if err := tx.Commit(); err != nil {
		return stats, eris.Wrap(err, "sqlite: commit tx")
	}
	return stats, nil
}

func upsertCompanySQLite(ctx context.Context, tx *sql.Tx, c *model.Company) (int64, error) {
	founders, err := json.Marshal(c.Founders)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: marshal founders")
	}
	sources, err := json.Marshal(c.Sources)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: marshal sources")
	}
	sourceURLs, err := json.Marshal(c.SourceURLs)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: marshal source urls")
	}

	var id int64
	err = tx.QueryRowContext(ctx, sqliteUpsertCompanySQL,
		c.Name, c.Website, c.Sector, c.SubSector, c.BusinessModel,
		c.ShortDescription, c.LongDescription, c.FoundedYear, c.TeamSize,
		string(founders), c.Headquarters, c.LinkedInURL, c.TwitterURL, c.CrunchbaseURL,
		string(sources), string(sourceURLs), c.VerificationStatus, c.DataQualityScore,
		c.CACVerified, c.CBNLicensed, c.SECRegistered, c.NAICOMLicensed,
	).Scan(&id)
	if err != nil {
		return 0, eris.Wrapf(err, "sqlite: upsert company %s", c.Name)
	}
	return id, nil
}

func insertFundingRoundSQLite(ctx context.Context, tx *sql.Tx, fr model.FundingRound, ids map[string]int64) error {
	lead, err := json.Marshal(fr.LeadInvestors)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal lead investors")
	}
	part, err := json.Marshal(fr.ParticipatingInvestors)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal participating investors")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO funding_rounds (
			company_id, company_name, round_type, round_name,
			amount, currency, amount_usd, is_disclosed, announced_date,
			lead_investors, participating_investors, source, source_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		companyID(ids, fr.CompanyName), fr.CompanyName, fr.RoundType, fr.RoundName,
		fr.Amount, fr.Currency, fr.AmountUSD, fr.IsDisclosed, fr.AnnouncedDate,
		string(lead), string(part), fr.Source, fr.SourceURL,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: insert funding round for %s", fr.CompanyName)
	}
	return nil
}

func insertUpdateSQLite(ctx context.Context, tx *sql.Tx, u model.CompanyUpdate, ids map[string]int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO company_updates (
			company_id, company_name, update_type, title,
			description, source_name, source_url, update_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		companyID(ids, u.CompanyName), u.CompanyName, u.UpdateType, u.Title,
		u.Description, u.SourceName, u.SourceURL, u.UpdateDate,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: insert update for %s", u.CompanyName)
	}
	return nil
}

// CountByVerification returns company counts per verification tier.
func (s *SQLiteStore) CountByVerification(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT verification_status, COUNT(*) FROM companies GROUP BY verification_status`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: count by verification")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan verification count")
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate verification counts")
	}
	return counts, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
