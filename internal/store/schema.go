package store

const schema = `
CREATE TABLE IF NOT EXISTS responses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    submission_id TEXT NOT NULL,
    age_label TEXT NOT NULL,
    age_code INTEGER NOT NULL,
    cohort TEXT NOT NULL,
    gender TEXT NOT NULL,
    cups_label TEXT,
    score REAL NOT NULL,
    score_imputed BOOLEAN NOT NULL DEFAULT 0,
    education INTEGER NOT NULL DEFAULT -1,
    employment INTEGER NOT NULL DEFAULT -1,
    children INTEGER NOT NULL DEFAULT 0,
    segment TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ingests (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    source_path TEXT NOT NULL,
    raw_rows INTEGER NOT NULL,
    loaded_rows INTEGER NOT NULL,
    dropped_rows INTEGER NOT NULL,
    imputed_scores INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_responses_cohort ON responses(cohort);
CREATE INDEX IF NOT EXISTS idx_responses_gender ON responses(gender);
CREATE INDEX IF NOT EXISTS idx_ingests_created ON ingests(created_at);
`
