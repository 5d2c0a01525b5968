package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Categories: the browsable taxonomy. Slug is the identifier the
-- matcher and the junction tables reference.
CREATE TABLE IF NOT EXISTS categories (
    slug TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Proprietary software: the commercial products alternatives replace
CREATE TABLE IF NOT EXISTS proprietary_software (
    slug TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    website TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Tech stacks: implementation technology labels
CREATE TABLE IF NOT EXISTS tech_stacks (
    slug TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

-- Users: local accounts and OAuth-provider accounts
CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    name TEXT,
    provider TEXT,
    password_hash TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Alternatives: the directory entries themselves
CREATE TABLE IF NOT EXISTS alternatives (
    alternative_id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    short_desc TEXT NOT NULL DEFAULT '',
    long_desc TEXT NOT NULL DEFAULT '',
    repo_url TEXT NOT NULL DEFAULT '',
    homepage TEXT,
    license TEXT NOT NULL DEFAULT '',
    plan TEXT NOT NULL DEFAULT 'free',          -- free, sponsor
    status TEXT NOT NULL DEFAULT 'pending',     -- pending, approved
    owner_id TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (owner_id) REFERENCES users(user_id)
);

CREATE INDEX IF NOT EXISTS idx_alternatives_status ON alternatives(status);
CREATE INDEX IF NOT EXISTS idx_alternatives_name ON alternatives(name COLLATE NOCASE);
CREATE INDEX IF NOT EXISTS idx_alternatives_repo ON alternatives(repo_url);

-- Junction: alternative -> category assignments
CREATE TABLE IF NOT EXISTS alternative_categories (
    alternative_id TEXT NOT NULL,
    category_slug TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (alternative_id, category_slug),
    FOREIGN KEY (alternative_id) REFERENCES alternatives(alternative_id) ON DELETE CASCADE,
    FOREIGN KEY (category_slug) REFERENCES categories(slug) ON DELETE CASCADE
);

-- Junction: alternative -> proprietary-software targets
CREATE TABLE IF NOT EXISTS alternative_targets (
    alternative_id TEXT NOT NULL,
    proprietary_slug TEXT NOT NULL,
    PRIMARY KEY (alternative_id, proprietary_slug),
    FOREIGN KEY (alternative_id) REFERENCES alternatives(alternative_id) ON DELETE CASCADE,
    FOREIGN KEY (proprietary_slug) REFERENCES proprietary_software(slug) ON DELETE CASCADE
);

-- Junction: alternative -> tech stacks
CREATE TABLE IF NOT EXISTS alternative_tech_stacks (
    alternative_id TEXT NOT NULL,
    tech_stack_slug TEXT NOT NULL,
    PRIMARY KEY (alternative_id, tech_stack_slug),
    FOREIGN KEY (alternative_id) REFERENCES alternatives(alternative_id) ON DELETE CASCADE,
    FOREIGN KEY (tech_stack_slug) REFERENCES tech_stacks(slug) ON DELETE CASCADE
);

-- Drafts: single slot per user, overwritten on every save.
-- The form state is stored as one JSON document.
CREATE TABLE IF NOT EXISTS drafts (
    user_id TEXT PRIMARY KEY,
    form_json TEXT NOT NULL,
    last_saved_at TIMESTAMP NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
);

-- Submissions: terminal record of every completed submit
CREATE TABLE IF NOT EXISTS submissions (
    submission_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    alternative_id TEXT NOT NULL,
    plan TEXT NOT NULL,
    payment_ref TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(user_id),
    FOREIGN KEY (alternative_id) REFERENCES alternatives(alternative_id)
);

CREATE INDEX IF NOT EXISTS idx_submissions_user ON submissions(user_id);

-- Payment orders: sponsor-plan payments tracked locally
CREATE TABLE IF NOT EXISTS payment_orders (
    order_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    amount_cents INTEGER NOT NULL,
    coupon_code TEXT,
    status TEXT NOT NULL DEFAULT 'created',     -- created, captured
    capture_id TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(user_id)
);

CREATE INDEX IF NOT EXISTS idx_orders_user ON payment_orders(user_id);
`
