package sqlite

import "database/sql"

// schema sets up the database. It runs on every startup, so every statement
// must be idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    currency TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS family_members (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

-- family_member_id is deliberately not a foreign key: deleting a member
-- must not touch documents.
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    file_name TEXT NOT NULL DEFAULT '',
    file_mime_type TEXT NOT NULL DEFAULT '',
    file_data_url TEXT NOT NULL DEFAULT '',
    ocr_text TEXT NOT NULL DEFAULT '',
    summary TEXT,
    meta_date TEXT,
    meta_vendor TEXT,
    meta_amount TEXT,
    meta_policy_number TEXT,
    meta_warranty_end_date TEXT,
    notes TEXT NOT NULL DEFAULT '',
    family_member_id TEXT
);

CREATE TABLE IF NOT EXISTS document_tags (
    document_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (document_id, tag),
    FOREIGN KEY (document_id) REFERENCES documents(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS audio_recordings (
    id TEXT PRIMARY KEY,
    document_id TEXT NOT NULL UNIQUE,
    data_url TEXT NOT NULL,
    duration REAL NOT NULL,
    recorded_at INTEGER NOT NULL,
    FOREIGN KEY (document_id) REFERENCES documents(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at);
CREATE INDEX IF NOT EXISTS idx_document_tags_document_id ON document_tags(document_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
