package sqlite

// Schema DDL, applied on every Attach; IF NOT EXISTS keeps existing
// data intact across restarts.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS trips (
    trip_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    location TEXT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    budget REAL NOT NULL,
    visibility TEXT NOT NULL,
    created_at TEXT NOT NULL
);`,

	`CREATE TABLE IF NOT EXISTS blocks (
    block_id TEXT PRIMARY KEY,
    trip_id TEXT NOT NULL,
    item_id TEXT NOT NULL,
    experience_id TEXT,
    experience_name TEXT NOT NULL,
    day TEXT NOT NULL,
    start_time REAL NOT NULL,
    end_time REAL NOT NULL,
    price REAL NOT NULL,
    category TEXT,
    created_at TEXT NOT NULL
);`,

	`CREATE TABLE IF NOT EXISTS experiences (
    experience_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    duration TEXT NOT NULL,
    price REAL NOT NULL,
    category TEXT,
    is_location INTEGER NOT NULL DEFAULT 0,
    address TEXT,
    images TEXT NOT NULL DEFAULT '[]'
);`,

	`CREATE INDEX IF NOT EXISTS idx_blocks_trip ON blocks(trip_id);`,
	`CREATE INDEX IF NOT EXISTS idx_experiences_category ON experiences(category);`,
}
