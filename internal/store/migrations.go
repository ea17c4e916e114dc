package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	user_id    TEXT PRIMARY KEY,
	username   TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	theme      TEXT NOT NULL DEFAULT 'Light',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS daily_plan (
	plan_id        TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
	plan_date      TEXT NOT NULL,
	total_task     INTEGER NOT NULL DEFAULT 0 CHECK(total_task >= 0),
	completed_task INTEGER NOT NULL DEFAULT 0 CHECK(completed_task >= 0),
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(user_id, plan_date)
);

CREATE TABLE IF NOT EXISTS tasks (
	id         TEXT PRIMARY KEY,
	plan_id    TEXT NOT NULL REFERENCES daily_plan(plan_id) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'Incomplete'
	           CHECK(status IN ('Incomplete', 'Completed')),
	created_at DATETIME NOT NULL,
	UNIQUE(plan_id, title)
);

CREATE INDEX IF NOT EXISTS idx_daily_plan_user_id ON daily_plan(user_id);
CREATE INDEX IF NOT EXISTS idx_daily_plan_date ON daily_plan(plan_date);
CREATE INDEX IF NOT EXISTS idx_tasks_plan_id ON tasks(plan_id);
CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
