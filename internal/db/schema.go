package db

import (
	"database/sql"
	"fmt"
)

const schemaSQL = `
-- User profiles
CREATE TABLE IF NOT EXISTS fbl_profiles (
  guid TEXT PRIMARY KEY,                 -- e.g., "usr-x9y8z7w6"
  full_name TEXT NOT NULL DEFAULT '',
  avatar_url TEXT,
  user_type TEXT NOT NULL DEFAULT 'feedback_provider', -- 'builder' or 'feedback_provider'
  bio TEXT,
  location TEXT,
  interests TEXT NOT NULL DEFAULT '[]',  -- JSON array of strings
  website_url TEXT,
  twitter_url TEXT,
  linkedin_url TEXT,
  created_at INTEGER NOT NULL,           -- unix timestamp
  updated_at INTEGER NOT NULL
);

-- Shared projects
CREATE TABLE IF NOT EXISTS fbl_projects (
  guid TEXT PRIMARY KEY,                 -- e.g., "prj-a1b2c3d4"
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  category TEXT NOT NULL,
  image_url TEXT,
  upvotes INTEGER NOT NULL DEFAULT 0,    -- derived from fbl_project_votes
  comment_count INTEGER NOT NULL DEFAULT 0,
  user_guid TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  FOREIGN KEY (user_guid) REFERENCES fbl_profiles(guid)
);

CREATE INDEX IF NOT EXISTS idx_fbl_projects_category ON fbl_projects(category);
CREATE INDEX IF NOT EXISTS idx_fbl_projects_created ON fbl_projects(created_at);
CREATE INDEX IF NOT EXISTS idx_fbl_projects_user ON fbl_projects(user_guid);

-- Overlay table: discussion comments, updates, FAQs and dev posts all
-- live here, distinguished by content markers. See core.DecodePost.
CREATE TABLE IF NOT EXISTS fbl_comments (
  guid TEXT PRIMARY KEY,                 -- e.g., "cmt-a1b2c3d4"
  project_guid TEXT NOT NULL,
  user_guid TEXT NOT NULL,
  content TEXT NOT NULL,                 -- encoded kind+title+body
  upvotes INTEGER NOT NULL DEFAULT 0,    -- derived from fbl_comment_votes
  created_at INTEGER NOT NULL,
  FOREIGN KEY (project_guid) REFERENCES fbl_projects(guid),
  FOREIGN KEY (user_guid) REFERENCES fbl_profiles(guid)
);

CREATE INDEX IF NOT EXISTS idx_fbl_comments_project ON fbl_comments(project_guid);
CREATE INDEX IF NOT EXISTS idx_fbl_comments_created ON fbl_comments(created_at);

-- Project vote ledger: one row per (project, voter)
CREATE TABLE IF NOT EXISTS fbl_project_votes (
  guid TEXT PRIMARY KEY,
  project_guid TEXT NOT NULL,
  user_guid TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  UNIQUE (project_guid, user_guid),
  FOREIGN KEY (project_guid) REFERENCES fbl_projects(guid)
);

-- Comment vote ledger: one row per (comment, voter)
CREATE TABLE IF NOT EXISTS fbl_comment_votes (
  guid TEXT PRIMARY KEY,
  comment_guid TEXT NOT NULL,
  user_guid TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  UNIQUE (comment_guid, user_guid),
  FOREIGN KEY (comment_guid) REFERENCES fbl_comments(guid)
);

-- Profile project links
CREATE TABLE IF NOT EXISTS fbl_project_links (
  guid TEXT PRIMARY KEY,                 -- e.g., "lnk-a1b2c3d4"
  user_guid TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT,
  url TEXT NOT NULL,
  is_internal INTEGER NOT NULL DEFAULT 0,
  created_at INTEGER NOT NULL,
  FOREIGN KEY (user_guid) REFERENCES fbl_profiles(guid)
);

CREATE INDEX IF NOT EXISTS idx_fbl_project_links_user ON fbl_project_links(user_guid);

-- Key/value config (session user, defaults)
CREATE TABLE IF NOT EXISTS fbl_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

// InitSchema creates all tables and indexes if missing.
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
