package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/feedbacklab/feedbacklab/internal/core"
	"github.com/feedbacklab/feedbacklab/internal/types"
	"github.com/gobwas/glob"
)

const projectColumns = `guid, title, description, category, image_url, upvotes, comment_count, user_guid, created_at`

const projectColumnsJoined = `p.guid, p.title, p.description, p.category, p.image_url, p.upvotes, p.comment_count, p.user_guid, p.created_at, pr.full_name`

// CreateProject inserts a new project.
func CreateProject(db *sql.DB, project types.Project) (types.Project, error) {
	guid, err := generateUniqueGUIDForTable(db, "fbl_projects", core.GUIDPrefixProject)
	if err != nil {
		return types.Project{}, err
	}

	ts := project.CreatedAt
	if ts == 0 {
		ts = time.Now().Unix()
	}

	_, err = db.Exec(`
		INSERT INTO fbl_projects (guid, title, description, category, image_url, upvotes, comment_count, user_guid, created_at)
		VALUES (?, ?, ?, ?, ?, 0, 0, ?, ?)
	`, guid, project.Title, project.Description, project.Category, project.ImageURL, project.AuthorID, ts)
	if err != nil {
		return types.Project{}, err
	}

	created := project
	created.ID = guid
	created.Upvotes = 0
	created.CommentCount = 0
	created.CreatedAt = ts
	return created, nil
}

// GetProject returns a project by guid, or nil if absent.
func GetProject(db *sql.DB, guid string) (*types.Project, error) {
	row := db.QueryRow(`
		SELECT `+projectColumnsJoined+`
		FROM fbl_projects p
		LEFT JOIN fbl_profiles pr ON pr.guid = p.user_guid
		WHERE p.guid = ?
	`, guid)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjects returns projects newest first, optionally filtered by
// category and by a glob pattern over title and description.
func GetProjects(db *sql.DB, opts *types.ProjectQueryOptions) ([]types.Project, error) {
	if opts == nil {
		opts = &types.ProjectQueryOptions{}
	}

	query := `
		SELECT ` + projectColumnsJoined + `
		FROM fbl_projects p
		LEFT JOIN fbl_profiles pr ON pr.guid = p.user_guid
	`
	var params []any
	if opts.Category != "" && opts.Category != "all" {
		query += " WHERE p.category = ?"
		params = append(params, opts.Category)
	}
	query += " ORDER BY p.created_at DESC, p.guid DESC"

	rows, err := db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matcher glob.Glob
	if opts.Search != "" {
		pattern := strings.ToLower(opts.Search)
		if !strings.ContainsAny(pattern, "*?[") {
			pattern = "*" + pattern + "*"
		}
		matcher, err = glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
	}

	var projects []types.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		if matcher != nil {
			title := strings.ToLower(project.Title)
			desc := strings.ToLower(project.Description)
			if !matcher.Match(title) && !matcher.Match(desc) {
				continue
			}
		}
		projects = append(projects, project)
		if opts.Limit > 0 && len(projects) == opts.Limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

func scanProject(row rowScanner) (types.Project, error) {
	var p types.Project
	var authorName sql.NullString
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.ImageURL, &p.Upvotes, &p.CommentCount, &p.AuthorID, &p.CreatedAt, &authorName); err != nil {
		return types.Project{}, err
	}
	p.AuthorName = authorName.String
	return p, nil
}
