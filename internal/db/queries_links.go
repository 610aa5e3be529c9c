package db

import (
	"database/sql"
	"time"

	"github.com/feedbacklab/feedbacklab/internal/core"
	"github.com/feedbacklab/feedbacklab/internal/types"
)

const linkColumns = `guid, user_guid, title, description, url, is_internal, created_at`

// CreateProjectLink inserts a profile project link.
func CreateProjectLink(db *sql.DB, link types.ProjectLink) (types.ProjectLink, error) {
	guid, err := generateUniqueGUIDForTable(db, "fbl_project_links", core.GUIDPrefixLink)
	if err != nil {
		return types.ProjectLink{}, err
	}

	ts := link.CreatedAt
	if ts == 0 {
		ts = time.Now().Unix()
	}

	internal := 0
	if link.IsInternal {
		internal = 1
	}

	_, err = db.Exec(`
		INSERT INTO fbl_project_links (guid, user_guid, title, description, url, is_internal, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, guid, link.UserID, link.Title, link.Description, link.URL, internal, ts)
	if err != nil {
		return types.ProjectLink{}, err
	}

	created := link
	created.ID = guid
	created.CreatedAt = ts
	return created, nil
}

// GetProjectLinks returns a user's links, newest first.
func GetProjectLinks(db *sql.DB, userGUID string) ([]types.ProjectLink, error) {
	rows, err := db.Query(`
		SELECT `+linkColumns+`
		FROM fbl_project_links
		WHERE user_guid = ?
		ORDER BY created_at DESC, guid DESC
	`, userGUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []types.ProjectLink
	for rows.Next() {
		var link types.ProjectLink
		var internal int
		if err := rows.Scan(&link.ID, &link.UserID, &link.Title, &link.Description, &link.URL, &internal, &link.CreatedAt); err != nil {
			return nil, err
		}
		link.IsInternal = internal != 0
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return links, nil
}

// DeleteProjectLink removes a link owned by the given user.
func DeleteProjectLink(db *sql.DB, guid, userGUID string) (bool, error) {
	result, err := db.Exec(`
		DELETE FROM fbl_project_links WHERE guid = ? AND user_guid = ?
	`, guid, userGUID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
