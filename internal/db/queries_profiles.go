package db

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/feedbacklab/feedbacklab/internal/types"
)

// profileColumns is the explicit column list for SELECT queries.
const profileColumns = `guid, full_name, avatar_url, user_type, bio, location, interests, website_url, twitter_url, linkedin_url, created_at, updated_at`

// EnsureProfile creates a profile if one does not exist and returns the
// current row. Idempotent: concurrent calls for the same id settle on the
// first insert.
func EnsureProfile(db *sql.DB, id, fullName string, role types.Role) (types.Profile, error) {
	if role == "" {
		role = types.RoleFeedbackProvider
	}
	now := time.Now().Unix()
	_, err := db.Exec(`
		INSERT INTO fbl_profiles (guid, full_name, user_type, interests, created_at, updated_at)
		VALUES (?, ?, ?, '[]', ?, ?)
		ON CONFLICT(guid) DO NOTHING
	`, id, fullName, string(role), now, now)
	if err != nil {
		return types.Profile{}, err
	}

	profile, err := GetProfile(db, id)
	if err != nil {
		return types.Profile{}, err
	}
	if profile == nil {
		return types.Profile{}, sql.ErrNoRows
	}
	return *profile, nil
}

// GetProfile returns a profile by guid, or nil if absent.
func GetProfile(db *sql.DB, id string) (*types.Profile, error) {
	row := db.QueryRow("SELECT "+profileColumns+" FROM fbl_profiles WHERE guid = ?", id)
	profile, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the provided field updates.
func UpdateProfile(db *sql.DB, id string, updates types.ProfileUpdates) error {
	var sets []string
	var params []any

	addString := func(column string, value types.OptionalString) {
		if value.Set {
			sets = append(sets, column+" = ?")
			if value.Value == nil {
				params = append(params, nil)
			} else {
				params = append(params, *value.Value)
			}
		}
	}

	addString("full_name", updates.FullName)
	addString("avatar_url", updates.AvatarURL)
	addString("bio", updates.Bio)
	addString("location", updates.Location)
	addString("website_url", updates.WebsiteURL)
	addString("twitter_url", updates.TwitterURL)
	addString("linkedin_url", updates.LinkedinURL)

	if updates.Interests != nil {
		encoded, err := json.Marshal(*updates.Interests)
		if err != nil {
			return err
		}
		sets = append(sets, "interests = ?")
		params = append(params, string(encoded))
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = ?")
	params = append(params, time.Now().Unix(), id)

	query := "UPDATE fbl_profiles SET " + strings.Join(sets, ", ") + " WHERE guid = ?"
	_, err := db.Exec(query, params...)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (types.Profile, error) {
	var p types.Profile
	var role string
	var interests string
	if err := row.Scan(&p.ID, &p.FullName, &p.AvatarURL, &role, &p.Bio, &p.Location, &interests, &p.WebsiteURL, &p.TwitterURL, &p.LinkedinURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return types.Profile{}, err
	}
	p.Role = types.ParseRole(role)
	if err := json.Unmarshal([]byte(interests), &p.Interests); err != nil {
		p.Interests = nil
	}
	return p, nil
}
