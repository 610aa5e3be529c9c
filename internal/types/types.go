package types

// Role represents the account type of a profile.
type Role string

const (
	RoleBuilder          Role = "builder"
	RoleFeedbackProvider Role = "feedback_provider"
)

// ParseRole normalizes a stored user_type value. Unknown values fall back
// to feedback_provider, matching how the web client treated them.
func ParseRole(value string) Role {
	if value == string(RoleBuilder) {
		return RoleBuilder
	}
	return RoleFeedbackProvider
}

// PostKind identifies the logical type carried by a comment row.
type PostKind string

const (
	KindDiscussion PostKind = "discussion"
	KindUpdate     PostKind = "update"
	KindFAQ        PostKind = "faq"
	KindDevPost    PostKind = "devpost"
)

// Kinds lists every logical post kind.
func Kinds() []PostKind {
	return []PostKind{KindDiscussion, KindUpdate, KindFAQ, KindDevPost}
}

// ParseKind resolves a user-supplied kind name.
func ParseKind(value string) (PostKind, bool) {
	switch PostKind(value) {
	case KindDiscussion, KindUpdate, KindFAQ, KindDevPost:
		return PostKind(value), true
	}
	return "", false
}

// Profile represents a user profile row.
type Profile struct {
	ID          string   `json:"id"`
	FullName    string   `json:"full_name"`
	AvatarURL   *string  `json:"avatar_url,omitempty"`
	Role        Role     `json:"user_type"`
	Bio         *string  `json:"bio,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	WebsiteURL  *string  `json:"website_url,omitempty"`
	TwitterURL  *string  `json:"twitter_url,omitempty"`
	LinkedinURL *string  `json:"linkedin_url,omitempty"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
}

// Project represents a shared project.
type Project struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	ImageURL     *string `json:"image_url,omitempty"`
	Upvotes      int     `json:"upvotes"`
	CommentCount int     `json:"comment_count"`
	AuthorID     string  `json:"user_id"`
	AuthorName   string  `json:"author_name,omitempty"`
	CreatedAt    int64   `json:"created_at"`
}

// Comment is a raw row in the overlay table. Content carries the encoded
// kind/title/body; decoding belongs to the codec, never to callers.
type Comment struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	AuthorID  string `json:"user_id"`
	Content   string `json:"content"`
	Upvotes   int    `json:"upvotes"`
	CreatedAt int64  `json:"created_at"`
}

// Post is the decoded, profile-joined view of a comment row.
type Post struct {
	ID              string   `json:"id"`
	ProjectID       string   `json:"project_id"`
	AuthorID        string   `json:"author_id"`
	AuthorName      string   `json:"author_name"`
	AuthorAvatarURL *string  `json:"author_avatar_url,omitempty"`
	AuthorRole      Role     `json:"author_role"`
	Kind            PostKind `json:"kind"`
	Title           *string  `json:"title,omitempty"`
	Body            string   `json:"body"`
	Upvotes         int      `json:"upvotes"`
	CreatedAt       int64    `json:"created_at"`
}

// Vote is one ledger row. Existence means "voted".
type Vote struct {
	ID        string `json:"id"`
	TargetID  string `json:"target_id"`
	VoterID   string `json:"voter_id"`
	CreatedAt int64  `json:"created_at"`
}

// VoteState is the authoritative result of a toggle.
type VoteState struct {
	Voted bool `json:"voted"`
	Count int  `json:"count"`
}

// ProjectLink is an external or internal link on a profile.
type ProjectLink struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	URL         string  `json:"url"`
	IsInternal  bool    `json:"is_internal"`
	CreatedAt   int64   `json:"created_at"`
}

// ProjectQueryOptions filters project listings.
type ProjectQueryOptions struct {
	Category string
	Search   string
	Limit    int
}

// ProfileUpdates carries optional profile field changes.
type ProfileUpdates struct {
	FullName    OptionalString
	AvatarURL   OptionalString
	Bio         OptionalString
	Location    OptionalString
	Interests   *[]string
	WebsiteURL  OptionalString
	TwitterURL  OptionalString
	LinkedinURL OptionalString
}

// OptionalString represents a nullable string update.
type OptionalString struct {
	Set   bool
	Value *string
}

// ConfigEntry represents a key/value config row.
type ConfigEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
