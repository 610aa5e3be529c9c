package db

import (
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	conn := openTestDB(t)

	value, err := GetConfig(conn, "missing")
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if value != "" {
		t.Fatalf("missing key = %q, want empty", value)
	}

	if err := SetConfig(conn, "session_user", "usr-abc"); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	value, err = GetConfig(conn, "session_user")
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if value != "usr-abc" {
		t.Fatalf("value = %q, want usr-abc", value)
	}

	// Overwrite.
	if err := SetConfig(conn, "session_user", "usr-def"); err != nil {
		t.Fatalf("SetConfig overwrite: %v", err)
	}
	value, _ = GetConfig(conn, "session_user")
	if value != "usr-def" {
		t.Fatalf("value after overwrite = %q", value)
	}

	if err := DeleteConfig(conn, "session_user"); err != nil {
		t.Fatalf("DeleteConfig: %v", err)
	}
	value, _ = GetConfig(conn, "session_user")
	if value != "" {
		t.Fatalf("value after delete = %q, want empty", value)
	}
}

func TestGetAllConfig(t *testing.T) {
	conn := openTestDB(t)

	SetConfig(conn, "b", "2")
	SetConfig(conn, "a", "1")

	entries, err := GetAllConfig(conn)
	if err != nil {
		t.Fatalf("GetAllConfig: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Key != "a" || entries[1].Key != "b" {
		t.Fatalf("entries not sorted by key: %+v", entries)
	}
}

func TestIsUniqueConstraintErr(t *testing.T) {
	conn := openTestDB(t)
	user := seedProfile(t, conn, "usr-unique1", "U", "")
	project := seedProject(t, conn, user.ID, "P")

	if err := AddProjectVote(conn, project.ID, user.ID); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	err := AddProjectVote(conn, project.ID, user.ID)
	if err == nil {
		t.Fatal("expected uniqueness violation on duplicate vote")
	}
	if !IsUniqueConstraintErr(err) {
		t.Fatalf("IsUniqueConstraintErr(%v) = false, want true", err)
	}
}

func TestIsUniqueConstraintErrOtherErrors(t *testing.T) {
	if IsUniqueConstraintErr(nil) {
		t.Fatal("nil should not be a uniqueness violation")
	}
	conn := openTestDB(t)
	_, err := conn.Exec("SELECT * FROM no_such_table")
	if err == nil {
		t.Fatal("expected query error")
	}
	if IsUniqueConstraintErr(err) {
		t.Fatalf("unrelated sqlite error classified as uniqueness violation: %v", err)
	}
}
