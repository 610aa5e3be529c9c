package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Workspace represents an fbl workspace.
type Workspace struct {
	Root   string
	DBPath string
}

// DiscoverWorkspace walks up from startDir to find a .fbl directory.
func DiscoverWorkspace(startDir string) (Workspace, error) {
	current := startDir
	if current == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Workspace{}, err
		}
		current = cwd
	}
	current, err := filepath.Abs(current)
	if err != nil {
		return Workspace{}, err
	}

	for {
		fblDir := filepath.Join(current, ".fbl")
		info, err := os.Stat(fblDir)
		if err == nil && info.IsDir() {
			dbPath := filepath.Join(fblDir, "fbl.db")
			if _, err := os.Stat(dbPath); err != nil {
				return Workspace{}, fmt.Errorf("fbl database not found. Run 'fbl init' first")
			}
			return Workspace{Root: current, DBPath: dbPath}, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return Workspace{}, fmt.Errorf("not initialized. Run 'fbl init' first")
		}
		current = parent
	}
}

// InitWorkspace initializes a new fbl workspace at dir.
func InitWorkspace(dir string, force bool) (Workspace, error) {
	root := dir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Workspace{}, err
		}
		root = cwd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return Workspace{}, err
	}

	fblDir := filepath.Join(root, ".fbl")
	dbPath := filepath.Join(fblDir, "fbl.db")

	if info, err := os.Stat(fblDir); err == nil && info.IsDir() && !force {
		return Workspace{}, fmt.Errorf("already initialized. Use --force to reinitialize")
	}

	if err := os.MkdirAll(fblDir, 0o755); err != nil {
		return Workspace{}, err
	}
	EnsureWorkspaceGitignore(fblDir)

	if force {
		if err := os.Remove(dbPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Workspace{}, err
		}
	}

	return Workspace{Root: root, DBPath: dbPath}, nil
}

// EnsureWorkspaceGitignore ensures .fbl/.gitignore covers sqlite files.
func EnsureWorkspaceGitignore(fblDir string) {
	gitignore := filepath.Join(fblDir, ".gitignore")
	entries := []string{"*.db", "*.db-wal", "*.db-shm"}

	existing, err := os.ReadFile(gitignore)
	if err == nil {
		for _, entry := range entries {
			if !strings.Contains(string(existing), entry) {
				existing = append(existing, []byte(entry+"\n")...)
			}
		}
		_ = os.WriteFile(gitignore, existing, 0o644)
		return
	}

	content := strings.Join(entries, "\n") + "\n"
	_ = os.WriteFile(gitignore, []byte(content), 0o644)
}
