package util

import (
	"os"
	"testing"
)

// TestUserHomeReturnsValidPath verifies UserHome returns a non-empty path
// to an existing directory.
func TestUserHomeReturnsValidPath(t *testing.T) {
	home := UserHome()
	if home == "" {
		t.Fatal("UserHome returned empty string")
	}

	info, err := os.Stat(home)
	if err != nil {
		t.Fatalf("UserHome returned non-existent path: %s, error: %v", home, err)
	}
	if !info.IsDir() {
		t.Fatalf("UserHome returned non-directory: %s", home)
	}
}

// TestUserHomeFollowsHomeVariable verifies the result tracks $HOME, which
// os.UserHomeDir reads on Unix platforms.
func TestUserHomeFollowsHomeVariable(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	if home := UserHome(); home != dir {
		t.Errorf("UserHome() = %q, want %q", home, dir)
	}
}
