package sqlstore

import (
	"errors"
	"testing"

	"github.com/lzhang/learning-buddy/internal/store"
)

func TestCreateUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	id, err := testStore.CreateUser("testuser", "password123")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if id == 0 {
		t.Error("Expected a non-zero user id")
	}

	// Duplicate username
	_, err = testStore.CreateUser("testuser", "otherpassword")
	if !errors.Is(err, store.ErrUsernameTaken) {
		t.Errorf("Expected ErrUsernameTaken for duplicate user, got %v", err)
	}

	// The failed insert must not have created a row.
	var count int
	if err := testStore.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected 1 user after duplicate attempt, got %d", count)
	}
}

func TestVerifyUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	id, err := testStore.CreateUser("alice", "correct-horse")
	if err != nil {
		t.Fatal(err)
	}

	user, err := testStore.VerifyUser("alice", "correct-horse")
	if err != nil {
		t.Fatalf("Failed to verify user: %v", err)
	}
	if user.ID != id || user.Username != "alice" {
		t.Errorf("Unexpected user projection: %+v", user)
	}

	// Wrong password and unknown username must be indistinguishable.
	_, wrongPassErr := testStore.VerifyUser("alice", "wrong")
	_, noUserErr := testStore.VerifyUser("nobody", "wrong")
	if !errors.Is(wrongPassErr, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for wrong password, got %v", wrongPassErr)
	}
	if !errors.Is(noUserErr, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown user, got %v", noUserErr)
	}
	if wrongPassErr.Error() != noUserErr.Error() {
		t.Errorf("Auth failures must look identical: %q vs %q", wrongPassErr, noUserErr)
	}
}

func TestPasswordNotStoredInPlaintext(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	if _, err := testStore.CreateUser("bob", "hunter2"); err != nil {
		t.Fatal(err)
	}

	var hash string
	if err := testStore.db.QueryRow("SELECT password_hash FROM users WHERE username = 'bob'").Scan(&hash); err != nil {
		t.Fatal(err)
	}
	if hash == "hunter2" || hash == "" {
		t.Errorf("Password stored without hashing: %q", hash)
	}
}
