package sqlstore

import (
	"database/sql"

	"github.com/lzhang/learning-buddy/internal/models"
	"github.com/lzhang/learning-buddy/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser stores a new account with a bcrypt hash of the password. The
// plaintext never touches the database.
func (s *SQLStore) CreateUser(username, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	var id int64
	query := s.rebind("INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id")
	if err := s.db.QueryRow(query, username, string(hash)).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, store.ErrUsernameTaken
		}
		return 0, err
	}
	return id, nil
}

// VerifyUser checks the password against the stored hash and returns the
// public user projection. An unknown username and a wrong password both
// come back as store.ErrNotFound so callers cannot enumerate accounts.
func (s *SQLStore) VerifyUser(username, password string) (*models.User, error) {
	var u models.User
	var hash string
	query := s.rebind("SELECT id, username, password_hash, created_at FROM users WHERE username = ?")
	err := s.db.QueryRow(query, username).Scan(&u.ID, &u.Username, &hash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, store.ErrNotFound
	}
	return &u, nil
}
