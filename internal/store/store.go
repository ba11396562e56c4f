package store

import (
	"errors"

	"github.com/lzhang/learning-buddy/internal/models"
)

var (
	// ErrUsernameTaken is returned by CreateUser when the username exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrNotFound is returned by VerifyUser for a bad username or a bad
	// password; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned for missing or out-of-range fields.
	ErrInvalidArgument = errors.New("invalid argument")
)

type Store interface {
	// User operations
	CreateUser(username, password string) (int64, error)
	VerifyUser(username, password string) (*models.User, error)

	// Chat operations
	AddChatMessage(userID int64, userMessage, aiResponse string) error
	GetChatHistory(userID int64, limit int) ([]models.ChatMessage, error)

	// Goal operations
	CreateGoal(userID int64, title, description, category string, priority int, targetDate string) (int64, error)
	GetGoals(userID int64, status string) ([]models.LearningGoal, error)
	UpdateGoalStatus(goalID int64, status string) (bool, error)
	DeleteGoal(goalID int64) (bool, error)
	GetGoalProgress(userID int64) (*models.GoalProgress, error)

	// Study session operations
	AddStudySession(userID int64, subject string, durationMinutes int, goalID *int64, notes string) (int64, error)
	GetStudySessions(userID int64, days int) ([]models.StudySession, error)
	GetStudyStatistics(userID int64, days int) (*models.StudyStatistics, error)

	Close() error
}
