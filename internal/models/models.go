package models

import "time"

// Goal statuses. Transitions are free-form; these are the three values the
// rest of the system understands.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Goal priorities, ordinal low to high.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	Timestamp   time.Time `json:"timestamp"`
}

type LearningGoal struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    int       `json:"priority"`
	Status      string    `json:"status"`
	TargetDate  string    `json:"target_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StudySession struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	GoalID          *int64    `json:"goal_id,omitempty"`
	Subject         string    `json:"subject"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
	SessionDate     string    `json:"session_date"`
	CreatedAt       time.Time `json:"created_at"`
}

type GoalProgress struct {
	TotalGoals     int `json:"total_goals"`
	CompletedGoals int `json:"completed_goals"`
	ActiveGoals    int `json:"active_goals"`
}

type SubjectTime struct {
	Subject      string `json:"subject"`
	TotalMinutes int    `json:"total_minutes"`
}

type StudyStatistics struct {
	TotalMinutes     int           `json:"total_minutes"`
	SubjectBreakdown []SubjectTime `json:"subject_breakdown"`
}
