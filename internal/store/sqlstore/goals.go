package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lzhang/learning-buddy/internal/models"
	"github.com/lzhang/learning-buddy/internal/store"
)

func (s *SQLStore) CreateGoal(userID int64, title, description, category string, priority int, targetDate string) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("%w: title is required", store.ErrInvalidArgument)
	}
	if category == "" {
		category = "general"
	}
	if priority < models.PriorityLow || priority > models.PriorityHigh {
		priority = models.PriorityMedium
	}

	target := sql.NullString{String: targetDate, Valid: targetDate != ""}

	var id int64
	query := s.rebind(`
		INSERT INTO learning_goals (user_id, title, description, category, priority, target_date)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	if err := s.db.QueryRow(query, userID, title, description, category, priority, target).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetGoals lists the user's goals, highest priority first and newest first
// within a priority. A non-empty status restricts to that status.
func (s *SQLStore) GetGoals(userID int64, status string) ([]models.LearningGoal, error) {
	query := `
		SELECT id, user_id, title, COALESCE(description, ''), category,
		       priority, status, COALESCE(target_date, ''), created_at, updated_at
		FROM learning_goals
		WHERE user_id = ?
	`
	args := []interface{}{userID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	query += " ORDER BY priority DESC, created_at DESC, id DESC"

	rows, err := s.db.Query(s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.LearningGoal{}
	for rows.Next() {
		var g models.LearningGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.Category,
			&g.Priority, &g.Status, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// UpdateGoalStatus sets the status and refreshes updated_at. The goal id
// is trusted as supplied; ownership is not verified here.
func (s *SQLStore) UpdateGoalStatus(goalID int64, status string) (bool, error) {
	query := s.rebind("UPDATE learning_goals SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")
	result, err := s.db.Exec(query, status, goalID)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteGoal hard-deletes the goal. Study sessions that reference it keep
// their goal_id; the reference is deliberately left dangling.
func (s *SQLStore) DeleteGoal(goalID int64) (bool, error) {
	query := s.rebind("DELETE FROM learning_goals WHERE id = ?")
	result, err := s.db.Exec(query, goalID)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLStore) GetGoalProgress(userID int64) (*models.GoalProgress, error) {
	var p models.GoalProgress
	query := s.rebind(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0)
		FROM learning_goals
		WHERE user_id = ?
	`)
	if err := s.db.QueryRow(query, userID).Scan(&p.TotalGoals, &p.CompletedGoals, &p.ActiveGoals); err != nil {
		return nil, err
	}
	return &p, nil
}
