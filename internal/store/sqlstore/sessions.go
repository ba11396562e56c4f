package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lzhang/learning-buddy/internal/models"
	"github.com/lzhang/learning-buddy/internal/store"
)

const dateLayout = "2006-01-02"

func (s *SQLStore) AddStudySession(userID int64, subject string, durationMinutes int, goalID *int64, notes string) (int64, error) {
	if strings.TrimSpace(subject) == "" {
		return 0, fmt.Errorf("%w: subject is required", store.ErrInvalidArgument)
	}
	if durationMinutes <= 0 {
		return 0, fmt.Errorf("%w: duration_minutes must be positive", store.ErrInvalidArgument)
	}

	var gid sql.NullInt64
	if goalID != nil {
		gid = sql.NullInt64{Int64: *goalID, Valid: true}
	}

	var id int64
	query := s.rebind(`
		INSERT INTO study_sessions (user_id, goal_id, subject, duration_minutes, notes, session_date)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRow(query, userID, gid, subject, durationMinutes, notes,
		time.Now().Format(dateLayout)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetStudySessions returns the user's sessions from the trailing window of
// days, most recent first. The cutoff is computed here so the same SQL
// runs on both drivers.
func (s *SQLStore) GetStudySessions(userID int64, days int) ([]models.StudySession, error) {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().AddDate(0, 0, -days).Format(dateLayout)

	query := s.rebind(`
		SELECT id, user_id, goal_id, subject, duration_minutes, COALESCE(notes, ''), session_date, created_at
		FROM study_sessions
		WHERE user_id = ? AND session_date >= ?
		ORDER BY session_date DESC, created_at DESC, id DESC
	`)
	rows, err := s.db.Query(query, userID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []models.StudySession{}
	for rows.Next() {
		var sess models.StudySession
		var gid sql.NullInt64
		if err := rows.Scan(&sess.ID, &sess.UserID, &gid, &sess.Subject,
			&sess.DurationMinutes, &sess.Notes, &sess.SessionDate, &sess.CreatedAt); err != nil {
			return nil, err
		}
		if gid.Valid {
			sess.GoalID = &gid.Int64
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

func (s *SQLStore) GetStudyStatistics(userID int64, days int) (*models.StudyStatistics, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days).Format(dateLayout)

	stats := &models.StudyStatistics{SubjectBreakdown: []models.SubjectTime{}}

	query := s.rebind(`
		SELECT COALESCE(SUM(duration_minutes), 0)
		FROM study_sessions
		WHERE user_id = ? AND session_date >= ?
	`)
	if err := s.db.QueryRow(query, userID, cutoff).Scan(&stats.TotalMinutes); err != nil {
		return nil, err
	}

	query = s.rebind(`
		SELECT subject, SUM(duration_minutes) AS total_minutes
		FROM study_sessions
		WHERE user_id = ? AND session_date >= ?
		GROUP BY subject
		ORDER BY total_minutes DESC
	`)
	rows, err := s.db.Query(query, userID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var st models.SubjectTime
		if err := rows.Scan(&st.Subject, &st.TotalMinutes); err != nil {
			return nil, err
		}
		stats.SubjectBreakdown = append(stats.SubjectBreakdown, st)
	}
	return stats, nil
}
