package sqlstore

import (
	"github.com/lzhang/learning-buddy/internal/models"
)

func (s *SQLStore) AddChatMessage(userID int64, userMessage, aiResponse string) error {
	query := s.rebind("INSERT INTO chat_history (user_id, user_message, ai_response) VALUES (?, ?, ?)")
	_, err := s.db.Exec(query, userID, userMessage, aiResponse)
	return err
}

// GetChatHistory returns at most limit of the user's most recent messages,
// oldest first. An unknown user yields an empty slice, not an error.
func (s *SQLStore) GetChatHistory(userID int64, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 10
	}

	query := s.rebind(`
		SELECT id, user_id, user_message, ai_response, timestamp
		FROM chat_history
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`)
	rows, err := s.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.UserMessage, &m.AIResponse, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	// The query selects newest-first to apply the limit; flip to the
	// chronological order callers expect.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
