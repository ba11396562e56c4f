// Package stats derives read-only summaries from stored rows.
package stats

import (
	"github.com/lzhang/learning-buddy/internal/models"
	"github.com/lzhang/learning-buddy/internal/store"
)

// Aggregator computes goal-progress and study-time summaries. It holds no
// state of its own; every call re-queries the store, so results always
// reflect the latest write.
type Aggregator struct {
	Store store.Store
}

func (a *Aggregator) GoalProgress(userID int64) (*models.GoalProgress, error) {
	return a.Store.GetGoalProgress(userID)
}

func (a *Aggregator) StudyStatistics(userID int64, days int) (*models.StudyStatistics, error) {
	return a.Store.GetStudyStatistics(userID, days)
}
