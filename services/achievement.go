package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/goalsync/goalsync/models"
	"github.com/goalsync/goalsync/stores"
)

// streakThresholds maps streak lengths to the achievements they unlock. The
// checks are independent: one call can fire several at once.
var streakThresholds = []struct {
	Streak int
	ID     string
}{
	{1, "first_checkin"},
	{7, "week_warrior"},
	{21, "habit_former"},
	{30, "monthly_master"},
	{100, "century_club"},
}

// AchievementStatus is a catalogue entry annotated with the user's unlock
// state.
type AchievementStatus struct {
	models.AchievementDef
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// UnlockResult reports the outcome of one unlock attempt.
type UnlockResult struct {
	Achievement AchievementStatus `json:"achievement"`
	IsNew       bool              `json:"is_new"`
	XPGained    int               `json:"xp_gained"`
	NewTotalXP  int               `json:"new_total_xp"`
	LeveledUp   bool              `json:"leveled_up"`
	NewLevel    int               `json:"new_level,omitempty"`
}

// AchievementService drives the per-user locked→unlocked state machine and
// the XP ledger behind it.
type AchievementService struct {
	states *stores.GameStateStore
	clock  Clock
	notify *NotificationService
}

// NewAchievementService wires the tracker. notify may be nil in tests.
func NewAchievementService(states *stores.GameStateStore, clock Clock, notify *NotificationService) *AchievementService {
	return &AchievementService{states: states, clock: clock, notify: notify}
}

// Unlock moves an achievement to unlocked for the user. The transition is
// one-way and idempotent: a repeat call reports IsNew=false with zero XP and
// leaves state untouched. Unknown ids fail with ErrNotFound.
func (s *AchievementService) Unlock(userID, achievementID string) (UnlockResult, error) {
	def, ok := models.AchievementByID(achievementID)
	if !ok {
		return UnlockResult{}, fmt.Errorf("achievement %q: %w", achievementID, ErrNotFound)
	}

	var res UnlockResult
	s.states.Update(userID, func(st *models.UserGameState) {
		if at, done := st.UnlockedAt[def.ID]; done {
			unlockedAt := at
			res = UnlockResult{
				Achievement: AchievementStatus{AchievementDef: def, Unlocked: true, UnlockedAt: &unlockedAt},
				NewTotalXP:  st.TotalXP,
			}
			return
		}

		oldLevel := LevelFor(st.TotalXP).Current.Level
		now := s.clock.Now()
		st.UnlockedIDs = append(st.UnlockedIDs, def.ID)
		st.UnlockedAt[def.ID] = now
		st.TotalXP += def.Points
		newLevel := LevelFor(st.TotalXP).Current.Level

		res = UnlockResult{
			Achievement: AchievementStatus{AchievementDef: def, Unlocked: true, UnlockedAt: &now},
			IsNew:       true,
			XPGained:    def.Points,
			NewTotalXP:  st.TotalXP,
			LeveledUp:   newLevel > oldLevel,
		}
		if res.LeveledUp {
			res.NewLevel = newLevel
		}
	})

	if res.IsNew && s.notify != nil {
		s.notify.AchievementUnlocked(userID, def)
		if res.LeveledUp {
			s.notify.LevelUp(userID, LevelFor(res.NewTotalXP).Current)
		}
	}
	return res, nil
}

// CheckStreakThresholds sweeps the streak milestone table and unlocks every
// qualifying achievement, returning only those that are new this call.
func (s *AchievementService) CheckStreakThresholds(userID string, streak int) ([]UnlockResult, error) {
	var newly []UnlockResult
	for _, t := range streakThresholds {
		if streak < t.Streak {
			continue
		}
		res, err := s.Unlock(userID, t.ID)
		if err != nil {
			return nil, err
		}
		if res.IsNew {
			newly = append(newly, res)
		}
	}
	return newly, nil
}

// StateFor returns a snapshot of the user's game state.
func (s *AchievementService) StateFor(userID string) models.UserGameState {
	return s.states.Get(userID)
}

// ListFor returns the full catalogue annotated with the user's unlock state,
// unlocked entries first, then by points descending.
func (s *AchievementService) ListFor(userID string) []AchievementStatus {
	st := s.states.Get(userID)
	out := make([]AchievementStatus, 0, len(models.Achievements))
	for _, def := range models.Achievements {
		status := AchievementStatus{AchievementDef: def}
		if at, ok := st.UnlockedAt[def.ID]; ok {
			unlockedAt := at
			status.Unlocked = true
			status.UnlockedAt = &unlockedAt
		}
		out = append(out, status)
	}
	// unlocked first, then by points descending
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Unlocked != out[j].Unlocked {
			return out[i].Unlocked
		}
		return out[i].Points > out[j].Points
	})
	return out
}
