package insights

import (
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/models"
)

// maxStreakDays bounds the backward walk so corrupted history can never spin
// the loop forever. Ten years of daily logging is past any plausible streak.
const maxStreakDays = 3650

// CalculateStreak returns the number of consecutive calendar days, counting
// backward from the day of now, that have at least one logged entry. A day
// with no entries, including today itself, ends the streak, so the result
// is zero whenever today is empty even if yesterday was not.
func CalculateStreak(entries []models.MealEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	logged := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		logged[e.LoggedAt.Format(DateKey)] = struct{}{}
	}

	streak := 0
	for d := DayStart(now); streak < maxStreakDays; d = d.AddDate(0, 0, -1) {
		if _, ok := logged[d.Format(DateKey)]; !ok {
			break
		}
		streak++
	}
	return streak
}
