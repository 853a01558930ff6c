package insights

import (
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/models"
)

// DaySummary is one day of the progress summary, rendered from a stored
// DailyProgress snapshot rather than re-summed raw entries.
type DaySummary struct {
	Label string `json:"date"`
	Date  string `json:"full_date"`
	Nutrition
}

// ProgressSeries renders DailyProgress snapshots as exactly days summaries,
// oldest to newest, ending at the calendar day of now. Days without a
// snapshot appear zeroed, mirroring HistoricalSeries.
func ProgressSeries(snapshots []models.DailyProgress, days int, now time.Time) []DaySummary {
	if days <= 0 {
		return nil
	}
	byDay := make(map[string]models.DailyProgress, len(snapshots))
	for _, s := range snapshots {
		byDay[s.Date.Format(DateKey)] = s
	}

	out := make([]DaySummary, 0, days)
	start := DayStart(now).AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format(DateKey)
		sum := DaySummary{Label: d.Format("Jan 2"), Date: key}
		if s, ok := byDay[key]; ok {
			sum.Nutrition = Nutrition{
				Calories: nz(s.Calories),
				Protein:  nz(s.Protein),
				Carbs:    nz(s.Carbs),
				Fats:     nz(s.Fats),
				Fiber:    nz(s.Fiber),
				Sugar:    nz(s.Sugar),
			}
		}
		out = append(out, sum)
	}
	return out
}
