package insights

import (
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/models"
)

// DateKey is the calendar-day key format used across the history map,
// the streak walk and the series output.
const DateKey = "2006-01-02"

// DayBucket is one day of the history series: a display label, the ISO date
// key, summed totals and the raw entries behind them.
type DayBucket struct {
	Label string `json:"date"`
	Date  string `json:"full_date"`
	Nutrition
	Meals []models.MealEntry `json:"meals"`
}

// HistoricalSeries produces exactly days buckets, oldest to newest, ending at
// the calendar day of now. Days absent from history still appear with zeroed
// totals and an empty meal list, so the output length never depends on how
// sparse the history is.
func HistoricalSeries(history map[string][]models.MealEntry, days int, now time.Time) []DayBucket {
	if days <= 0 {
		return nil
	}
	out := make([]DayBucket, 0, days)
	start := DayStart(now).AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format(DateKey)
		entries := history[key]
		b := DayBucket{
			Label:     d.Format("Jan 2"),
			Date:      key,
			Nutrition: Sum(entries),
			Meals:     entries,
		}
		if b.Meals == nil {
			b.Meals = []models.MealEntry{}
		}
		out = append(out, b)
	}
	return out
}

// DayStart truncates t to local midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
