package insights

// Quote is a motivational line shown on the dashboard header.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{"Take care of your body. It's the only place you have to live.", "Jim Rohn"},
	{"The groundwork for all happiness is good health.", "Leigh Hunt"},
	{"Your diet is a bank account. Good food choices are good investments.", "Bethenny Frankel"},
	{"To eat is a necessity, but to eat intelligently is an art.", "François de La Rochefoucauld"},
	{"A healthy outside starts from the inside.", "Robert Urich"},
	{"Every time you eat is an opportunity to nourish your body.", "Unknown"},
	{"Small daily improvements are the key to staggering long-term results.", "Unknown"},
	{"He who has health has hope, and he who has hope has everything.", "Arabian proverb"},
	{"Let food be thy medicine and medicine be thy food.", "Hippocrates"},
	{"Motivation gets you started. Habit keeps you going.", "Jim Ryun"},
}

// QuoteOfDay picks deterministically by day of month, so the quote stays
// fixed through the day and rotates with the calendar.
func QuoteOfDay(dayOfMonth int) Quote {
	idx := dayOfMonth % len(quotes)
	if idx < 0 {
		idx += len(quotes)
	}
	return quotes[idx]
}

// Greeting returns a salutation banded by hour of day (0–23).
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning"
	case hour < 17:
		return "Good Afternoon"
	case hour < 21:
		return "Good Evening"
	default:
		return "Good Night"
	}
}
