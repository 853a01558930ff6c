package insights_test

import (
	"testing"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
)

func TestQuoteOfDayDeterministic(t *testing.T) {
	t.Parallel()

	a := insights.QuoteOfDay(17)
	b := insights.QuoteOfDay(17)
	if a != b {
		t.Fatalf("same day produced different quotes: %+v vs %+v", a, b)
	}
	if a.Text == "" {
		t.Fatalf("empty quote for day 17")
	}
}

func TestQuoteOfDayWrapsAroundList(t *testing.T) {
	t.Parallel()

	for day := 0; day <= 31; day++ {
		q := insights.QuoteOfDay(day)
		if q.Text == "" {
			t.Fatalf("day %d produced an empty quote", day)
		}
	}
}

func TestGreetingBands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hour int
		want string
	}{
		{0, "Good Morning"},
		{11, "Good Morning"},
		{12, "Good Afternoon"},
		{16, "Good Afternoon"},
		{17, "Good Evening"},
		{20, "Good Evening"},
		{21, "Good Night"},
		{23, "Good Night"},
	}
	for _, tc := range cases {
		if got := insights.Greeting(tc.hour); got != tc.want {
			t.Fatalf("Greeting(%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}
