package quiz

// Feedback is the headline/tip pair shown on the score page.
type Feedback struct {
	Headline string `json:"headline"`
	Tip      string `json:"tip"`
}

// FeedbackFor maps a score/total pair to its feedback. Lower bounds
// are inclusive; the thresholds are fixed for compatibility with
// existing attempt views.
func FeedbackFor(score, total int) Feedback {
	pct := 0.0
	if total > 0 {
		pct = float64(score) / float64(total) * 100
	}
	switch {
	case pct >= 90:
		return Feedback{"Excellent!", "You understood the story very well. Keep it up!"}
	case pct >= 70:
		return Feedback{"Great job!", "You did well. Try reading again to remember more details."}
	case pct >= 50:
		return Feedback{"Good effort!", "You’re improving. Try reading slowly and looking at key details."}
	default:
		return Feedback{"Keep trying!", "It’s okay. Read again and focus on the main characters and events."}
	}
}
