package readability

// Result pairs the statistics of a text with both readability scores.
type Result struct {
	Text   string
	Stats  Statistics
	ScoreA float64
	ScoreB float64
}

// Score classifies text and evaluates both formulas.
func Score(text string) Result {
	stats := Classify(text)
	return Result{
		Text:   text,
		Stats:  stats,
		ScoreA: ScoreA(stats),
		ScoreB: ScoreB(stats),
	}
}

// ScoreA evaluates formula A, which includes the run-share terms.
// Each product is converted to float64 so it is rounded before being summed
// (no fused multiply-add). Terms are summed left to right in formula order.
func ScoreA(s Statistics) float64 {
	return float64(0.06*s.PA) + float64(0.25*s.PH) -
		float64(0.19*s.PC) - float64(0.61*s.PK) -
		float64(1.34*s.LS) - float64(1.35*s.LA) +
		float64(7.52*s.LH) - float64(22.1*s.LC) -
		float64(5.3*s.LK) - float64(3.87*s.CP) -
		109.1
}

// ScoreB evaluates formula B.
func ScoreB(s Statistics) float64 {
	return float64(-0.12*s.LS) + float64(-1.37*s.LA) +
		float64(7.4*s.LH) + float64(-23.18*s.LC) +
		float64(-5.4*s.LK) + float64(-4.67*s.CP) +
		115.79
}
