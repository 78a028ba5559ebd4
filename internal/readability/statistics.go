package readability

// Counts holds the raw tallies of a finished scan.
type Counts struct {
	Runs  [letterClasses]int
	Chars [letterClasses]int
	Kuten int
	Toten int
}

// Statistics is the immutable summary of one text. It is built once by
// Classify or FromCounts and passed around by value.
type Statistics struct {
	counts Counts

	// Run-count shares per class (pa, ph, pc, pk).
	PA, PH, PC, PK float64
	// Mean run length per class (la, lh, lc, lk).
	LA, LH, LC, LK float64
	// Toten to kuten ratio.
	CP float64
	// Mean sentence length in letters.
	LS float64
}

// Classify scans text once and derives its statistics.
func Classify(text string) Statistics {
	var counts Counts
	current := Other // no run yet
	for _, r := range text {
		class := ClassOf(r)
		switch {
		case class.IsLetter():
			if class != current {
				counts.Runs[class]++
				current = class
			}
			counts.Chars[class]++
		case class == Kuten:
			counts.Kuten++
		case class == Toten:
			counts.Toten++
		}
	}
	return FromCounts(counts)
}

// FromCounts finalises raw counts into statistics.
func FromCounts(c Counts) Statistics {
	s := Statistics{counts: c}

	// A text without a kuten is treated as one sentence.
	kuten := float64(c.Kuten)
	if c.Kuten == 0 {
		kuten = 1
	}

	totalRuns := float64(c.Runs[Alphabet]+c.Runs[Hiragana]+c.Runs[Katakana]+c.Runs[Kanji]) / 100.0
	if totalRuns != 0 {
		s.PA = float64(c.Runs[Alphabet]) / totalRuns
		s.PH = float64(c.Runs[Hiragana]) / totalRuns
		s.PC = float64(c.Runs[Kanji]) / totalRuns
		s.PK = float64(c.Runs[Katakana]) / totalRuns
	}

	s.LA = meanRunLength(c, Alphabet)
	s.LH = meanRunLength(c, Hiragana)
	s.LC = meanRunLength(c, Kanji)
	s.LK = meanRunLength(c, Katakana)

	s.CP = float64(c.Toten) / kuten
	s.LS = float64(c.Chars[Alphabet]+c.Chars[Hiragana]+c.Chars[Kanji]+c.Chars[Katakana]) / kuten
	return s
}

func meanRunLength(c Counts, class Class) float64 {
	if c.Runs[class] == 0 {
		return 0
	}
	return float64(c.Chars[class]) / float64(c.Runs[class])
}

// Counts returns a copy of the raw tallies.
func (s Statistics) Counts() Counts {
	return s.counts
}

// RunCount returns the number of runs of a letter class, 0 for other classes.
func (s Statistics) RunCount(class Class) int {
	if !class.IsLetter() {
		return 0
	}
	return s.counts.Runs[class]
}

// CharCount returns the number of characters of a letter class, 0 for other classes.
func (s Statistics) CharCount(class Class) int {
	if !class.IsLetter() {
		return 0
	}
	return s.counts.Chars[class]
}

// Kuten returns the number of ideographic full stops.
func (s Statistics) Kuten() int {
	return s.counts.Kuten
}

// Toten returns the number of ideographic commas.
func (s Statistics) Toten() int {
	return s.counts.Toten
}

// TotalRuns returns the number of runs across all letter classes.
func (s Statistics) TotalRuns() int {
	total := 0
	for _, n := range s.counts.Runs {
		total += n
	}
	return total
}

// TotalChars returns the number of classified letters.
func (s Statistics) TotalChars() int {
	total := 0
	for _, n := range s.counts.Chars {
		total += n
	}
	return total
}

// RunShare returns the run-count share of a letter class (pa, ph, pc or pk).
func (s Statistics) RunShare(class Class) float64 {
	switch class {
	case Alphabet:
		return s.PA
	case Hiragana:
		return s.PH
	case Katakana:
		return s.PK
	case Kanji:
		return s.PC
	default:
		return 0
	}
}

// MeanRunLength returns the mean run length of a letter class (la, lh, lk or lc).
func (s Statistics) MeanRunLength(class Class) float64 {
	switch class {
	case Alphabet:
		return s.LA
	case Hiragana:
		return s.LH
	case Katakana:
		return s.LK
	case Kanji:
		return s.LC
	default:
		return 0
	}
}
