package wordle

// Hint is the best known state of a keyboard letter.
type Hint uint8

const (
	HintUnknown Hint = iota
	HintAbsent
	HintPresent
	HintExact
)

// hintFor lifts a classification into a hint.
func hintFor(c Classification) Hint {
	switch c {
	case Exact:
		return HintExact
	case Present:
		return HintPresent
	case Absent:
		return HintAbsent
	default:
		return HintUnknown
	}
}

// LetterHints folds records into per-letter hints; a stronger classification
// always wins (Exact > Present > Absent).
func LetterHints(records []GuessRecord) map[byte]Hint {
	hints := make(map[byte]Hint)
	for _, rec := range records {
		for i := 0; i < len(rec.Word) && i < WordLen; i++ {
			ch := rec.Word[i]
			if h := hintFor(rec.Feedback[i]); h > hints[ch] {
				hints[ch] = h
			}
		}
	}
	return hints
}
