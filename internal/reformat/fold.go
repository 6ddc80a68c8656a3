package reformat

// Stats summarizes one Fold. Records counts quality lines emitted, i.e.
// complete four-line records.
type Stats struct {
	Lines   int
	Emitted int
	Records int
}

// Fold runs the state machine over lines from ExpectHeader and returns the
// formatted output, one "\n"-terminated entry per emitted line.
func Fold(lines []string, length int) []string {
	out, _ := FoldStats(lines, length)
	return out
}

// FoldStats is Fold plus counters for diagnostics.
func FoldStats(lines []string, length int) ([]string, Stats) {
	var out []string
	st := Stats{Lines: len(lines)}
	phase := ExpectHeader
	for _, raw := range lines {
		prev := phase
		next, s, ok := Step(phase, Normalize(raw), length)
		phase = next
		if !ok {
			continue
		}
		out = append(out, s+"\n")
		st.Emitted++
		if prev == ExpectQuality {
			st.Records++
		}
	}
	return out, st
}
