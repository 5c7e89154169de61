package regexlab

import "regexp"

// maxMatches caps how many matches a single run reports, so a pattern
// matching the empty string cannot blow up the response.
const maxMatches = 1000

// Run compiles pattern and executes it against input. A compile failure
// comes back inline in the result, never as an error.
func Run(pattern, input string) Result {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Result{Pattern: pattern, CompileError: err.Error()}
	}

	result := Result{Pattern: pattern}
	names := re.SubexpNames()

	for _, idx := range re.FindAllStringSubmatchIndex(input, maxMatches) {
		m := Match{Start: idx[0], End: idx[1], Text: input[idx[0]:idx[1]]}

		for g := 1; g < len(idx)/2; g++ {
			start, end := idx[2*g], idx[2*g+1]
			group := Group{Index: g, Name: names[g], Start: start, End: end}
			if start >= 0 {
				group.Text = input[start:end]
			}
			m.Groups = append(m.Groups, group)
		}
		result.Matches = append(result.Matches, m)
	}

	result.Segments = segment(input, result.Matches)
	return result
}

// segment splits input into matched and unmatched runs, in order.
// Zero-width matches contribute no segment.
func segment(input string, matches []Match) []Segment {
	if input == "" {
		return nil
	}

	var segments []Segment
	pos := 0
	for _, m := range matches {
		if m.Start > pos {
			segments = append(segments, Segment{Text: input[pos:m.Start]})
		}
		if m.End > m.Start {
			segments = append(segments, Segment{Text: input[m.Start:m.End], Matched: true})
		}
		if m.End > pos {
			pos = m.End
		}
	}
	if pos < len(input) {
		segments = append(segments, Segment{Text: input[pos:]})
	}
	return segments
}
