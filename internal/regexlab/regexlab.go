// Package regexlab implements the regex tester: run an RE2 pattern
// against an input string and report matches, groups and a highlight
// segmentation, plus a small saved-pattern library.
package regexlab

// Match is one regexp match with its submatch groups.
type Match struct {
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Text   string  `json:"text"`
	Groups []Group `json:"groups,omitempty"`
}

// Group is one capturing group inside a match. Start and End are -1 when
// the group did not participate.
type Group struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text,omitempty"`
}

// Segment is one run of the input, flagged when it falls inside a match.
// Concatenating all segment texts reproduces the input exactly.
type Segment struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
}

// Result is the outcome of running a pattern. CompileError is set inline
// when the pattern does not compile; everything else is zero then.
type Result struct {
	Pattern      string    `json:"pattern"`
	CompileError string    `json:"compile_error,omitempty"`
	Matches      []Match   `json:"matches,omitempty"`
	Segments     []Segment `json:"segments,omitempty"`
}
