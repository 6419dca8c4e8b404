package text

import "golang.org/x/text/unicode/bidi"

// Direction is the paragraph direction of a run of text.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// DetectDirection returns the paragraph direction of s using the
// Unicode bidirectional algorithm. Text whose first directional run is
// right-to-left (Arabic, Hebrew) is RTL; everything else, including
// neutral-only text, is LTR.
func DetectDirection(s string) Direction {
	if s == "" {
		return DirectionLTR
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}
