package viewport

// Align computes the indicator strip's scroll offset that brings the
// active entry into the strip's visible region. An entry already
// fully visible causes no movement; one off the near edge aligns to
// that edge, one off the far edge aligns to the far edge.
func Align(strip View, entry Span) (offset float64, moved bool) {
	switch {
	case entry.Start < strip.Offset:
		return entry.Start, true
	case entry.End > strip.End():
		return entry.End - strip.Size, true
	default:
		return strip.Offset, false
	}
}

// Overflows reports whether the strip's content is wider than its
// window, in which case the strip exposes its overflow affordance.
func Overflows(content Span, strip View) bool {
	return content.Size() > strip.Size
}
