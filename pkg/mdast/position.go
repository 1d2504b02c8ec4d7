package mdast

// Span represents a byte range in the source content.
type Span struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// NoSpan is the span carried by generated nodes.
var NoSpan = Span{Start: -1, End: -1}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given offset is within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Point is a single location in a file: 1-based line and column plus the
// 0-based byte offset into the source text. Line/column and offset are
// always mutually consistent for the same source text.
type Point struct {
	Line   int
	Column int
	Offset int
}

// IsValid returns true if this point has valid (positive line/column) values.
func (p Point) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// Position represents a source range as an ordered pair of points,
// with Start.Offset <= End.Offset.
type Position struct {
	Start Point
	End   Point
}

// IsValid returns true if both endpoints are valid.
func (p Position) IsValid() bool {
	return p.Start.IsValid() && p.End.IsValid()
}

// IsSingleLine returns true if start and end are on the same line.
func (p Position) IsSingleLine() bool {
	return p.Start.Line == p.End.Line
}

// PointPosition is a convenience constructor for a Position covering one point.
func PointPosition(pt Point) Position {
	return Position{Start: pt, End: pt}
}
