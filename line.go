package pixkit

// degenerateNormal is used for zero-length lines. It is not a unit
// vector, so the quad of a degenerate line is wider than requested.
var degenerateNormal = Point{X: 1, Y: 1}

// ThickLineQuad returns the corners of a rectangle of the given width
// centered on the segment from start to end.
//
// The corners are ordered (start+n, start-n, end-n, end+n) where n is the
// segment normal scaled to width/2, which makes them usable as a triangle
// fan or as the two triangles (0,1,2) and (0,2,3).
//
// For a zero-length segment the normal falls back to (1, 1) without
// normalization.
func ThickLineQuad(start, end Point, width float64) [4]Point {
	normal := end.Sub(start).Perp()
	if normal.X == 0 && normal.Y == 0 {
		normal = degenerateNormal
	} else {
		normal = normal.Normalize()
	}
	n := normal.Mul(width / 2)

	return [4]Point{
		start.Add(n),
		start.Sub(n),
		end.Sub(n),
		end.Add(n),
	}
}

// ThickLineTriangles expands ThickLineQuad into six vertices forming two
// triangles, for pipelines without index buffers.
func ThickLineTriangles(start, end Point, width float64) [6]Point {
	q := ThickLineQuad(start, end, width)
	return [6]Point{q[0], q[1], q[2], q[0], q[2], q[3]}
}
