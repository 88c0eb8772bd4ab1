package pixkit

import (
	"math"
	"testing"
)

func pointsClose(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestThickLineQuad(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		width      float64
		want       [4]Point
	}{
		{
			name:  "horizontal",
			start: Pt(0, 0), end: Pt(10, 0), width: 4,
			want: [4]Point{Pt(0, 2), Pt(0, -2), Pt(10, -2), Pt(10, 2)},
		},
		{
			name:  "vertical",
			start: Pt(5, 0), end: Pt(5, 10), width: 2,
			want: [4]Point{Pt(4, 0), Pt(6, 0), Pt(6, 10), Pt(4, 10)},
		},
		{
			name:  "degenerate uses unnormalized fallback",
			start: Pt(3, 3), end: Pt(3, 3), width: 2,
			want: [4]Point{Pt(4, 4), Pt(2, 2), Pt(2, 2), Pt(4, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThickLineQuad(tt.start, tt.end, tt.width)
			for i := range got {
				if !pointsClose(got[i], tt.want[i]) {
					t.Errorf("corner %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestThickLineQuad_WidthIsPreserved(t *testing.T) {
	start, end := Pt(1, 2), Pt(7, 11)
	q := ThickLineQuad(start, end, 3)
	if w := q[0].Sub(q[1]).Length(); math.Abs(w-3) > 1e-9 {
		t.Errorf("quad width at start = %v, want 3", w)
	}
	if w := q[3].Sub(q[2]).Length(); math.Abs(w-3) > 1e-9 {
		t.Errorf("quad width at end = %v, want 3", w)
	}
	// The center of each short edge is the original endpoint.
	if mid := q[0].Lerp(q[1], 0.5); !pointsClose(mid, start) {
		t.Errorf("start edge midpoint = %v, want %v", mid, start)
	}
}

func TestThickLineTriangles(t *testing.T) {
	q := ThickLineQuad(Pt(0, 0), Pt(4, 0), 2)
	tri := ThickLineTriangles(Pt(0, 0), Pt(4, 0), 2)
	want := [6]Point{q[0], q[1], q[2], q[0], q[2], q[3]}
	if tri != want {
		t.Errorf("ThickLineTriangles() = %v, want %v", tri, want)
	}
}
