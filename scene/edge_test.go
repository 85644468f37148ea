package scene

import "testing"

func TestEdgeType_String(t *testing.T) {
	tests := []struct {
		t    EdgeType
		want string
	}{
		{EdgeLineTR, "LineTR"},
		{EdgeLineTL, "LineTL"},
		{EdgeLineBR, "LineBR"},
		{EdgeLineBL, "LineBL"},
		{EdgeLineVT, "LineVT"},
		{EdgeLineVB, "LineVB"},
		{EdgeLineHR, "LineHR"},
		{EdgeLineHL, "LineHL"},
		{EdgeCircleTR, "CircleTR"},
		{EdgeCircleTL, "CircleTL"},
		{EdgeCircleBR, "CircleBR"},
		{EdgeCircleBL, "CircleBL"},
		{EdgeArcTR, "ArcTR"},
		{EdgeArcTL, "ArcTL"},
		{EdgeArcBR, "ArcBR"},
		{EdgeArcBL, "ArcBL"},
		{EdgeType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EdgeType(%#x).String() = %q, want %q", byte(tt.t), got, tt.want)
		}
	}
}

func TestEdgeType_Classifiers(t *testing.T) {
	tests := []struct {
		t                                  EdgeType
		line, diag, vert, hori, circ, arc bool
	}{
		{EdgeLineTR, true, true, false, false, false, false},
		{EdgeLineBL, true, true, false, false, false, false},
		{EdgeLineVT, true, false, true, false, false, false},
		{EdgeLineVB, true, false, true, false, false, false},
		{EdgeLineHR, true, false, false, true, false, false},
		{EdgeLineHL, true, false, false, true, false, false},
		{EdgeCircleTR, false, false, false, false, true, false},
		{EdgeCircleBL, false, false, false, false, true, false},
		{EdgeArcTR, false, false, false, false, false, true},
		{EdgeArcBL, false, false, false, false, false, true},
		{EdgeType(0), false, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.t.String(), func(t *testing.T) {
			if got := tt.t.IsLine(); got != tt.line {
				t.Errorf("IsLine() = %v, want %v", got, tt.line)
			}
			if got := tt.t.IsDiagonal(); got != tt.diag {
				t.Errorf("IsDiagonal() = %v, want %v", got, tt.diag)
			}
			if got := tt.t.IsVertical(); got != tt.vert {
				t.Errorf("IsVertical() = %v, want %v", got, tt.vert)
			}
			if got := tt.t.IsHorizontal(); got != tt.hori {
				t.Errorf("IsHorizontal() = %v, want %v", got, tt.hori)
			}
			if got := tt.t.IsAxisAligned(); got != (tt.vert || tt.hori) {
				t.Errorf("IsAxisAligned() = %v, want %v", got, tt.vert || tt.hori)
			}
			if got := tt.t.IsCircle(); got != tt.circ {
				t.Errorf("IsCircle() = %v, want %v", got, tt.circ)
			}
			if got := tt.t.IsArc(); got != tt.arc {
				t.Errorf("IsArc() = %v, want %v", got, tt.arc)
			}
		})
	}
}

// Every defined type belongs to exactly one family.
func TestEdgeType_FamilyPartition(t *testing.T) {
	all := []EdgeType{
		EdgeLineTR, EdgeLineTL, EdgeLineBR, EdgeLineBL,
		EdgeLineVT, EdgeLineVB, EdgeLineHR, EdgeLineHL,
		EdgeCircleTR, EdgeCircleTL, EdgeCircleBR, EdgeCircleBL,
		EdgeArcTR, EdgeArcTL, EdgeArcBR, EdgeArcBL,
	}
	for _, et := range all {
		n := 0
		if et.IsDiagonal() {
			n++
		}
		if et.IsAxisAligned() {
			n++
		}
		if et.IsCircle() {
			n++
		}
		if et.IsArc() {
			n++
		}
		if n != 1 {
			t.Errorf("%s belongs to %d families, want 1", et, n)
		}
	}
}
