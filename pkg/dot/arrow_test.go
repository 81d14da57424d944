package dot

import "testing"

func TestShapeString(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  string
	}{
		{"None", ShapeNone(), "none"},
		{"Normal", ShapeNormal(FillFilled, SideBoth), "normal"},
		{"OpenNormal", ShapeNormal(FillOpen, SideBoth), "onormal"},
		{"LeftNormal", ShapeNormal(FillFilled, SideLeft), "lnormal"},
		{"OpenRightNormal", ShapeNormal(FillOpen, SideRight), "ornormal"},
		{"Box", ShapeBox(FillFilled, SideBoth), "box"},
		{"OpenLeftBox", ShapeBox(FillOpen, SideLeft), "olbox"},
		{"Crow", ShapeCrow(SideBoth), "crow"},
		{"LeftCrow", ShapeCrow(SideLeft), "lcrow"},
		{"RightCurve", ShapeCurve(SideRight), "rcurve"},
		{"ICurve", ShapeICurve(FillOpen, SideBoth), "oicurve"},
		{"Diamond", ShapeDiamond(FillFilled, SideRight), "rdiamond"},
		{"Dot", ShapeDot(FillFilled), "dot"},
		{"OpenDot", ShapeDot(FillOpen), "odot"},
		{"Inv", ShapeInv(FillFilled, SideBoth), "inv"},
		{"Tee", ShapeTee(SideLeft), "ltee"},
		{"Vee", ShapeVee(SideBoth), "vee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArrowString(t *testing.T) {
	tests := []struct {
		name  string
		arrow Arrow
		want  string
	}{
		{"Default", ArrowDefault(), ""},
		{"ZeroValue", Arrow{}, ""},
		{"None", ArrowNone(), "none"},
		{"Normal", ArrowNormal(), "normal"},
		{"TwoShapes", ArrowFrom(ShapeDot(FillOpen), ShapeNormal(FillFilled, SideBoth)), "odotnormal"},
		{"FourShapes", ArrowFrom(
			ShapeVee(SideLeft),
			ShapeTee(SideBoth),
			ShapeBox(FillOpen, SideRight),
			ShapeCrow(SideBoth),
		), "lveeteeorboxcrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arrow.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Default-ness is "sequence is empty", not "renders to empty string":
// an explicit no-arrow still triggers attribute emission.
func TestArrowIsDefault(t *testing.T) {
	if !ArrowDefault().IsDefault() {
		t.Error("ArrowDefault().IsDefault() = false, want true")
	}
	if (Arrow{}).IsDefault() != true {
		t.Error("zero Arrow should be default")
	}
	if ArrowNone().IsDefault() {
		t.Error("ArrowNone().IsDefault() = true, want false")
	}
	if ArrowFrom().IsDefault() != true {
		t.Error("ArrowFrom() with no shapes should be default")
	}
}
