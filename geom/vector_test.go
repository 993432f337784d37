package geom

import (
	"errors"
	"math"
	"testing"
)

func TestVector2Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vector2
		want Vector2
	}{
		{"neg", Vec2(3, 7).Neg(), Vec2(-3, -7)},
		{"mul", Vec2(4, 0).Mul(3), Vec2(12, 0)},
		{"div", Vec2(4, 5).Div(2), Vec2(2, 2.5)},
		{"add", Vec2(7, -2).Add(Vec2(6, 6)), Vec2(13, 4)},
		{"sub", Vec2(3, 10).Sub(Vec2(8, -7)), Vec2(-5, 17)},
		{"sub scaled", Vec2(3, 10).Sub(Vec2(8, -7).Mul(4)), Vec2(-29, 38)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVector2Metrics(t *testing.T) {
	if l := Vec2(-12, 5).Length(); l != 13 {
		t.Errorf("Length() = %v, want 13", l)
	}
	want := math.Sqrt(4*4 + 44*44)
	if d := Vec2(10, -14).Distance(Vec2(6, 30)); math.Abs(d-want) > 1e-12 {
		t.Errorf("Distance() = %v, want %v", d, want)
	}
	if d := Vec2(2, 6).Dot(Vec2(-3, 8)); d != -6+48 {
		t.Errorf("Dot() = %v, want 42", d)
	}
	// perpendicular dot of the x axis with the y axis is the signed area 1
	if d := Vec2(1, 0).PerpDot(Vec2(0, 1)); d != 1 {
		t.Errorf("PerpDot() = %v, want 1", d)
	}
}

func TestNormalize(t *testing.T) {
	n, err := Vec2(12, 5).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(n.X-12.0/13) > 1e-12 || math.Abs(n.Y-5.0/13) > 1e-12 {
		t.Errorf("Normalize() = %v", n)
	}

	_, err = Vector2{}.Normalize()
	var numErr *NumericError
	if !errors.As(err, &numErr) || !errors.Is(err, ErrNumeric) {
		t.Fatalf("expected a numeric error, got %v", err)
	}

	if _, err = (Vector3{}).Normalize(); !errors.Is(err, ErrNumeric) {
		t.Fatalf("expected a numeric error, got %v", err)
	}
	n3, err := Vector3{X: 0, Y: 3, Z: 4}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(n3.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v", n3.Length())
	}
}

func TestHomogeneous(t *testing.T) {
	p := Vec2(2, 3).Homogeneous()
	if p != (Vector3{2, 3, 1}) {
		t.Errorf("Homogeneous() = %v", p)
	}
	got := p.Transform(Translate3(Vec2(1, -1))).Vector2()
	if got != Vec2(3, 2) {
		t.Errorf("translated point = %v", got)
	}
}
