package glm

import "testing"

func TestVec2MulScalar(t *testing.T) {
	if got := (Vec2f{1, -2}).MulScalar(0.5); got != (Vec2f{0.5, -1}) {
		t.Errorf("MulScalar: got %v", got)
	}

	if got := (Vec2[uint32]{3, 4}).MulScalar(2); got != (Vec2[uint32]{6, 8}) {
		t.Errorf("MulScalar: got %v", got)
	}
}

func TestVec4Truncate(t *testing.T) {
	if got := (Vec4f{0.5, -0.5, 1, 2}).Truncate(); got != (Vec3f{0.5, -0.5, 1}) {
		t.Errorf("Truncate: got %v", got)
	}
}
