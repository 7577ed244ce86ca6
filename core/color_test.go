package core

import "testing"

func TestParseHex(t *testing.T) {
	got := ParseHex("#ff3b30")
	want := RGB{0xff, 0x3b, 0x30}
	if got != want {
		t.Errorf("ParseHex(#ff3b30) = %v, want %v", got, want)
	}

	if got := ParseHex("not-a-color"); got != RGBWhite {
		t.Errorf("Expected white fallback for invalid hex, got %v", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	dst := RGB{10, 20, 30}
	src := RGB{200, 100, 0}

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Alpha 0 should keep destination, got %v", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Alpha 1 should return source, got %v", got)
	}

	mid := dst.Blend(src, 0.5)
	if mid.R != 105 || mid.G != 60 || mid.B != 15 {
		t.Errorf("Unexpected half blend: %v", mid)
	}
}

func TestRepeatedBlendConverges(t *testing.T) {
	c := RGBWhite
	target := RGB{102, 126, 234}
	for i := 0; i < 40; i++ {
		c = c.Blend(target, 0.3)
	}
	if !c.Near(target, 1) {
		t.Errorf("Expected repeated wash to converge on %v, got %v", target, c)
	}
}

func TestDarken(t *testing.T) {
	c := RGB{255, 59, 48}

	if got := c.Darken(0); !got.Near(c, 1) {
		t.Errorf("Darken(0) should keep color, got %v", got)
	}
	if got := c.Darken(1); !got.Near(RGBBlack, 1) {
		t.Errorf("Darken(1) should reach black, got %v", got)
	}

	half := c.Darken(0.5)
	if int(half.R)+int(half.G)+int(half.B) >= int(c.R)+int(c.G)+int(c.B) {
		t.Errorf("Darken(0.5) should reduce brightness, got %v", half)
	}
}
