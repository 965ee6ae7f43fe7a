package resolver

import "testing"

func TestDetectAspect(t *testing.T) {
	tests := []struct {
		width, height int
		want          string
	}{
		{1024, 1024, "1:1"},
		{1920, 1080, "16:9"},
		{1080, 1920, "9:16"},
		{1536, 1024, "3:2"},
		{1024, 1536, "2:3"},
		{960, 1280, "3:4"},
		{1280, 960, "4:3"},
		{1024, 1280, "4:5"},
		{1280, 1024, "5:4"},
		{2688, 1152, "21:9"},
		// 1.75 is 0.0278 away from 16:9, beyond the 0.01 cutoff.
		{1344, 768, "auto"},
		{2048, 512, "auto"},
		// 768/1344 = 0.5714, within 0.0090 of 9:16.
		{768, 1344, "9:16"},
	}

	for _, tt := range tests {
		if got := DetectAspect(tt.width, tt.height); got != tt.want {
			t.Errorf("DetectAspect(%d, %d) = %q, want %q", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestDetectAspectDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 100}, {100, 0}, {-100, 100}} {
		if got := DetectAspect(dims[0], dims[1]); got != AspectAuto {
			t.Errorf("DetectAspect(%d, %d) = %q, want %q", dims[0], dims[1], got, AspectAuto)
		}
	}
}
