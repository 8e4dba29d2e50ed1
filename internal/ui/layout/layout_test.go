package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("テイスティング", "ランダム", 100)
	if !strings.Contains(h, "Winequiz") {
		t.Error("expected app name in header")
	}
	if !strings.Contains(h, "テイスティング") {
		t.Error("expected title in header")
	}
	if !strings.Contains(h, "ランダム") {
		t.Error("expected status in header")
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "戻る"}}, 80)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "戻る") {
		t.Errorf("footer missing hint: %q", f)
	}
}
