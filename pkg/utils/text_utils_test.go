package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: 16}
}

// TestEllipsizeText 测试标题截断
func TestEllipsizeText(t *testing.T) {
	font := testFace(t)
	full := "Slide to confirm the payment of your order"
	fullWidth := MeasureText(full, font)

	tests := []struct {
		name     string
		maxWidth float64
		check    func(t *testing.T, got string)
	}{
		{
			name:     "足够宽不截断",
			maxWidth: fullWidth + 1,
			check: func(t *testing.T, got string) {
				if got != full {
					t.Errorf("got %q, want unchanged", got)
				}
			},
		},
		{
			name:     "截断后带省略号",
			maxWidth: fullWidth / 2,
			check: func(t *testing.T, got string) {
				if !strings.HasSuffix(got, ellipsis) {
					t.Errorf("got %q, want ellipsis suffix", got)
				}
				if w := MeasureText(got, font); w > fullWidth/2 {
					t.Errorf("width %v exceeds %v", w, fullWidth/2)
				}
				if !strings.HasPrefix(full, strings.TrimSuffix(got, ellipsis)) {
					t.Errorf("got %q is not a prefix of the title", got)
				}
			},
		},
		{
			name:     "放不下省略号",
			maxWidth: 1,
			check: func(t *testing.T, got string) {
				if got != "" {
					t.Errorf("got %q, want empty", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, EllipsizeText(full, font, tt.maxWidth))
		})
	}
}

// TestMeasureTextNilFont 测试没有字体时的降级
func TestMeasureTextNilFont(t *testing.T) {
	if w := MeasureText("abc", nil); w != 0 {
		t.Errorf("MeasureText with nil font = %v, want 0", w)
	}
	if got := EllipsizeText("abc", nil, 1); got != "abc" {
		t.Errorf("EllipsizeText with nil font = %q, want unchanged", got)
	}
}

func TestPrefixRunes(t *testing.T) {
	if got := prefixRunes("滑动确认", 2); got != "滑动" {
		t.Errorf("prefixRunes = %q, want 滑动", got)
	}
	if got := prefixRunes("ab", 5); got != "ab" {
		t.Errorf("prefixRunes = %q, want ab", got)
	}
}
