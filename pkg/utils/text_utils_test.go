package utils

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("Failed to create font source: %v", err)
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// TestWrapText 测试按宽度换行
func TestWrapText(t *testing.T) {
	face := newTestFace(t, 15)
	prompt := "Are you sure you want to switch the palette into no-pair mode for this puzzle?"

	lines := WrapText(prompt, face, 150)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d: %q", len(lines), lines)
	}
	for _, line := range lines {
		if w := MeasureText(line, face); w > 150 {
			t.Errorf("line %q width %.1f exceeds 150", line, w)
		}
	}
	if strings.Join(lines, " ") != prompt {
		t.Errorf("joined lines = %q, want original text", strings.Join(lines, " "))
	}
}

// TestWrapText_LongWord 测试超长单词强制断行
func TestWrapText_LongWord(t *testing.T) {
	face := newTestFace(t, 15)
	word := strings.Repeat("G", 40)

	lines := WrapText(word, face, 60)
	if len(lines) < 2 {
		t.Fatalf("expected long word to be split, got %q", lines)
	}
	if strings.Join(lines, "") != word {
		t.Errorf("split lines do not rebuild the word: %q", lines)
	}
}

// TestWrapText_Edge 测试边界输入
func TestWrapText_Edge(t *testing.T) {
	face := newTestFace(t, 15)

	if got := WrapText("", face, 100); len(got) != 1 || got[0] != "" {
		t.Errorf("WrapText(\"\") = %q", got)
	}
	if got := WrapText("abc", nil, 100); len(got) != 1 || got[0] != "abc" {
		t.Errorf("WrapText with nil face = %q", got)
	}
	if got := WrapText("one\ntwo", face, 500); len(got) != 2 {
		t.Errorf("explicit newline should split lines, got %q", got)
	}
}

// TestWrapSpans 测试带颜色片段的换行
func TestWrapSpans(t *testing.T) {
	face := newTestFace(t, 12)
	red := color.RGBA{R: 255, A: 255}
	spans := ParseMarkup("Mutate to pair (<FONT COLOR='#FF0000'>G</FONT>, C). (E)", white)

	lines := WrapSpans(spans, face, 1000)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	var sb strings.Builder
	hasRed := false
	for _, s := range lines[0] {
		sb.WriteString(s.Text)
		if s.Color == red {
			hasRed = true
		}
	}
	if sb.String() != "Mutate to pair (G, C). (E)" {
		t.Errorf("line text = %q", sb.String())
	}
	if !hasRed {
		t.Error("colored span lost during wrapping")
	}

	narrow := WrapSpans(spans, face, 60)
	if len(narrow) < 2 {
		t.Errorf("expected wrapping at width 60, got %d lines", len(narrow))
	}
}
