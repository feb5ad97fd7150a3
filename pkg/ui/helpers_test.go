package ui

import (
	"testing"

	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/game"
	"github.com/decker502/eterna/pkg/rscript"
	"github.com/decker502/eterna/pkg/utils"
)

// testFonts 测试共享的字体来源（内置字体，不依赖 GPU）
var testFonts = game.NewResourceManager()

// newTestPalette 创建位于 (0, 0)、无纹理的调色板
func newTestPalette(t *testing.T) (*NucleotidePalette, *rscript.ROPWait) {
	t.Helper()
	rop := rscript.NewROPWait(0)
	p, err := NewNucleotidePalette(config.DefaultPaletteConfig(), nil, testFonts.ArialBold(12), rop)
	if err != nil {
		t.Fatalf("NewNucleotidePalette failed: %v", err)
	}
	return p, rop
}

func down(x, y float64) utils.PointerEvent {
	return utils.PointerEvent{Kind: utils.PointerDown, X: x, Y: y}
}

func move(x, y float64) utils.PointerEvent {
	return utils.PointerEvent{Kind: utils.PointerMove, X: x, Y: y}
}

// centerOf 返回矩形中心
func centerOf(r utils.Rect) (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
