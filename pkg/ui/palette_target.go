package ui

import (
	"fmt"

	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/types"
	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PaletteTarget 调色板上的一个可点击目标
// 目标在调色板创建时一次性生成，之后只有 Enabled 会变化
type PaletteTarget struct {
	Type   types.PaletteTargetType
	Name   string
	IsPair bool
	// KeyCode 对应的快捷键（已声明，当前不处理键盘事件）
	KeyCode  ebiten.Key
	Hitboxes []utils.Rect
	Tooltip  string
	Enabled  bool
}

// Contains 判断点（调色板局部坐标）是否落在任一点击区域内
func (t *PaletteTarget) Contains(x, y float64) bool {
	return utils.AnyContains(t.Hitboxes, x, y)
}

// paletteKeys 配置文件中的快捷键名称
var paletteKeys = map[string]ebiten.Key{
	"Digit1": ebiten.KeyDigit1,
	"Digit2": ebiten.KeyDigit2,
	"Digit3": ebiten.KeyDigit3,
	"Digit4": ebiten.KeyDigit4,
	"KeyQ":   ebiten.KeyQ,
	"KeyW":   ebiten.KeyW,
	"KeyE":   ebiten.KeyE,
}

// newPaletteTargets 根据布局配置创建全部目标
func newPaletteTargets(cfg *config.PaletteConfig) ([types.NumPaletteTargets]*PaletteTarget, error) {
	var targets [types.NumPaletteTargets]*PaletteTarget
	if len(cfg.Targets) != types.NumPaletteTargets {
		return targets, fmt.Errorf("expected %d palette targets, got %d", types.NumPaletteTargets, len(cfg.Targets))
	}

	for i := range cfg.Targets {
		tc := &cfg.Targets[i]
		tt, ok := types.ParsePaletteTargetType(tc.Type)
		if !ok || int(tt) != i {
			return targets, fmt.Errorf("palette target %d: unexpected type %q", i, tc.Type)
		}

		key, ok := paletteKeys[tc.Key]
		if !ok {
			return targets, fmt.Errorf("palette target %s: unknown key %q", tc.Type, tc.Key)
		}

		targets[i] = &PaletteTarget{
			Type:     tt,
			Name:     tc.Name,
			IsPair:   tt.IsPair(),
			KeyCode:  key,
			Hitboxes: tc.HitboxRects(),
			Tooltip:  tc.Tooltip,
			Enabled:  true,
		}
	}
	return targets, nil
}
