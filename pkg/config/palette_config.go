package config

import (
	"fmt"

	"github.com/decker502/eterna/pkg/embedded"
	"github.com/decker502/eterna/pkg/utils"
	"gopkg.in/yaml.v3"
)

// PaletteConfigPath 调色板布局配置文件路径
const PaletteConfigPath = "data/palette.yaml"

// PaletteTargetNames 调色板目标类型名称（声明顺序即命中测试顺序）
var PaletteTargetNames = []string{"A", "U", "G", "C", "AU", "UG", "GC"}

// PaletteTargetConfig 单个调色板目标的配置
type PaletteTargetConfig struct {
	Type         string      `yaml:"type"`                  // 目标类型（A/U/G/C/AU/UG/GC）
	Name         string      `yaml:"name"`                  // 显示名称（点击通知使用）
	IsPair       bool        `yaml:"isPair"`                // 是否为碱基对
	Key          string      `yaml:"key"`                   // 快捷键名称（如 Digit1、KeyQ）
	Colors       []string    `yaml:"colors"`                // 绘制调色板时使用的颜色
	Hitboxes     [][]float64 `yaml:"hitboxes"`              // 点击区域列表，每项为 [x, y, w, h]
	Tooltip      string      `yaml:"tooltip"`               // 提示文字（支持 FONT 标记）
	LabelAnchorX float64     `yaml:"labelAnchorX,omitempty"` // 碱基对数量标签右对齐的 X 坐标
}

// PaletteConfig 调色板布局配置
type PaletteConfig struct {
	Width         float64               `yaml:"width"`         // 调色板宽度
	Height        float64               `yaml:"height"`        // 调色板高度
	LabelFontSize float64               `yaml:"labelFontSize"` // 数量标签字号
	LabelY        float64               `yaml:"labelY"`        // 数量标签 Y 坐标
	Targets       []PaletteTargetConfig `yaml:"targets"`       // 目标列表（按声明顺序）
}

// HitboxRects 将配置中的点击区域转换为矩形
func (t *PaletteTargetConfig) HitboxRects() []utils.Rect {
	rects := make([]utils.Rect, 0, len(t.Hitboxes))
	for _, hb := range t.Hitboxes {
		if len(hb) != 4 {
			continue
		}
		rects = append(rects, utils.NewRect(hb[0], hb[1], hb[2], hb[3]))
	}
	return rects
}

// Target 按类型名称查找目标配置
func (c *PaletteConfig) Target(typeName string) (*PaletteTargetConfig, bool) {
	for i := range c.Targets {
		if c.Targets[i].Type == typeName {
			return &c.Targets[i], true
		}
	}
	return nil, false
}

// LoadPaletteConfig 从嵌入的 YAML 文件加载调色板布局
// 参数：
//
//	filepath - 配置文件路径（必须以 data/ 开头）
//
// 返回：
//
//	*PaletteConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadPaletteConfig(filepath string) (*PaletteConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette config %s: %w", filepath, err)
	}

	cfg, err := ParsePaletteConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid palette config %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParsePaletteConfig 解析并校验调色板布局 YAML
func ParsePaletteConfig(data []byte) (*PaletteConfig, error) {
	var cfg PaletteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse palette YAML: %w", err)
	}
	if err := validatePaletteConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validatePaletteConfig 校验调色板配置
//
// 规则：
//   - 恰好 7 个目标，类型与顺序与 PaletteTargetNames 一致
//   - 单碱基 1 个点击区域，碱基对 2 个
//   - 每个点击区域为 [x, y, w, h] 且宽高为正
//   - 碱基对必须配置数量标签锚点
func validatePaletteConfig(cfg *PaletteConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("palette size must be positive, got %.0fx%.0f", cfg.Width, cfg.Height)
	}

	if len(cfg.Targets) != len(PaletteTargetNames) {
		return fmt.Errorf("expected %d targets, got %d", len(PaletteTargetNames), len(cfg.Targets))
	}

	names := make(map[string]bool, len(cfg.Targets))
	for i, t := range cfg.Targets {
		if t.Type != PaletteTargetNames[i] {
			return fmt.Errorf("target %d: expected type %s, got %q", i, PaletteTargetNames[i], t.Type)
		}
		if t.Name == "" {
			return fmt.Errorf("target %s: name is required", t.Type)
		}
		if names[t.Name] {
			return fmt.Errorf("target %s: duplicate name %q", t.Type, t.Name)
		}
		names[t.Name] = true

		wantPair := len(t.Type) == 2
		if t.IsPair != wantPair {
			return fmt.Errorf("target %s: isPair must be %v", t.Type, wantPair)
		}

		wantBoxes := 1
		if t.IsPair {
			wantBoxes = 2
		}
		if len(t.Hitboxes) != wantBoxes {
			return fmt.Errorf("target %s: expected %d hitboxes, got %d", t.Type, wantBoxes, len(t.Hitboxes))
		}
		for j, hb := range t.Hitboxes {
			if len(hb) != 4 {
				return fmt.Errorf("target %s hitbox %d: expected [x, y, w, h], got %d values", t.Type, j, len(hb))
			}
			if hb[2] <= 0 || hb[3] <= 0 {
				return fmt.Errorf("target %s hitbox %d: size must be positive", t.Type, j)
			}
		}

		for _, c := range t.Colors {
			if _, err := utils.ParseColor(c); err != nil {
				return fmt.Errorf("target %s: %w", t.Type, err)
			}
		}

		if t.IsPair && t.LabelAnchorX <= 0 {
			return fmt.Errorf("target %s: labelAnchorX is required for pairs", t.Type)
		}
	}

	return nil
}

// DefaultPaletteConfig 返回内置的调色板布局
// 与 data/palette.yaml 内容一致，用于配置文件缺失时的降级
func DefaultPaletteConfig() *PaletteConfig {
	return &PaletteConfig{
		Width:         190,
		Height:        52,
		LabelFontSize: 12,
		LabelY:        1,
		Targets: []PaletteTargetConfig{
			{
				Type: "A", Name: "A", Key: "Digit1",
				Colors:   []string{"#FFFF33"},
				Hitboxes: [][]float64{{9, 7, 25, 25}},
				Tooltip:  "Mutate to <FONT COLOR='#FFFF33'>A (Adenine)</FONT>. (1)",
			},
			{
				Type: "U", Name: "U", Key: "Digit2",
				Colors:   []string{"#7777FF"},
				Hitboxes: [][]float64{{58, 7, 25, 25}},
				Tooltip:  "Mutate to <FONT COLOR='#7777FF'>U (Uracil)</FONT>. (2)",
			},
			{
				Type: "G", Name: "G", Key: "Digit3",
				Colors:   []string{"#FF3333"},
				Hitboxes: [][]float64{{107, 7, 25, 25}},
				Tooltip:  "Mutate to <FONT COLOR='#FF3333'>G (Guanine)</FONT>. (3)",
			},
			{
				Type: "C", Name: "C", Key: "Digit4",
				Colors:   []string{"#33FF33"},
				Hitboxes: [][]float64{{156, 7, 25, 25}},
				Tooltip:  "Mutate to <FONT COLOR='#33FF33'>C (Cytosine)</FONT>. (4)",
			},
			{
				Type: "AU", Name: "AU", IsPair: true, Key: "KeyQ",
				Colors:       []string{"#FFFF33", "#7777FF"},
				Hitboxes:     [][]float64{{31, 30, 30, 20}, {37, 15, 22, 20}},
				Tooltip:      "Mutate to pair (<FONT COLOR='#FFFF33'>A</FONT>, <FONT COLOR='#7777FF'>U</FONT>). (Q)",
				LabelAnchorX: 57,
			},
			{
				Type: "UG", Name: "UG", IsPair: true, Key: "KeyW",
				Colors:       []string{"#FF3333", "#7777FF"},
				Hitboxes:     [][]float64{{80, 30, 30, 20}, {87, 15, 22, 20}},
				Tooltip:      "Mutate to pair (<FONT COLOR='#FF3333'>G</FONT>, <FONT COLOR='#7777FF'>U</FONT>). (W)",
				LabelAnchorX: 103,
			},
			{
				Type: "GC", Name: "GC", IsPair: true, Key: "KeyE",
				Colors:       []string{"#FF3333", "#33FF33"},
				Hitboxes:     [][]float64{{127, 30, 30, 20}, {137, 15, 22, 20}},
				Tooltip:      "Mutate to pair (<FONT COLOR='#FF3333'>G</FONT>, <FONT COLOR='#33FF33'>C</FONT>). (E)",
				LabelAnchorX: 155,
			},
		},
	}
}
