package config

import (
	"os"
	"strings"
	"testing"

	"github.com/decker502/eterna/pkg/utils"
	"github.com/google/go-cmp/cmp"
)

// TestPaletteConfigFileMatchesDefault 测试 data/palette.yaml 与内置默认布局一致
func TestPaletteConfigFileMatchesDefault(t *testing.T) {
	data, err := os.ReadFile("../../data/palette.yaml")
	if err != nil {
		t.Fatalf("Failed to read palette.yaml: %v", err)
	}

	cfg, err := ParsePaletteConfig(data)
	if err != nil {
		t.Fatalf("ParsePaletteConfig() error: %v", err)
	}

	if diff := cmp.Diff(DefaultPaletteConfig(), cfg); diff != "" {
		t.Errorf("palette.yaml differs from DefaultPaletteConfig (-want +got):\n%s", diff)
	}
}

// TestDefaultPaletteConfigValid 测试内置布局通过校验
func TestDefaultPaletteConfigValid(t *testing.T) {
	if err := validatePaletteConfig(DefaultPaletteConfig()); err != nil {
		t.Errorf("validatePaletteConfig(default) error: %v", err)
	}
}

// TestPaletteTargetConfig_HitboxRects 测试点击区域转换
func TestPaletteTargetConfig_HitboxRects(t *testing.T) {
	cfg := DefaultPaletteConfig()
	au, ok := cfg.Target("AU")
	if !ok {
		t.Fatal("Target(AU) not found")
	}

	want := []utils.Rect{
		{X: 31, Y: 30, Width: 30, Height: 20},
		{X: 37, Y: 15, Width: 22, Height: 20},
	}
	if diff := cmp.Diff(want, au.HitboxRects()); diff != "" {
		t.Errorf("HitboxRects mismatch (-want +got):\n%s", diff)
	}

	if _, ok := cfg.Target("XY"); ok {
		t.Error("Target(XY) should not be found")
	}
}

// TestValidatePaletteConfig_Errors 测试非法配置被拒绝
func TestValidatePaletteConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PaletteConfig)
		wantErr string
	}{
		{
			name:    "missing target",
			mutate:  func(c *PaletteConfig) { c.Targets = c.Targets[:6] },
			wantErr: "expected 7 targets",
		},
		{
			name:    "wrong order",
			mutate:  func(c *PaletteConfig) { c.Targets[0], c.Targets[1] = c.Targets[1], c.Targets[0] },
			wantErr: "expected type A",
		},
		{
			name:    "pair with one hitbox",
			mutate:  func(c *PaletteConfig) { c.Targets[4].Hitboxes = c.Targets[4].Hitboxes[:1] },
			wantErr: "expected 2 hitboxes",
		},
		{
			name:    "base marked as pair",
			mutate:  func(c *PaletteConfig) { c.Targets[2].IsPair = true },
			wantErr: "isPair must be false",
		},
		{
			name:    "short hitbox",
			mutate:  func(c *PaletteConfig) { c.Targets[1].Hitboxes[0] = []float64{1, 2, 3} },
			wantErr: "expected [x, y, w, h]",
		},
		{
			name:    "zero size hitbox",
			mutate:  func(c *PaletteConfig) { c.Targets[3].Hitboxes[0][2] = 0 },
			wantErr: "size must be positive",
		},
		{
			name:    "bad color",
			mutate:  func(c *PaletteConfig) { c.Targets[0].Colors = []string{"#nothex"} },
			wantErr: "invalid color",
		},
		{
			name:    "duplicate name",
			mutate:  func(c *PaletteConfig) { c.Targets[1].Name = "A" },
			wantErr: "duplicate name",
		},
		{
			name:    "pair without label anchor",
			mutate:  func(c *PaletteConfig) { c.Targets[6].LabelAnchorX = 0 },
			wantErr: "labelAnchorX is required",
		},
		{
			name:    "zero size palette",
			mutate:  func(c *PaletteConfig) { c.Width = 0 },
			wantErr: "palette size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPaletteConfig()
			tt.mutate(cfg)

			err := validatePaletteConfig(cfg)
			if err == nil {
				t.Fatalf("validatePaletteConfig() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validatePaletteConfig() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// TestParsePaletteConfig_BadYAML 测试无法解析的 YAML
func TestParsePaletteConfig_BadYAML(t *testing.T) {
	if _, err := ParsePaletteConfig([]byte("targets: [unclosed")); err == nil {
		t.Error("ParsePaletteConfig() error = nil for malformed YAML")
	}
}
