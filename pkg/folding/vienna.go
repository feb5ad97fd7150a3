package folding

import (
	"context"
	"fmt"
	"log"

	"github.com/decker502/eterna/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ViennaConfigPath Vienna 参数文件路径
const ViennaConfigPath = "data/folding/vienna.yaml"

// viennaParams Vienna 参数文件结构
type viennaParams struct {
	Name          string             `yaml:"name"`
	Version       string             `yaml:"version"`
	Temperature   float64            `yaml:"temperature"`
	CanPseudoknot bool               `yaml:"canPseudoknot"`
	PairEnergies  map[string]float64 `yaml:"pairEnergies"`
}

// Vienna Vienna RNA 折叠引擎
type Vienna struct {
	params viennaParams
}

// CreateVienna 加载参数并创建 Vienna 引擎
// ctx 取消时返回 ctx.Err()
func CreateVienna(ctx context.Context) (*Vienna, error) {
	return createViennaFrom(ctx, ViennaConfigPath)
}

func createViennaFrom(ctx context.Context, path string) (*Vienna, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vienna params %s: %w", path, err)
	}

	v, err := parseVienna(data)
	if err != nil {
		return nil, fmt.Errorf("invalid vienna params %s: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Printf("[Vienna] Loaded parameters: version=%s, T=%.1f, %d pair energies",
		v.params.Version, v.params.Temperature, len(v.params.PairEnergies))
	return v, nil
}

// parseVienna 解析并校验参数
func parseVienna(data []byte) (*Vienna, error) {
	var p viennaParams
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(p.PairEnergies) == 0 {
		return nil, fmt.Errorf("at least one pair energy is required")
	}
	return &Vienna{params: p}, nil
}

// Name 引擎名称
func (v *Vienna) Name() string { return v.params.Name }

// Version 引擎版本
func (v *Vienna) Version() string { return v.params.Version }

// CanPseudoknot Vienna 不支持假结
func (v *Vienna) CanPseudoknot() bool { return v.params.CanPseudoknot }

// Temperature 折叠温度（摄氏度）
func (v *Vienna) Temperature() float64 { return v.params.Temperature }

// PairEnergy 返回碱基对堆叠自由能
func (v *Vienna) PairEnergy(pair string) (float64, bool) {
	e, ok := v.params.PairEnergies[pair]
	return e, ok
}
