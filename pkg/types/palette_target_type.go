package types

// PaletteTargetType 调色板目标类型
// 声明顺序即调色板命中测试顺序
type PaletteTargetType int

const (
	// PaletteTargetA 腺嘌呤
	PaletteTargetA PaletteTargetType = iota
	// PaletteTargetU 尿嘧啶
	PaletteTargetU
	// PaletteTargetG 鸟嘌呤
	PaletteTargetG
	// PaletteTargetC 胞嘧啶
	PaletteTargetC
	// PaletteTargetAU A-U 碱基对
	PaletteTargetAU
	// PaletteTargetUG U-G 碱基对
	PaletteTargetUG
	// PaletteTargetGC G-C 碱基对
	PaletteTargetGC

	// NumPaletteTargets 目标类型数量
	NumPaletteTargets = 7
)

// AllPaletteTargets 按声明顺序列出所有目标类型
var AllPaletteTargets = [NumPaletteTargets]PaletteTargetType{
	PaletteTargetA, PaletteTargetU, PaletteTargetG, PaletteTargetC,
	PaletteTargetAU, PaletteTargetUG, PaletteTargetGC,
}

// PairTargets 三个碱基对目标
var PairTargets = [3]PaletteTargetType{PaletteTargetAU, PaletteTargetUG, PaletteTargetGC}

var paletteTargetNames = [NumPaletteTargets]string{"A", "U", "G", "C", "AU", "UG", "GC"}

// String 返回目标类型名称
func (t PaletteTargetType) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return paletteTargetNames[t]
}

// Valid 是否为合法的目标类型
func (t PaletteTargetType) Valid() bool {
	return t >= PaletteTargetA && t <= PaletteTargetGC
}

// IsPair 是否为碱基对目标
func (t PaletteTargetType) IsPair() bool {
	return t == PaletteTargetAU || t == PaletteTargetUG || t == PaletteTargetGC
}

// BaseType 返回目标对应的碱基编码
func (t PaletteTargetType) BaseType() RNABase {
	switch t {
	case PaletteTargetA:
		return RNABaseAdenine
	case PaletteTargetU:
		return RNABaseUracil
	case PaletteTargetG:
		return RNABaseGuanine
	case PaletteTargetC:
		return RNABaseCytosine
	case PaletteTargetAU:
		return RNABaseAUPair
	case PaletteTargetUG:
		return RNABaseGUPair
	case PaletteTargetGC:
		return RNABaseGCPair
	default:
		return RNABaseUndefined
	}
}

// ParsePaletteTargetType 按名称解析目标类型
func ParsePaletteTargetType(name string) (PaletteTargetType, bool) {
	for i, n := range paletteTargetNames {
		if n == name {
			return PaletteTargetType(i), true
		}
	}
	return 0, false
}
