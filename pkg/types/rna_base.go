// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// RNABase RNA 碱基（或碱基对）编码
type RNABase int

const (
	// RNABaseUndefined 未定义
	RNABaseUndefined RNABase = iota
	// RNABaseAdenine 腺嘌呤 A
	RNABaseAdenine
	// RNABaseCytosine 胞嘧啶 C
	RNABaseCytosine
	// RNABaseGuanine 鸟嘌呤 G
	RNABaseGuanine
	// RNABaseUracil 尿嘧啶 U
	RNABaseUracil
	// RNABaseGUPair G-U 碱基对
	RNABaseGUPair
	// RNABaseGCPair G-C 碱基对
	RNABaseGCPair
	// RNABaseAUPair A-U 碱基对
	RNABaseAUPair
)

// String 返回碱基的字符串表示
func (b RNABase) String() string {
	switch b {
	case RNABaseAdenine:
		return "A"
	case RNABaseCytosine:
		return "C"
	case RNABaseGuanine:
		return "G"
	case RNABaseUracil:
		return "U"
	case RNABaseGUPair:
		return "GU"
	case RNABaseGCPair:
		return "GC"
	case RNABaseAUPair:
		return "AU"
	default:
		return "?"
	}
}

// IsPair 是否为碱基对编码
func (b RNABase) IsPair() bool {
	return b == RNABaseGUPair || b == RNABaseGCPair || b == RNABaseAUPair
}
