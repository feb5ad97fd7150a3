//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把根目录的 data/ 复制到此目录：
//
//	cp -r data mobile/
//	ebitenmobile bind -target android -tags mobile -javapkg org.eternagame.eterna -o build/android/eterna.aar ./mobile
package mobile

import "embed"

//go:embed data
var dataFS embed.FS
