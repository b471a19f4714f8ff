//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// go:embed 只能引用本目录下的文件，构建前需要先复制 data/scenes 和 data/locales（见 mobile.go）。
package mobile

import "embed"

//go:embed data/scenes data/locales
var dataFS embed.FS
