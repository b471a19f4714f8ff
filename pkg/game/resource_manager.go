package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of game resources.
// 本游戏没有图片素材，所有视觉元素都是纯色矩形，
// 因此只管理两类资源：界面字体和用于绘制纯色矩形的白色像素图。
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop, no synchronization is needed.
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource       // 内置字体源（Go Regular）
	fontFaceCache map[float64]*text.GoTextFace // 字号 -> 字体
	whiteImage    *ebiten.Image                // 1x1 白色像素，缩放+着色后绘制纯色矩形
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadDefaultFont 加载内置字体的指定字号，已加载的字号直接返回缓存
func (rm *ResourceManager) LoadDefaultFont(size float64) (*text.GoTextFace, error) {
	if cached, exists := rm.fontFaceCache[size]; exists {
		return cached, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create default font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// GetFont 返回已加载的字体，未加载时返回 nil
func (rm *ResourceManager) GetFont(size float64) *text.GoTextFace {
	return rm.fontFaceCache[size]
}

// WhiteImage 返回 1x1 白色像素图
// 取自 3x3 图片的中心像素，避免线性过滤时采样到边缘透明像素
func (rm *ResourceManager) WhiteImage() *ebiten.Image {
	if rm.whiteImage == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		rm.whiteImage = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return rm.whiteImage
}
