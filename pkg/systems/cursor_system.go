package systems

import (
	"image/color"
	"log"

	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/types"
	"github.com/decker502/dressup/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 剃刀光标的配色
var (
	shaverBodyColor  = color.NRGBA{R: 70, G: 70, B: 80, A: 255}
	shaverBladeColor = color.NRGBA{R: 220, G: 225, B: 235, A: 255}
)

// CursorSystem 工具光标系统，实现 game.CursorPresenter
//
// 此系统负责：
//   - 画笔工具：隐藏硬件光标，绘制跟随指针的色块，色块颜色为当前画笔颜色
//   - 剃刀工具：隐藏硬件光标，绘制剃刀图标
//   - 无工具：恢复硬件光标
//
// 同一时刻最多显示一个工具光标
type CursorSystem struct {
	tool       types.ToolType
	paintColor color.NRGBA

	// 指针位置（画布坐标），每帧由场景同步
	pointerX, pointerY float64

	lastCursorMode ebiten.CursorModeType
	// setCursorMode 切换硬件光标模式；移动端没有硬件光标，为 nil
	setCursorMode func(ebiten.CursorModeType)
}

// NewCursorSystem 创建工具光标系统
func NewCursorSystem() *CursorSystem {
	s := &CursorSystem{
		tool:           types.ToolNone,
		paintColor:     config.DefaultPaintColor,
		lastCursorMode: ebiten.CursorModeVisible,
	}
	if !utils.IsMobile() {
		s.setCursorMode = ebiten.SetCursorMode
	}
	return s
}

// ApplyTool 根据工具切换光标
func (s *CursorSystem) ApplyTool(tool types.ToolType) {
	s.tool = tool
	if tool == types.ToolNone {
		s.applyCursorMode(ebiten.CursorModeVisible)
	} else {
		s.applyCursorMode(ebiten.CursorModeHidden)
	}
	log.Printf("[CursorSystem] Cursor switched to %s", tool)
}

// SetPaintColor 更新画笔光标颜色
func (s *CursorSystem) SetPaintColor(c color.NRGBA) {
	s.paintColor = c
}

// Reset 恢复硬件光标并隐藏所有工具光标
func (s *CursorSystem) Reset() {
	s.tool = types.ToolNone
	s.applyCursorMode(ebiten.CursorModeVisible)
}

// SetPointer 同步指针位置（画布坐标）
func (s *CursorSystem) SetPointer(x, y float64) {
	s.pointerX, s.pointerY = x, y
}

// IsPaintCursorVisible 画笔光标是否显示
func (s *CursorSystem) IsPaintCursorVisible() bool {
	return s.tool == types.ToolPaintBrush
}

// IsShaverCursorVisible 剃刀光标是否显示
func (s *CursorSystem) IsShaverCursorVisible() bool {
	return s.tool == types.ToolShaver
}

// PaintCursorPosition 画笔光标左上角位置（画布坐标）
func (s *CursorSystem) PaintCursorPosition() (x, y float64) {
	return s.pointerX + config.PaintCursorOffsetX, s.pointerY + config.PaintCursorOffsetY
}

// CursorMode 当前硬件光标模式
func (s *CursorSystem) CursorMode() ebiten.CursorModeType {
	return s.lastCursorMode
}

func (s *CursorSystem) applyCursorMode(mode ebiten.CursorModeType) {
	if s.lastCursorMode == mode {
		return
	}
	s.lastCursorMode = mode
	if s.setCursorMode != nil {
		s.setCursorMode(mode)
	}
}

// Draw 在画布上绘制工具光标
func (s *CursorSystem) Draw(screen *ebiten.Image) {
	switch s.tool {
	case types.ToolPaintBrush:
		s.drawPaintCursor(screen)
	case types.ToolShaver:
		s.drawShaverCursor(screen)
	}
}

func (s *CursorSystem) drawPaintCursor(screen *ebiten.Image) {
	x, y := s.PaintCursorPosition()
	size := float32(config.PaintCursorSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, s.paintColor, true)
	vector.StrokeRect(screen, float32(x), float32(y), size, size, 2, color.Black, true)
}

func (s *CursorSystem) drawShaverCursor(screen *ebiten.Image) {
	left := float32(s.pointerX - config.ShaverCursorHotspotX)
	top := float32(s.pointerY - config.ShaverCursorHotspotY)
	w := float32(config.ShaverCursorWidth)
	h := float32(config.ShaverCursorHeight)

	// 刀头在左侧，握柄在右侧
	bladeW := w / 3
	vector.DrawFilledRect(screen, left, top, bladeW, h, shaverBladeColor, true)
	vector.DrawFilledRect(screen, left+bladeW, top+h/4, w-bladeW, h/2, shaverBodyColor, true)
	for i := float32(1); i < 4; i++ {
		x := left + bladeW*i/4
		vector.StrokeLine(screen, x, top+1, x, top+h-1, 1, shaverBodyColor, true)
	}
}
