package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/ecs"
	"github.com/decker502/dressup/pkg/game"
	"github.com/decker502/dressup/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调试图形和文字的配色
var (
	debugGizmoColor    = color.NRGBA{R: 0, G: 160, B: 255, A: 200}
	debugOccupiedColor = color.NRGBA{R: 255, G: 80, B: 80, A: 200}
	labelColor         = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelStrokeColor   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	statusTextColor    = color.NRGBA{R: 60, G: 40, B: 30, A: 255}
)

// RenderSystem 管理场景实体的渲染
//
// 职责范围：
//   - 纯色矩形或图片（SpriteComponent），按 LayerComponent.Z 从低到高绘制
//   - 投放点高亮图片、剃须悬停高亮
//   - 吸附动画的视觉偏移（SnapTweenComponent）
//   - 按钮文字和工具状态文字
//   - 调试模式下的吸附半径圆
//
// 所有绘制都在画布坐标中进行，由 App 统一缩放到窗口
type RenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	font            *text.GoTextFace
	debug           bool
}

// NewRenderSystem 创建渲染系统
// 字体加载失败时不绘制文字
func NewRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *RenderSystem {
	s := &RenderSystem{
		entityManager:   em,
		resourceManager: rm,
	}
	if rm != nil {
		if face, err := rm.LoadDefaultFont(config.HUDFontSize); err == nil {
			s.font = face
		}
	}
	return s
}

// SetDebug 开关调试绘制
func (s *RenderSystem) SetDebug(debug bool) {
	s.debug = debug
}

// DrawOrder 返回按层级排序的可绘制实体
// 层级相同时按实体ID（创建顺序）排序
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.PositionComponent](s.entityManager)
	drawable := ids[:0]
	for _, id := range ids {
		if ecs.HasComponent[*components.SpriteComponent](s.entityManager, id) ||
			ecs.HasComponent[*components.DropPointComponent](s.entityManager, id) {
			drawable = append(drawable, id)
		}
	}

	sort.SliceStable(drawable, func(i, j int) bool {
		return s.layerOf(drawable[i]) < s.layerOf(drawable[j])
	})
	return drawable
}

func (s *RenderSystem) layerOf(id ecs.EntityID) int {
	if layer, ok := ecs.GetComponent[*components.LayerComponent](s.entityManager, id); ok {
		return layer.Z
	}
	return 0
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.DrawOrder() {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if dp, ok := ecs.GetComponent[*components.DropPointComponent](s.entityManager, id); ok {
			s.drawDropPoint(screen, pos, dp)
		}

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok && !sprite.Hidden {
			s.drawSprite(screen, id, pos, sprite)
		}
	}

	if s.debug {
		s.drawDebugGizmos(screen)
	}
}

// drawSprite 绘制单个实体
func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID, pos *components.PositionComponent, sprite *components.SpriteComponent) {
	x, y := pos.X, pos.Y
	if tween, ok := ecs.GetComponent[*components.SnapTweenComponent](s.entityManager, id); ok {
		x += tween.OffsetX
		y += tween.OffsetY
	}

	fill := sprite.Color
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok {
		fill = buttonStateColor(fill, button.State)
	}

	s.drawRect(screen, sprite.Image, x, y, sprite.Width, sprite.Height, fill)

	if highlight, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok && highlight.IsActive {
		overlay := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(255 * clamp01(highlight.Intensity)))}
		s.drawRect(screen, nil, x, y, sprite.Width, sprite.Height, overlay)
	}

	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok && button.Label != "" {
		s.drawCenteredText(screen, button.Label, x, y)
	}
}

// drawDropPoint 绘制投放点的高亮图片
func (s *RenderSystem) drawDropPoint(screen *ebiten.Image, pos *components.PositionComponent, dp *components.DropPointComponent) {
	if !dp.IsHighlighted() {
		return
	}
	h := dp.Highlight
	s.drawRect(screen, nil, pos.X, pos.Y, h.Width, h.Height, h.Color)
}

// drawRect 以 (centerX, centerY) 为中心绘制图片或纯色矩形
func (s *RenderSystem) drawRect(screen, img *ebiten.Image, centerX, centerY, width, height float64, clr color.NRGBA) {
	if width <= 0 || height <= 0 {
		return
	}

	if img == nil {
		if s.resourceManager == nil {
			left, top := utils.GetRenderOrigin(centerX, centerY, width, height)
			vector.DrawFilledRect(screen, float32(left), float32(top), float32(width), float32(height), clr, false)
			return
		}
		img = s.resourceManager.WhiteImage()
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(bounds.Dx()), height/float64(bounds.Dy()))
	left, top := utils.GetRenderOrigin(centerX, centerY, width, height)
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(img, op)
}

// drawDebugGizmos 绘制投放点的吸附半径（占用的投放点为红色）
func (s *RenderSystem) drawDebugGizmos(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.DropPointComponent, *components.PositionComponent](s.entityManager) {
		dp, _ := ecs.GetComponent[*components.DropPointComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		clr := debugGizmoColor
		if dp.IsOccupied {
			clr = debugOccupiedColor
		}
		strokeCircle(screen, pos.X, pos.Y, dp.SnapRadius, clr)
	}
}

// strokeCircle 用折线近似绘制圆
func strokeCircle(screen *ebiten.Image, cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	step := 2 * math.Pi / config.DebugGizmoSegments
	for i := 0; i < config.DebugGizmoSegments; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		vector.StrokeLine(screen,
			float32(cx+r*math.Cos(a0)), float32(cy+r*math.Sin(a0)),
			float32(cx+r*math.Cos(a1)), float32(cy+r*math.Sin(a1)),
			1, clr, true)
	}
}

// drawCenteredText 绘制带黑色描边的居中文字
func (s *RenderSystem) drawCenteredText(screen *ebiten.Image, textStr string, centerX, centerY float64) {
	if s.font == nil {
		return
	}

	width, height := text.Measure(textStr, s.font, 0)
	x := centerX - width/2
	y := centerY - height/2

	strokeOffsets := []struct{ dx, dy float64 }{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}
	for _, offset := range strokeOffsets {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+offset.dx, y+offset.dy)
		op.ColorScale.ScaleWithColor(labelStrokeColor)
		text.Draw(screen, textStr, s.font, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, textStr, s.font, op)
}

// DrawStatus 在左上角绘制工具状态文字
func (s *RenderSystem) DrawStatus(screen *ebiten.Image, status string) {
	if s.font == nil || status == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.HUDStatusX, config.HUDStatusY)
	op.ColorScale.ScaleWithColor(statusTextColor)
	text.Draw(screen, status, s.font, op)
}

// buttonStateColor 按钮悬停变亮、按下变暗
func buttonStateColor(c color.NRGBA, state components.UIState) color.NRGBA {
	switch state {
	case components.UIHovered:
		return scaleColor(c, 1.15)
	case components.UIClicked:
		return scaleColor(c, 0.8)
	}
	return c
}

func scaleColor(c color.NRGBA, f float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*f)))
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
