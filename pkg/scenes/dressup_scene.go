package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/ecs"
	"github.com/decker502/dressup/pkg/entities"
	"github.com/decker502/dressup/pkg/game"
	"github.com/decker502/dressup/pkg/systems"
	"github.com/decker502/dressup/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/message"
)

// SceneContext 场景依赖的进程级对象
// 由 App 创建并在每次加载场景时传入
type SceneContext struct {
	Tools           *game.ToolManager
	Shaving         *game.ShavingManager
	Cursor          *systems.CursorSystem
	ResourceManager *game.ResourceManager
	SceneManager    *game.SceneManager
	Printer         *message.Printer

	CanvasScale  float64
	DragDeadZone float64
	Debug        bool
}

// DressUpScene 换装场景
// 根据场景布局创建角色、投放点、服装、调色板、可剃除部位和按钮
type DressUpScene struct {
	name   string
	ctx    SceneContext
	layout *config.SceneConfig

	entityManager *ecs.EntityManager

	dragSystem          *systems.DragSystem
	paintSystem         *systems.PaintSystem
	shaveSystem         *systems.ShaveSystem
	buttonSystem        *systems.ButtonSystem
	inputSystem         *systems.InputSystem
	snapAnimationSystem *systems.SnapAnimationSystem
	renderSystem        *systems.RenderSystem

	// ids 布局ID到实体的映射
	ids map[string]ecs.EntityID
}

// NewDressUpScene 按布局创建换装场景
func NewDressUpScene(layout *config.SceneConfig, ctx SceneContext) (*DressUpScene, error) {
	if layout == nil {
		return nil, fmt.Errorf("scene layout is nil")
	}
	if ctx.Printer == nil {
		ctx.Printer = message.NewPrinter(message.MatchLanguage("en-US"))
	}

	em := ecs.NewEntityManager()
	s := &DressUpScene{
		name:          layout.Name,
		ctx:           ctx,
		layout:        layout,
		entityManager: em,
		ids:           make(map[string]ecs.EntityID),
	}

	var tools systems.ToolCoordinator
	if ctx.Tools != nil {
		tools = ctx.Tools
	}

	s.dragSystem = systems.NewDragSystem(em, tools, ctx.CanvasScale)
	s.paintSystem = systems.NewPaintSystem(em, ctx.Tools)
	s.shaveSystem = systems.NewShaveSystem(em, ctx.Shaving)
	s.buttonSystem = systems.NewButtonSystem(em)
	s.snapAnimationSystem = systems.NewSnapAnimationSystem(em)
	s.renderSystem = systems.NewRenderSystem(em, ctx.ResourceManager)
	s.renderSystem.SetDebug(ctx.Debug)
	s.inputSystem = systems.NewInputSystem(
		em,
		utils.NewDragManager(ctx.DragDeadZone),
		s.dragSystem,
		s.paintSystem,
		s.shaveSystem,
		s.buttonSystem,
		ctx.Cursor,
		tools,
		ctx.CanvasScale,
	)

	if err := s.buildEntities(); err != nil {
		return nil, fmt.Errorf("build scene %q: %w", layout.Name, err)
	}

	if ctx.Tools != nil && ctx.Cursor != nil {
		ctx.Tools.SetCursorPresenter(ctx.Cursor)
	}

	log.Printf("[DressUpScene] Scene %q loaded with %d entities", s.name, em.EntityCount())
	return s, nil
}

// buildEntities 按布局顺序创建实体
func (s *DressUpScene) buildEntities() error {
	em := s.entityManager
	layout := s.layout

	for _, part := range layout.Character {
		s.ids[part.ID] = entities.NewCharacterPart(em, part)
	}

	dropPoints := make(map[string]ecs.EntityID, len(layout.DropPoints))
	for _, dp := range layout.DropPoints {
		id := entities.NewDropPoint(em, dp)
		dropPoints[dp.ID] = id
		s.ids[dp.ID] = id
	}

	for i, item := range layout.Clothing {
		s.ids[item.ID] = entities.NewClothing(em, item, dropPoints, i)
	}

	for _, part := range layout.Shaveables {
		s.ids[part.ID] = entities.NewShaveable(em, part)
	}

	// 上色目标可能是之后声明的可上色区域，先全部创建再设置目标
	paintables := make([]ecs.EntityID, len(layout.Paintables))
	for i, p := range layout.Paintables {
		paintables[i] = entities.NewPaintable(em, p, 0)
		s.ids[p.ID] = paintables[i]
	}

	for _, swatch := range layout.Swatches {
		s.ids[swatch.ID] = entities.NewColorSwatch(em, swatch)
	}

	for _, b := range layout.Buttons {
		onClick, err := s.buttonAction(b)
		if err != nil {
			return err
		}
		s.ids[b.ID] = entities.NewButton(em, b, s.ctx.Printer.Sprintf(b.Label), onClick)
	}

	for i, p := range layout.Paintables {
		if p.Target == "" {
			continue
		}
		target, ok := s.ids[p.Target]
		if !ok {
			return fmt.Errorf("paintable %q: unknown target %q", p.ID, p.Target)
		}
		s.setPaintTarget(paintables[i], target)
	}

	return nil
}

func (s *DressUpScene) setPaintTarget(paintable, target ecs.EntityID) {
	if err := entities.SetPaintTarget(s.entityManager, paintable, target); err != nil {
		log.Printf("[DressUpScene] Warning: %v", err)
	}
}

// buttonAction 把按钮动作绑定到对应的操作
func (s *DressUpScene) buttonAction(b config.ButtonConfig) (func(), error) {
	tools := s.ctx.Tools
	shaving := s.ctx.Shaving
	sm := s.ctx.SceneManager

	switch b.Action {
	case config.ActionToggleShaver:
		return func() {
			if shaving != nil {
				shaving.ToggleShavingMode()
			}
		}, nil
	case config.ActionClearTool:
		return func() {
			if tools != nil {
				tools.ClearTool()
			}
		}, nil
	case config.ActionResetOutfit:
		return s.dragSystem.ResetAll, nil
	case config.ActionReloadScene:
		return func() {
			if sm != nil {
				sm.ReloadScene()
			}
		}, nil
	case config.ActionLoadScene:
		target := b.Scene
		return func() {
			if sm != nil {
				sm.LoadScene(target)
			}
		}, nil
	case config.ActionQuit:
		return func() {
			if sm != nil {
				sm.QuitGame()
			}
		}, nil
	}
	return nil, fmt.Errorf("button %q: unknown action %q", b.ID, b.Action)
}

// Name 场景名
func (s *DressUpScene) Name() string {
	return s.name
}

// EntityManager 场景的实体管理器
func (s *DressUpScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Entity 按布局ID查找实体
func (s *DressUpScene) Entity(id string) (ecs.EntityID, bool) {
	entity, ok := s.ids[id]
	return entity, ok
}

// DragSystem 场景的拖拽系统
func (s *DressUpScene) DragSystem() *systems.DragSystem {
	return s.dragSystem
}

// PaintSystem 场景的上色系统
func (s *DressUpScene) PaintSystem() *systems.PaintSystem {
	return s.paintSystem
}

// ShaveSystem 场景的剃须系统
func (s *DressUpScene) ShaveSystem() *systems.ShaveSystem {
	return s.shaveSystem
}

// InputSystem 场景的输入系统
func (s *DressUpScene) InputSystem() *systems.InputSystem {
	return s.inputSystem
}

// Update 更新场景
func (s *DressUpScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.snapAnimationSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景（画布坐标）
func (s *DressUpScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.layout.Background.Or(config.DefaultBackgroundColor))

	s.renderSystem.Draw(screen)
	s.renderSystem.DrawStatus(screen, s.StatusText())

	if s.ctx.Cursor != nil {
		s.ctx.Cursor.Draw(screen)
	}
}

// StatusText 当前工具的状态文字
func (s *DressUpScene) StatusText() string {
	if s.ctx.Tools == nil {
		return ""
	}
	tool := s.ctx.Tools.CurrentTool()
	return s.ctx.Printer.Sprintf("hud.status", s.ctx.Printer.Sprintf(tool.LabelKey()))
}

// Unload 场景卸载时放下当前工具并恢复默认光标
func (s *DressUpScene) Unload() {
	if s.ctx.Tools != nil {
		s.ctx.Tools.ClearTool()
		s.ctx.Tools.Disable()
	}
	log.Printf("[DressUpScene] Scene %q unloaded", s.name)
}
