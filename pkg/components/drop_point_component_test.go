package components

import (
	"image/color"
	"testing"

	"github.com/decker502/dressup/pkg/ecs"
)

func newTestDropPoint(withHighlight bool) *DropPointComponent {
	dp := &DropPointComponent{Name: "head", SnapRadius: 100}
	if withHighlight {
		dp.Highlight = &HighlightImage{
			Width:          80,
			Height:         40,
			HighlightColor: color.NRGBA{R: 255, G: 255, A: 128},
			OriginalColor:  color.NRGBA{R: 10, G: 10, B: 10, A: 255},
			Color:          color.NRGBA{R: 10, G: 10, B: 10, A: 255},
		}
	}
	return dp
}

// TestDropPoint_HoverEnterExit 测试悬停高亮
func TestDropPoint_HoverEnterExit(t *testing.T) {
	dp := newTestDropPoint(true)

	dp.OnHoverEnter()
	if !dp.IsHighlighted() {
		t.Fatal("Expected highlight after OnHoverEnter")
	}
	if dp.Highlight.Color != dp.Highlight.HighlightColor {
		t.Errorf("Expected highlight color, got %v", dp.Highlight.Color)
	}

	dp.OnHoverExit()
	if dp.IsHighlighted() {
		t.Error("Expected no highlight after OnHoverExit")
	}
	if dp.Highlight.Color != dp.Highlight.OriginalColor {
		t.Errorf("Expected original color restored, got %v", dp.Highlight.Color)
	}

	// 幂等
	dp.OnHoverExit()
	if dp.IsHighlighted() {
		t.Error("Expected OnHoverExit to be idempotent")
	}
}

// TestDropPoint_OccupiedNeverHighlights 测试占用与高亮互斥
func TestDropPoint_OccupiedNeverHighlights(t *testing.T) {
	dp := newTestDropPoint(true)

	// 悬停中被占用：占用覆盖悬停状态
	dp.OnHoverEnter()
	dp.Occupy(ecs.EntityID(7))
	if !dp.IsOccupied || dp.Occupant != 7 {
		t.Fatalf("Expected occupant 7, got occupied=%v occupant=%d", dp.IsOccupied, dp.Occupant)
	}
	if dp.IsHighlighted() {
		t.Error("Occupied drop point must not be highlighted")
	}

	// 已占用时悬停不显示高亮
	dp.OnHoverEnter()
	if dp.IsHighlighted() {
		t.Error("OnHoverEnter must be a no-op while occupied")
	}

	dp.Release()
	dp.OnHoverEnter()
	if !dp.IsHighlighted() {
		t.Error("Expected highlight after release and hover")
	}
}

// TestDropPoint_ReleaseIdempotent 测试释放幂等
func TestDropPoint_ReleaseIdempotent(t *testing.T) {
	once := newTestDropPoint(true)
	once.Occupy(ecs.EntityID(3))
	once.Release()

	twice := newTestDropPoint(true)
	twice.Occupy(ecs.EntityID(3))
	twice.Release()
	twice.Release()

	if once.IsOccupied != twice.IsOccupied || once.Occupant != twice.Occupant ||
		once.IsHighlighted() != twice.IsHighlighted() || *once.Highlight != *twice.Highlight {
		t.Errorf("Release twice differs from once: %+v vs %+v", once, twice)
	}
	if twice.IsOccupied || twice.Occupant != 0 {
		t.Error("Expected drop point to be free after release")
	}

	// 从未占用过的投放点释放也安全
	fresh := newTestDropPoint(false)
	fresh.Release()
	if fresh.IsOccupied {
		t.Error("Release on a free drop point must keep it free")
	}
}

// TestDropPoint_NoHighlightImage 测试无高亮图片时仍正确记录占用
func TestDropPoint_NoHighlightImage(t *testing.T) {
	dp := newTestDropPoint(false)

	dp.OnHoverEnter()
	if dp.IsHighlighted() {
		t.Error("Drop point without highlight image can never be highlighted")
	}

	dp.Occupy(ecs.EntityID(1))
	if !dp.IsOccupied {
		t.Error("Occupy must work without highlight image")
	}
}

// TestClickable_Contains 测试命中区域
func TestClickable_Contains(t *testing.T) {
	c := &ClickableComponent{Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 200, 100, true},
		{"left edge", 150, 100, true},
		{"outside right", 251, 100, false},
		{"outside top", 200, 74, false},
	}
	for _, tt := range tests {
		if got := c.Contains(200, 100, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: Contains(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}
