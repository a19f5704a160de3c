// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 存储当前帧的指针状态
// 统一处理鼠标和触摸输入，优先检测触摸
type PointerState struct {
	// JustPressed 本帧刚按下
	JustPressed bool
	// Pressed 当前处于按下状态
	Pressed bool
	// JustReleased 本帧刚释放
	JustReleased bool
	// X, Y 指针位置（释放时为最后一次已知位置）
	X, Y int
}

// PointerTracker 跟踪指针，在触摸释放时保留最后位置
// 触摸释放后 ebiten 无法再查询该触摸点的位置
type PointerTracker struct {
	lastX, lastY int
}

// Poll 读取本帧的指针状态
// 每帧 Update 中调用一次
func (p *PointerTracker) Poll() PointerState {
	state := PointerState{}

	// 首先检查触摸输入（移动设备）
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.Pressed = true
		state.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		p.lastX, p.lastY = state.X, state.Y
		return state
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		state.JustReleased = true
		state.X, state.Y = p.lastX, p.lastY
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	p.lastX, p.lastY = state.X, state.Y
	return state
}
