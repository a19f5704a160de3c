package components

// ProgressApplier 是可被进度驱动的动画
// animation.ProgressAnimation 实现了此接口
type ProgressApplier interface {
	// Apply 按进度写入所有属性
	Apply(progress float64) error
	// EndProgress 动画逻辑完成时的进度值
	EndProgress() float64
}

// DragAxis 拖动方向
type DragAxis int

const (
	// DragHorizontal 水平拖动（使用指针 X 偏移）
	DragHorizontal DragAxis = iota
	// DragVertical 垂直拖动（使用指针 Y 偏移）
	DragVertical
)

// InteractionComponent 存储手势驱动动画的状态
// 用于实现“拖动卡片 → 动画跟随手指 → 松手回弹/完成”的交互
//
// 工作流程：
//  1. BeginDrag 记录按下位置，进入拖动状态
//  2. DragTo 根据指针偏移计算进度：Progress = 偏移 / DragRange
//  3. EndDrag 根据 CompleteThreshold 决定回到 0 还是 EndProgress
//  4. InteractionSystem 每帧用缓动曲线推进 Progress 并调用 Animation.Apply
type InteractionComponent struct {
	// Animation 被驱动的动画
	Animation ProgressApplier

	// Axis 拖动方向
	Axis DragAxis

	// DragRange 拖动多少像素对应进度 1.0
	DragRange float64

	// CompleteThreshold 松手时进度超过此比例（相对 EndProgress）则完成，否则回弹
	// 例如：0.5 表示拖过一半即完成
	CompleteThreshold float64

	// SettleDuration 松手后回弹/完成动画的时长（秒）
	SettleDuration float64

	// Progress 当前进度（未钳制，拖动过头时可以超出 [0, EndProgress]）
	Progress float64

	// Dragging 是否正在拖动
	Dragging bool

	// DragStart 按下时的指针坐标（沿 Axis 方向）
	DragStart float64

	// DragBaseProgress 按下时的进度（支持在回弹中途再次抓取）
	DragBaseProgress float64

	// Settling 是否正在回弹/完成
	Settling bool

	// SettleFrom, SettleTarget 回弹起止进度
	SettleFrom   float64
	SettleTarget float64

	// SettleElapsed 回弹已进行时间（秒）
	SettleElapsed float64

	// Completed 最近一次回弹是否到达了 EndProgress
	Completed bool

	// Detached 元素已不可用，系统不再驱动此动画
	Detached bool
}
