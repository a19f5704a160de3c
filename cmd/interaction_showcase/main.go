// cmd/interaction_showcase/main.go
// 交互动画展示程序：拖动卡片驱动属性动画
//
// 用法：
//   go run ./cmd/interaction_showcase --config=cmd/interaction_showcase/config.yaml
//
// 操作：
//   拖动卡片      驱动当前预设
//   1-9           切换预设
//   R             重置卡片
//   D             切换深度效果（下次启动生效）

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/gonewx/propanim/pkg/animation"
	"github.com/gonewx/propanim/pkg/components"
	"github.com/gonewx/propanim/pkg/config"
	"github.com/gonewx/propanim/pkg/ecs"
	"github.com/gonewx/propanim/pkg/entities"
	"github.com/gonewx/propanim/pkg/platform"
	"github.com/gonewx/propanim/pkg/property"
	"github.com/gonewx/propanim/pkg/systems"
	"github.com/gonewx/propanim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

var (
	configPath   = flag.String("config", "cmd/interaction_showcase/config.yaml", "配置文件路径")
	presetName   = flag.String("preset", "", "启动时使用的预设（默认使用上次选择）")
	featureLevel = flag.Int("feature-level", 0, "本次运行强制使用的特性等级（0 = 使用配置档，不会保存）")
	verbose      = flag.Bool("verbose", false, "详细日志")
)

// Showcase 展示程序主结构
type Showcase struct {
	config   *ShowcaseConfig
	presets  *config.PresetConfig
	profiles *platform.ProfileManager
	registry *property.Registry

	entityManager     *ecs.EntityManager
	interactionSystem *systems.InteractionSystem
	renderSystem      *systems.RenderSystem

	card       ecs.EntityID
	cardLayout components.LayoutComponent
	preset     string

	pointer  utils.PointerTracker
	dragged  ecs.EntityID
	dragging bool
}

// NewShowcase 创建展示程序
// featureLevel > 0 时仅本次运行强制使用该特性等级，不写入配置档
func NewShowcase(cfg *ShowcaseConfig, profiles *platform.ProfileManager, featureLevel int) (*Showcase, error) {
	presets, err := loadPresets(cfg.PresetsFile)
	if err != nil {
		return nil, err
	}
	log.Printf("✓ 加载预设: %s", strings.Join(presets.Names(), ", "))

	em := ecs.NewEntityManager()
	s := &Showcase{
		config:            cfg,
		presets:           presets,
		profiles:          profiles,
		registry:          profiles.NewRegistryWithLevel(featureLevel),
		entityManager:     em,
		interactionSystem: systems.NewInteractionSystem(em),
		renderSystem:      systems.NewRenderSystem(em),
	}

	rgba, _ := cfg.Card.rgba()
	image := ebiten.NewImage(int(cfg.Card.Width), int(cfg.Card.Height))
	image.Fill(rgba)

	s.cardLayout = components.LayoutComponent{
		Left:      (float64(cfg.Window.Width) - cfg.Card.Width) / 2,
		Top:       (float64(cfg.Window.Height) - cfg.Card.Height) / 2,
		Elevation: 1,
		Width:     cfg.Card.Width,
		Height:    cfg.Card.Height,
	}
	s.card = entities.NewViewEntity(em, image, s.cardLayout)

	preset := profiles.GetProfile().Preset
	if _, err := presets.Get(preset); err != nil {
		preset = presets.Names()[0]
	}
	if err := s.selectPreset(preset); err != nil {
		return nil, err
	}
	return s, nil
}

func loadPresets(path string) (*config.PresetConfig, error) {
	if path == "" {
		return config.DefaultPresetConfig()
	}
	return config.LoadPresetConfig(path)
}

// selectPreset 重置卡片并为预设构建新的动画
func (s *Showcase) selectPreset(name string) error {
	preset, err := s.presets.Get(name)
	if err != nil {
		return err
	}

	s.resetCard()

	// 从静止状态读取“当前值”，所以必须先重置再构建
	anim, err := animation.WithRegistry(s.registry, property.NewEntityElement(s.entityManager, s.card)).
		ApplyPreset(preset).
		Build()
	if err != nil {
		return fmt.Errorf("构建预设 '%s' 失败: %w", name, err)
	}

	axis, _ := s.config.Interaction.dragAxis()
	s.entityManager.AddComponent(s.card, &components.InteractionComponent{
		Animation:         anim,
		Axis:              axis,
		DragRange:         s.config.Interaction.DragRange,
		CompleteThreshold: s.config.Interaction.CompleteThreshold,
		SettleDuration:    s.config.Interaction.SettleDuration,
	})

	s.preset = name
	s.profiles.SetPreset(name)
	if err := s.profiles.Save(); err != nil {
		log.Printf("[Showcase] Warning: %v", err)
	}

	log.Printf("[Showcase] Preset '%s': %d properties, end progress %.2f", name, anim.Len(), anim.EndProgress())
	return nil
}

func (s *Showcase) resetCard() {
	if layout, ok := ecs.GetComponent[*components.LayoutComponent](s.entityManager, s.card); ok {
		*layout = s.cardLayout
	}
	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.card); ok {
		*transform = *components.NewTransformComponent()
	}
	if alpha, ok := ecs.GetComponent[*components.AlphaComponent](s.entityManager, s.card); ok {
		alpha.Alpha = 1
	}
}

// Update 处理输入并推进交互
func (s *Showcase) Update() error {
	state := s.pointer.Poll()
	x, y := float64(state.X), float64(state.Y)

	switch {
	case state.JustPressed:
		if id, ok := s.interactionSystem.HitTest(x, y); ok {
			s.dragged = id
			s.dragging = s.interactionSystem.BeginDrag(id, x, y)
		}
	case state.Pressed && s.dragging:
		s.interactionSystem.DragTo(s.dragged, x, y)
	case state.JustReleased && s.dragging:
		s.interactionSystem.DragTo(s.dragged, x, y)
		s.interactionSystem.EndDrag(s.dragged)
		s.dragging = false
	}

	s.interactionSystem.Update(1.0 / float64(ebiten.TPS()))

	names := s.presets.Names()
	for i := 0; i < len(names) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			if err := s.selectPreset(names[i]); err != nil {
				log.Printf("[Showcase] Warning: %v", err)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.selectPreset(s.preset); err != nil {
			log.Printf("[Showcase] Warning: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		enabled := !s.profiles.GetProfile().DepthEffects
		s.profiles.SetDepthEffects(enabled)
		if err := s.profiles.Save(); err != nil {
			log.Printf("[Showcase] Warning: %v", err)
		}
		log.Printf("[Showcase] Depth effects %v (takes effect on next launch)", enabled)
	}

	return nil
}

// Draw 绘制卡片和帮助信息
func (s *Showcase) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff})
	s.renderSystem.Draw(screen)

	progress := 0.0
	if comp, ok := ecs.GetComponent[*components.InteractionComponent](s.entityManager, s.card); ok {
		progress = comp.Progress
	}

	help := fmt.Sprintf(
		"preset: %s  progress: %.2f\nfeature level: %d  depth: %v\n[1-9] preset  [R] reset  [D] toggle depth",
		s.preset, progress,
		s.registry.Capabilities().FeatureLevel, s.registry.IsSupported(property.TranslationZ),
	)
	ebitenutil.DebugPrintAt(screen, help, 10, 10)
}

// Layout 设置窗口布局
func (s *Showcase) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.config.Window.Width, s.config.Window.Height
}

func openProfiles() *platform.ProfileManager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("警告: 存储目录不可用: %v (配置档不会保存)", err)
		return platform.NewProfileManager(nil)
	}

	manager, err := gdata.Open(gdata.Config{AppName: "propanim_showcase"})
	if err != nil {
		log.Printf("警告: 无法打开 gdata: %v (配置档不会保存)", err)
		return platform.NewProfileManager(nil)
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[Showcase] Profile storage: %s", path)
	}
	return platform.NewProfileManager(manager)
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	log.Println("=== 交互动画展示启动 ===")

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	profiles := openProfiles()
	if *presetName != "" {
		profiles.SetPreset(*presetName)
	}

	showcase, err := NewShowcase(cfg, profiles, *featureLevel)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	if !utils.IsMobile() {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(60)

	log.Println("=== 启动完成，开始运行 ===")

	if err := ebiten.RunGame(showcase); err != nil {
		log.Fatal(err)
	}
}
