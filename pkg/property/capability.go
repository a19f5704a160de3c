package property

import (
	"log"
	"os"
	"strconv"
)

const (
	// DepthFeatureLevel 支持深度合成（TranslationZ / Z）所需的最低特性等级
	DepthFeatureLevel = 21

	// LatestFeatureLevel 当前已知的最高特性等级
	LatestFeatureLevel = 34

	// FeatureLevelEnv 覆盖宿主特性等级的环境变量（用于本地调试）
	FeatureLevelEnv = "PROPANIM_FEATURE_LEVEL"
)

// Capabilities 描述宿主平台的属性支持能力
type Capabilities struct {
	// FeatureLevel 宿主特性等级，决定哪些属性可用
	FeatureLevel int
}

// Supports 检查属性在此能力下是否可用
// 目录外的 ID 一律不支持
func (c Capabilities) Supports(id ID) bool {
	switch id {
	case TranslationZ, Z:
		return c.FeatureLevel >= DepthFeatureLevel
	}
	return id.Valid()
}

// DetectCapabilities 检测宿主平台能力
//
// 特性等级来源（优先级从高到低）：
//  1. 环境变量 PROPANIM_FEATURE_LEVEL
//  2. 编译目标（见 feature_level_*.go 的构建标签）
func DetectCapabilities() Capabilities {
	level := hostFeatureLevel()

	if raw := os.Getenv(FeatureLevelEnv); raw != "" {
		override, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("[Capabilities] Warning: invalid %s=%q, using host level %d", FeatureLevelEnv, raw, level)
		} else {
			level = override
		}
	}

	return Capabilities{FeatureLevel: level}
}
