//go:build nodepth

package property

// hostFeatureLevel 返回宿主特性等级
// 使用 -tags nodepth 构建时模拟不支持深度合成的平台
func hostFeatureLevel() int {
	return DepthFeatureLevel - 1
}
