//go:build !nodepth

package property

// hostFeatureLevel 返回宿主特性等级
// 默认构建支持全部属性
func hostFeatureLevel() int {
	return LatestFeatureLevel
}
