package property

import (
	"fmt"
	"strings"
)

// ID 是可动画属性的符号标识
// 取值为互不相同的位标志，但只作为映射键使用，不做位运算组合
type ID uint16

const (
	// None 无效属性
	None ID = 0x0000

	TranslationX ID = 0x0001
	TranslationY ID = 0x0002
	TranslationZ ID = 0x0004
	ScaleX       ID = 0x0008
	ScaleY       ID = 0x0010
	Rotation     ID = 0x0020
	RotationX    ID = 0x0040
	RotationY    ID = 0x0080

	// X, Y, Z 绝对坐标轴：布局位置 + 平移偏移
	X ID = 0x0100
	Y ID = 0x0200
	Z ID = 0x0400

	// Alpha 不透明度
	Alpha ID = 0x0800
)

// allIDs 按位标志顺序排列的完整目录
var allIDs = []ID{
	TranslationX, TranslationY, TranslationZ,
	ScaleX, ScaleY,
	Rotation, RotationX, RotationY,
	X, Y, Z,
	Alpha,
}

var idNames = map[ID]string{
	TranslationX: "translationX",
	TranslationY: "translationY",
	TranslationZ: "translationZ",
	ScaleX:       "scaleX",
	ScaleY:       "scaleY",
	Rotation:     "rotation",
	RotationX:    "rotationX",
	RotationY:    "rotationY",
	X:            "x",
	Y:            "y",
	Z:            "z",
	Alpha:        "alpha",
}

// AllIDs 返回目录中的全部属性（副本，可随意修改）
func AllIDs() []ID {
	ids := make([]ID, len(allIDs))
	copy(ids, allIDs)
	return ids
}

// String 返回属性在配置文件中使用的名称
func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("ID(0x%04x)", uint16(id))
}

// Valid 检查 id 是否属于目录
func (id ID) Valid() bool {
	_, ok := idNames[id]
	return ok
}

// ParseID 将配置名称解析为属性 ID
// 名称不区分大小写，"opacity" 是 "alpha" 的别名
func ParseID(name string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "opacity" {
		return Alpha, nil
	}
	for id, n := range idNames {
		if strings.ToLower(n) == key {
			return id, nil
		}
	}
	return None, fmt.Errorf("unknown property %q", name)
}
