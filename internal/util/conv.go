package util

import (
	"strconv"
)

// ParseIntDefault 将字符串转换为整数，为空或解析失败时返回默认值
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// ClampFloat 将 v 限制在 [min, max] 区间内
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
