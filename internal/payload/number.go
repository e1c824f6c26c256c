package payload

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number 是上游数值字段的宽松表示。
//
// 上游同一个字段在不同实体/版本下可能是 JSON 数字、数字字符串、空串或 null；
// 解析失败一律视为 0，不让单个字段拖垮整条记录。
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = 0
			return nil
		}
		*n = Number(parseLooseFloat(s))
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) Float() float64 { return float64(n) }

// Int 截断为整数（用于票数等计数字段）。
func (n Number) Int() int { return int(n) }

func parseLooseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// 有些地区的数据会用逗号做小数点。
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
