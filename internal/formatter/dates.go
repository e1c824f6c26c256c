package formatter

import (
	"strconv"
	"strings"
	"time"
)

// 上游偶尔会给出明显错误的年份（例如 1650、2200），超出范围一律按未知处理。
const (
	minYear = 1800
	maxYear = 2100
)

// parseDate 接受 "YYYY-MM-DD" 以及带时间的 RFC3339 前缀。
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len("2006-01-02") {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	if t.Year() < minYear || t.Year() > maxYear {
		return time.Time{}, false
	}
	return t, true
}

// isoDate 把上游日期规范为 YYYY-MM-DD；只有年份、无法解析或越界都返回空串。
func isoDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// yearFromDate 只看前四个字符，因此 "1999" 这种只有年份的值也能得到年份。
func yearFromDate(s string) int {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil || y < minYear || y > maxYear {
		return 0
	}
	return y
}
