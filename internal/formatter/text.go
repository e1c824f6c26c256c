package formatter

import (
	"strconv"
	"strings"
)

// MaxArrayLen 是投影阶段大多数数组字段的上限。
const MaxArrayLen = 50

// ArrayMode 决定数组里每个字符串如何被格式化。
type ArrayMode int

const (
	// ModeShort：清洗（去冒号 + trim），丢弃空值。
	ModeShort ArrayMode = iota
	// ModeLong：折叠空白为单个空格，并用双引号包裹。
	ModeLong
	// ModeURL：只 trim。
	ModeURL
	// ModeLink：[[text]]。
	ModeLink
	// ModeLinkWithPath：[[folder/text]]（folder 为空时等同 ModeLink）。
	ModeLinkWithPath
)

// LinkEntry 是既有名字又有数字 id 的条目（用于按 id 建立引用）。
type LinkEntry struct {
	ID   int
	Name string
}

// cleanText 去掉冒号（下游链接语法保留字符）并 trim。
func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ":", ""))
}

func collapseSpace(s string) string { return strings.Join(strings.Fields(s), " ") }

func cleanFolder(folder string) string {
	return strings.Trim(strings.TrimSpace(folder), "/")
}

// FormatArray 按 mode 格式化 values，结果最多 limit 条（limit<=0 表示不限）。
// 返回值永远不为 nil。
func FormatArray(values []string, mode ArrayMode, folder string, limit int) []string {
	folder = cleanFolder(folder)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if limit > 0 && len(out) >= limit {
			break
		}
		var s string
		switch mode {
		case ModeLong:
			if s = collapseSpace(v); s != "" {
				s = `"` + s + `"`
			}
		case ModeURL:
			s = strings.TrimSpace(v)
		case ModeLink:
			if s = cleanText(v); s != "" {
				s = "[[" + s + "]]"
			}
		case ModeLinkWithPath:
			if s = cleanText(v); s != "" {
				s = "[[" + joinFolder(folder, s) + "]]"
			}
		default:
			s = cleanText(v)
		}
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FormatIDLinks 生成 [[folder/ID|Name]]；名字清洗后为空或 id 非正的条目先被丢弃。
func FormatIDLinks(entries []LinkEntry, folder string, limit int) []string {
	folder = cleanFolder(folder)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if limit > 0 && len(out) >= limit {
			break
		}
		name := cleanText(e.Name)
		if name == "" || e.ID <= 0 {
			continue
		}
		out = append(out, "[["+joinFolder(folder, strconv.Itoa(e.ID))+"|"+name+"]]")
	}
	return out
}

func joinFolder(folder, s string) string {
	if folder == "" {
		return s
	}
	return folder + "/" + s
}
