package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/John-Robertt/tmdbnote/internal/domain"
)

// 表格里单元格的最大显示宽度；超出截断并加 "..."。
const maxCellWidth = 48

var suggestionHeader = []string{"ID", "类型", "年份", "名称", "备注"}

// renderSuggestions 把搜索建议排成按显示宽度对齐的表格（西里尔/CJK 混排也能对齐）。
func renderSuggestions(items []domain.Suggestion) []string {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, suggestionHeader)
	for _, s := range items {
		year := ""
		if s.Year > 0 {
			year = strconv.Itoa(s.Year)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			string(s.Kind),
			year,
			truncate(s.Name, maxCellWidth),
			truncate(s.SecondaryLabel, maxCellWidth),
		})
	}

	widths := make([]int, len(suggestionHeader))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	out := make([]string, 0, len(rows)+1)
	for r, row := range rows {
		out = append(out, joinPadded(row, widths))
		if r == 0 {
			seps := make([]string, len(widths))
			for i, w := range widths {
				seps[i] = strings.Repeat("-", w)
			}
			out = append(out, joinPadded(seps, widths))
		}
	}
	return out
}

func joinPadded(cells []string, widths []int) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(cell)
		// 最后一列不补尾随空格。
		if i < len(cells)-1 {
			if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	return sb.String()
}

// truncate 按显示宽度截断。
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "...")
}

// formatProxy 用于日志：不输出代理的用户名与密码。
func formatProxy(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "off"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "on (invalid)"
	}
	auth := "off"
	if u.User != nil {
		auth = "on"
	}
	return fmt.Sprintf("on (%s://%s, auth=%s)", u.Scheme, u.Host, auth)
}
