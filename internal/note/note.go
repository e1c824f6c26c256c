// Package note 把投影结果序列化为 Markdown 笔记（YAML frontmatter + 正文）。
package note

import (
	"bytes"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/John-Robertt/tmdbnote/internal/formatter"
)

const delimiter = "---\n"

// Encode 生成完整笔记。
//
// 规则：
// - frontmatter 的键集合与顺序固定（与 Presentation 字段一致），三种 kind 相同
// - 正文只有标题与简介；简介为空时只输出标题
func Encode(p formatter.Presentation) ([]byte, error) {
	var fm bytes.Buffer
	enc := yaml.NewEncoder(&fm)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString(delimiter)
	b.Write(fm.Bytes())
	b.WriteString(delimiter)
	b.WriteString("\n# ")
	b.WriteString(title(p))
	b.WriteString("\n")

	body := strings.TrimSpace(p.Description)
	if p.Kind == "person" {
		body = strings.TrimSpace(p.Biography)
	}
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.Bytes(), nil
}

// Decode 读取 Encode 生成的 frontmatter（用于校验与测试）。
func Decode(b []byte) (formatter.Presentation, error) {
	var p formatter.Presentation
	s := string(b)
	if !strings.HasPrefix(s, delimiter) {
		return p, errNoFrontmatter
	}
	rest := s[len(delimiter):]
	end := strings.Index(rest, "\n"+delimiter)
	if end < 0 {
		return p, errNoFrontmatter
	}
	err := yaml.Unmarshal([]byte(rest[:end+1]), &p)
	return p, err
}

// FileName 生成笔记文件名："<名字> (<年份>).md"；去掉文件系统不接受的字符。
func FileName(p formatter.Presentation) string {
	name := sanitize(title(p))
	if name == "" {
		name = p.Kind + "-" + strconv.Itoa(p.ID)
	}
	if p.Year > 0 && p.Kind != "person" {
		name += " (" + strconv.Itoa(p.Year) + ")"
	}
	return name + ".md"
}

func title(p formatter.Presentation) string {
	if t := strings.TrimSpace(p.Name); t != "" {
		return t
	}
	return strings.TrimSpace(p.OriginalName)
}

func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '#', '^', '[', ']':
			return -1
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
