// Package formatter 把目录 API 的原始响应规范化为 domain.Record，
// 再把 Record 投影为模板可直接使用的扁平字段集合。
//
// 约束：
// - 转换与投影都是纯函数：相同输入 => 相同输出，不做 I/O
// - 缺失的标量变成空串/0，缺失的列表变成空列表；转换过程不返回错误
package formatter

import "strings"

// Converter 持有转换所需的固定参数（目标语言、图片 URL 模板）。
// 零值不可用，请用 NewConverter。
type Converter struct {
	language     string
	imagePattern string
}

// Option 配置 Converter。
type Option func(*Converter)

// WithLanguage 设置图片挑选与本地化名使用的目标语言（ISO 639-1）。
func WithLanguage(lang string) Option {
	return func(c *Converter) {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang != "" {
			c.language = lang
		}
	}
}

// WithImageURLPattern 覆盖图片 URL 模板（必须包含 {size} 与 {path}）。
func WithImageURLPattern(pattern string) Option {
	return func(c *Converter) {
		pattern = strings.TrimSpace(pattern)
		if strings.Contains(pattern, "{size}") && strings.Contains(pattern, "{path}") {
			c.imagePattern = pattern
		}
	}
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		language:     TargetLanguage,
		imagePattern: DefaultImageURLPattern,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Language 返回图片挑选使用的目标语言。
func (c *Converter) Language() string { return c.language }
