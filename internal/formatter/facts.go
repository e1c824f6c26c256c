package formatter

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/John-Robertt/tmdbnote/internal/payload"
)

// MaxFacts 是保留的趣闻上限。
const MaxFacts = 5

var (
	entityRE = regexp.MustCompile(`&(#[0-9]+|#[xX][0-9a-fA-F]+|[A-Za-z][A-Za-z0-9]*);`)
	tagRE    = regexp.MustCompile(`<[^>]*>`)
)

// FilterFacts 去掉剧透与空文本，最多保留 MaxFacts 条，并清理 HTML。
func FilterFacts(facts []payload.Fact) []string {
	out := make([]string, 0, MaxFacts)
	for _, f := range facts {
		if len(out) >= MaxFacts {
			break
		}
		if f.Spoiler || strings.TrimSpace(f.Value) == "" {
			continue
		}
		if s := cleanFactText(f.Value); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// cleanFactText 去标签 + 按固定表解码实体，表外实体直接丢弃。
//
// 先把 '&' 转义再交给 HTML 解析器：这样解析器不会提前解码实体，
// 实体的取舍完全由 htmlEntity 表决定。
func cleanFactText(s string) string {
	text := stripTags(strings.ReplaceAll(s, "&", "&amp;"))
	text = entityRE.ReplaceAllStringFunc(text, func(ref string) string {
		if v, ok := htmlEntity(ref); ok {
			return v
		}
		return ""
	})
	return collapseSpace(text)
}

func stripTags(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		// 解析器几乎不会失败；失败时退化为正则去标签，并还原转义。
		return strings.ReplaceAll(tagRE.ReplaceAllString(s, ""), "&amp;", "&")
	}
	return doc.Text()
}
