package tmdb

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/payload"
	"github.com/John-Robertt/tmdbnote/internal/validate"
)

// MaxSuggestions 是搜索结果上限。
const MaxSuggestions = 20

const (
	scoreExact    = 1000
	scorePrefix   = 500
	scoreContains = 250
)

// relevanceScore 计算单条结果的相关度（各项可叠加）。
// query 与 name 都应已做大小写折叠。
func relevanceScore(query, name string, popularity float64) float64 {
	score := 2 * popularity
	if name == query {
		score += scoreExact
	}
	if strings.HasPrefix(name, query) {
		score += scorePrefix
	}
	if strings.Contains(name, query) {
		score += scoreContains
	}
	return score
}

type scored struct {
	s     domain.Suggestion
	score float64
}

// SearchByQuery 搜索 movie/tv/person 并按相关度排序，最多返回 MaxSuggestions 条。
//
// 规则：
// - 排序稳定：同分保持上游返回顺序
// - 不认识的 media_type 直接跳过
// - 截断后为空返回 not_found（与传输失败区分）
func (c *Client) SearchByQuery(ctx context.Context, query, token string) ([]domain.Suggestion, error) {
	const op = "search"
	if !validate.IsValidToken(token) {
		return nil, invalidInput(op, "token 形状不合法")
	}
	if !validate.IsValidSearchQuery(query) {
		return nil, invalidInput(op, "query 为空或超过 %d 个字符", validate.MaxQueryLen)
	}
	query = strings.TrimSpace(query)
	log := c.opLogger(op)

	var page payload.SearchPage
	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "false")
	if err := c.getJSON(ctx, op, "/search/multi", q, token, &page); err != nil {
		log.Error().Err(err).Msg("搜索请求失败")
		return nil, upstreamFailure(op, err)
	}

	fold := cases.Fold()
	needle := fold.String(query)

	ranked := make([]scored, 0, len(page.Results))
	for _, r := range page.Results {
		s, ok := c.conv.ConvertSearchResult(r)
		if !ok {
			continue
		}
		name := fold.String(strings.TrimSpace(s.Name))
		ranked = append(ranked, scored{s: s, score: relevanceScore(needle, name, r.Popularity.Float())})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > MaxSuggestions {
		ranked = ranked[:MaxSuggestions]
	}
	if len(ranked) == 0 {
		log.Debug().Str("query", query).Msg("搜索没有结果")
		return nil, &Error{Code: CodeNotFound, Op: op}
	}

	out := make([]domain.Suggestion, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.s)
	}
	log.Debug().Int("upstream", len(page.Results)).Int("returned", len(out)).Msg("搜索完成")
	return out, nil
}
