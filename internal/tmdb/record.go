package tmdb

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/formatter"
	"github.com/John-Robertt/tmdbnote/internal/payload"
	"github.com/John-Robertt/tmdbnote/internal/validate"
)

// Entry 是一次完整获取的结果：规范化 Record + 投影后的 Presentation。
type Entry struct {
	Record       domain.Record
	Presentation formatter.Presentation
}

// 详情请求一次带回的扩展字段。
const (
	movieAppend  = "release_dates,alternative_titles,external_ids"
	seriesAppend = "content_ratings,alternative_titles,external_ids"
	personAppend = "external_ids"
)

// imageLanguages 构造 include_image_language：目标语言、en 与无语言标记。
// 图片接口默认只返回与 language 匹配的图，不显式列出时目标语言以外的候选会缺失。
func (c *Client) imageLanguages() string {
	lang := c.conv.Language()
	if lang == "" || lang == formatter.FallbackLanguage {
		return formatter.FallbackLanguage + ",null"
	}
	return lang + "," + formatter.FallbackLanguage + ",null"
}

// fetchPlan 描述某一类条目的三个请求与承接它们的结构。
type fetchPlan struct {
	detailsAppend string
	creditsPath   string

	details any
	credits any
	images  *payload.Images
}

func planFor(kind domain.Kind) (fetchPlan, bool) {
	p := fetchPlan{images: &payload.Images{}}
	switch kind {
	case domain.KindMovie:
		p.detailsAppend = movieAppend
		p.creditsPath = "/credits"
		p.details = &payload.MovieDetails{}
		p.credits = &payload.Credits{}
	case domain.KindSeries:
		p.detailsAppend = seriesAppend
		p.creditsPath = "/credits"
		p.details = &payload.SeriesDetails{}
		p.credits = &payload.Credits{}
	case domain.KindPerson:
		p.detailsAppend = personAppend
		p.creditsPath = "/combined_credits"
		p.details = &payload.PersonDetails{}
		p.credits = &payload.CombinedCredits{}
	default:
		return fetchPlan{}, false
	}
	return p, true
}

// GetRecordByID 并发获取 details/credits/images，转换并投影为 Entry。
//
// 规则：
// - 三个请求任意一个失败：整体失败，不返回部分结果
// - 第一个失败会取消其余仍在进行的请求
func (c *Client) GetRecordByID(ctx context.Context, kind domain.Kind, id int, token string) (Entry, error) {
	const op = "get_record"
	if !validate.IsValidToken(token) {
		return Entry{}, invalidInput(op, "token 形状不合法")
	}
	if !validate.IsValidMovieID(id) {
		return Entry{}, invalidInput(op, "id 必须为正整数：%d", id)
	}
	segment, ok := kindPath(kind)
	plan, planOK := planFor(kind)
	if !ok || !planOK {
		return Entry{}, invalidInput(op, "未知 kind：%q", kind)
	}

	log := c.opLogger(op).With().Str("kind", string(kind)).Int("id", id).Logger()
	base := "/" + segment + "/" + strconv.Itoa(id)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := url.Values{}
		q.Set("append_to_response", plan.detailsAppend)
		return c.getJSON(gctx, "details", base, q, token, plan.details)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "credits", base+plan.creditsPath, nil, token, plan.credits)
	})
	g.Go(func() error {
		q := url.Values{}
		q.Set("include_image_language", c.imageLanguages())
		return c.getJSON(gctx, "images", base+"/images", q, token, plan.images)
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("获取条目失败")
		return Entry{}, upstreamFailure(op, err)
	}

	var rec domain.Record
	switch d := plan.details.(type) {
	case *payload.MovieDetails:
		rec = c.conv.ConvertMovie(*d, *plan.credits.(*payload.Credits), *plan.images)
	case *payload.SeriesDetails:
		rec = c.conv.ConvertSeries(*d, *plan.credits.(*payload.Credits), *plan.images)
	case *payload.PersonDetails:
		rec = c.conv.ConvertPerson(*d, *plan.credits.(*payload.CombinedCredits), *plan.images)
	}

	log.Info().Str("name", rec.DisplayName).Int("persons", len(rec.Persons)).Msg("条目已获取")
	return Entry{
		Record:       rec,
		Presentation: formatter.CreatePresentationRecord(rec, c.paths),
	}, nil
}
