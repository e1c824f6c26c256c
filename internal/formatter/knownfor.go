package formatter

import (
	"sort"
	"strings"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/payload"
)

// MaxKnownFor 是人物代表作上限。
const MaxKnownFor = 10

func knownForScore(c payload.TitleCredit) float64 {
	return c.Popularity.Float() + 0.1*c.VoteCount.Float()
}

// ExtractKnownForTitles 合并 cast 与 crew，按 popularity + 0.1*vote_count 降序取前 MaxKnownFor 个。
//
// 规则：
// - 排序稳定：同分保持 cast 在前、源顺序不变
// - 同一作品（kind+id）只保留第一次出现（同一人既导演又编剧时不重复）
func (c *Converter) ExtractKnownForTitles(credits payload.CombinedCredits) []domain.RelatedTitle {
	all := make([]payload.TitleCredit, 0, len(credits.Cast)+len(credits.Crew))
	all = append(all, credits.Cast...)
	all = append(all, credits.Crew...)

	sort.SliceStable(all, func(i, j int) bool {
		return knownForScore(all[i]) > knownForScore(all[j])
	})

	type key struct {
		kind domain.Kind
		id   int
	}
	seen := make(map[key]struct{}, len(all))
	out := make([]domain.RelatedTitle, 0, MaxKnownFor)
	for _, t := range all {
		if len(out) >= MaxKnownFor {
			break
		}
		rt := c.relatedTitle(t)
		k := key{kind: rt.Kind, id: rt.ID}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, rt)
	}
	return out
}

func (c *Converter) relatedTitle(t payload.TitleCredit) domain.RelatedTitle {
	kind := domain.KindMovie
	if strings.EqualFold(strings.TrimSpace(t.MediaType), "tv") {
		kind = domain.KindSeries
	}

	date := t.ReleaseDate
	if strings.TrimSpace(date) == "" {
		date = t.FirstAirDate
	}

	original := firstNonEmpty(t.OriginalTitle, t.OriginalName)
	return domain.RelatedTitle{
		ID:           t.ID,
		Name:         firstNonEmpty(t.Title, t.Name, original),
		OriginalName: original,
		Kind:         kind,
		Poster:       c.imageFromPath(t.PosterPath, RolePoster),
		Rating:       t.VoteAverage.Float(),
		Year:         yearFromDate(date),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
