package formatter

import (
	"strings"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/payload"
)

// ConvertSearchResult 把一条搜索结果转为建议项；media_type 不认识时 ok=false。
//
// SecondaryLabel：作品取与主名不同的原名，人物取其主要部门。
func (c *Converter) ConvertSearchResult(r payload.SearchResult) (domain.Suggestion, bool) {
	var (
		kind      domain.Kind
		name      string
		secondary string
		date      string
		img       *domain.Image
	)
	switch strings.ToLower(strings.TrimSpace(r.MediaType)) {
	case "movie":
		kind = domain.KindMovie
		name = firstNonEmpty(r.Title, r.OriginalTitle)
		secondary = strings.TrimSpace(r.OriginalTitle)
		date = r.ReleaseDate
		img = c.imageFromPath(r.PosterPath, RolePoster)
	case "tv":
		kind = domain.KindSeries
		name = firstNonEmpty(r.Name, r.OriginalName)
		secondary = strings.TrimSpace(r.OriginalName)
		date = r.FirstAirDate
		img = c.imageFromPath(r.PosterPath, RolePoster)
	case "person":
		kind = domain.KindPerson
		name = strings.TrimSpace(r.Name)
		secondary = departmentLabel(strings.TrimSpace(r.KnownForDepartment))
		img = c.imageFromPath(r.ProfilePath, RoleProfile)
	default:
		return domain.Suggestion{}, false
	}
	if kind != domain.KindPerson && secondary == name {
		secondary = ""
	}

	s := domain.Suggestion{
		ID:             r.ID,
		Name:           name,
		SecondaryLabel: secondary,
		Kind:           kind,
		Year:           yearFromDate(date),
	}
	if img != nil {
		s.Poster = img.PreviewURL
	}
	return s, true
}
