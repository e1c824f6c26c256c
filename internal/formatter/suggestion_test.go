package formatter

import (
	"testing"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/payload"
)

func TestConvertSearchResult(t *testing.T) {
	c := NewConverter()

	s, ok := c.ConvertSearchResult(payload.SearchResult{ID: 603, MediaType: "movie", Title: "Матрица", OriginalTitle: "The Matrix", ReleaseDate: "1999-03-30", PosterPath: "/m.jpg"})
	if !ok || s.Kind != domain.KindMovie || s.Name != "Матрица" || s.SecondaryLabel != "The Matrix" || s.Year != 1999 {
		t.Fatalf("movie 建议不正确：%+v", s)
	}
	if s.Poster != "https://image.tmdb.org/t/p/w500/m.jpg" {
		t.Fatalf("poster 不正确：%q", s.Poster)
	}

	s, ok = c.ConvertSearchResult(payload.SearchResult{ID: 1, MediaType: "tv", Name: "Dark", OriginalName: "Dark", FirstAirDate: "2017-12-01"})
	if !ok || s.Kind != domain.KindSeries || s.SecondaryLabel != "" || s.Year != 2017 || s.Poster != "" {
		t.Fatalf("tv 建议不正确：%+v", s)
	}

	s, ok = c.ConvertSearchResult(payload.SearchResult{ID: 6384, MediaType: "person", Name: "Keanu Reeves", KnownForDepartment: "Acting", ProfilePath: "/k.jpg"})
	if !ok || s.Kind != domain.KindPerson || s.SecondaryLabel != "Актер" || s.Poster != "https://image.tmdb.org/t/p/w185/k.jpg" {
		t.Fatalf("person 建议不正确：%+v", s)
	}

	if _, ok := c.ConvertSearchResult(payload.SearchResult{ID: 9, MediaType: "collection"}); ok {
		t.Fatalf("未知 media_type 应被跳过")
	}
}
