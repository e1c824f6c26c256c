package formatter

import (
	"strings"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/payload"
)

// ConvertMovie 把电影的 details/credits/images 合并为 Record。
func (c *Converter) ConvertMovie(d payload.MovieDetails, credits payload.Credits, images payload.Images) domain.Record {
	name := strings.TrimSpace(d.Title)
	original := strings.TrimSpace(d.OriginalTitle)

	core := domain.Core{
		ID:           d.ID,
		Name:         name,
		OriginalName: original,
		DisplayName:  firstNonEmpty(name, original),
		Year:         yearFromDate(d.ReleaseDate),
		Premiere:     isoDate(d.ReleaseDate),
		Description:  strings.TrimSpace(d.Overview),
		Slogan:       strings.TrimSpace(d.Tagline),
		Genres:       genreNames(d.Genres),
		Countries:    countryNames(d.ProductionCountries, nil),
		AltNames:     altNames(d.AlternativeTitles),
		Poster:       c.bestOrPath(images.Posters, d.PosterPath, RolePoster),
		Backdrop:     c.bestOrPath(images.Backdrops, d.BackdropPath, RoleBackdrop),
		Persons:      c.ConvertCreditsToPersons(credits),
		Rating: domain.Ratings{
			Primary:      d.VoteAverage.Float(),
			PrimaryVotes: d.VoteCount.Int(),
		},
		AgeRating: AgeRatingFromReleaseDates(d.ReleaseDates),
		Facts:     FilterFacts(d.Facts),
		ImdbID:    firstNonEmpty(d.ImdbID, d.ExternalIDs.ImdbID),
		Homepage:  strings.TrimSpace(d.Homepage),
	}

	return mustRecord(core, &domain.MovieDetails{
		Runtime: d.Runtime.Int(),
		Status:  strings.TrimSpace(d.Status),
		Budget:  int64(d.Budget.Float()),
		Revenue: int64(d.Revenue.Float()),
	})
}

// ConvertSeries 把剧集的 details/credits/images 合并为 Record。
func (c *Converter) ConvertSeries(d payload.SeriesDetails, credits payload.Credits, images payload.Images) domain.Record {
	name := strings.TrimSpace(d.Name)
	original := strings.TrimSpace(d.OriginalName)

	core := domain.Core{
		ID:           d.ID,
		Name:         name,
		OriginalName: original,
		DisplayName:  firstNonEmpty(name, original),
		Year:         yearFromDate(d.FirstAirDate),
		Premiere:     isoDate(d.FirstAirDate),
		Description:  strings.TrimSpace(d.Overview),
		Slogan:       strings.TrimSpace(d.Tagline),
		Genres:       genreNames(d.Genres),
		Countries:    countryNames(d.ProductionCountries, d.OriginCountry),
		AltNames:     altNames(d.AlternativeTitles),
		Poster:       c.bestOrPath(images.Posters, d.PosterPath, RolePoster),
		Backdrop:     c.bestOrPath(images.Backdrops, d.BackdropPath, RoleBackdrop),
		Persons:      c.ConvertCreditsToPersons(credits),
		Rating: domain.Ratings{
			Primary:      d.VoteAverage.Float(),
			PrimaryVotes: d.VoteCount.Int(),
		},
		AgeRating: AgeRatingFromContentRatings(d.ContentRatings),
		Facts:     FilterFacts(d.Facts),
		ImdbID:    strings.TrimSpace(d.ExternalIDs.ImdbID),
		Homepage:  strings.TrimSpace(d.Homepage),
	}

	return mustRecord(core, &domain.SeriesDetails{
		EndYear:       seriesEndYear(d),
		Seasons:       seasons(d.Seasons),
		Status:        strings.TrimSpace(d.Status),
		EpisodeLength: firstPositive(d.EpisodeRunTime),
		// logo 没有详情里的直接路径可回退：没有就省略。
		Logo: c.ExtractBestImage(images.Logos, RoleLogo),
	})
}

// ConvertPerson 把人物的 details/combined_credits/images 合并为 Record。
// Persons 对人物恒为空；Rating.Primary 承载 popularity。
func (c *Converter) ConvertPerson(d payload.PersonDetails, credits payload.CombinedCredits, images payload.Images) domain.Record {
	aka := trimAll(d.AlsoKnownAs)
	name := localizedName(aka, d.Name)
	original := strings.TrimSpace(d.Name)

	alt := make([]domain.AltName, 0, len(aka))
	for _, a := range aka {
		alt = append(alt, domain.AltName{Name: a, Type: "aka"})
	}

	core := domain.Core{
		ID:           d.ID,
		Name:         name,
		OriginalName: original,
		DisplayName:  firstNonEmpty(name, original),
		Year:         yearFromDate(d.Birthday),
		Description:  strings.TrimSpace(d.Biography),
		Genres:       []string{},
		Countries:    []string{},
		AltNames:     alt,
		Poster:       c.bestOrPath(images.Profiles, d.ProfilePath, RoleProfile),
		Persons:      []domain.Person{},
		Rating:       domain.Ratings{Primary: d.Popularity.Float()},
		Facts:        FilterFacts(d.Facts),
		ImdbID:       firstNonEmpty(d.ImdbID, d.ExternalIDs.ImdbID),
		Homepage:     strings.TrimSpace(d.Homepage),
	}

	return mustRecord(core, &domain.PersonDetails{
		Birthday:           isoDate(d.Birthday),
		Deathday:           isoDate(d.Deathday),
		BirthPlace:         strings.TrimSpace(d.PlaceOfBirth),
		DeathPlace:         strings.TrimSpace(d.PlaceOfDeath),
		Gender:             d.Gender.Int(),
		AlsoKnownAs:        aka,
		KnownFor:           c.ExtractKnownForTitles(credits),
		KnownForDepartment: strings.TrimSpace(d.KnownForDepartment),
		Biography:          strings.TrimSpace(d.Biography),
		ExternalIDs: domain.ExternalIDs{
			Imdb:      firstNonEmpty(d.ExternalIDs.ImdbID, d.ImdbID),
			Facebook:  strings.TrimSpace(d.ExternalIDs.FacebookID),
			Instagram: strings.TrimSpace(d.ExternalIDs.InstagramID),
			Twitter:   strings.TrimSpace(d.ExternalIDs.TwitterID),
			Wikidata:  strings.TrimSpace(d.ExternalIDs.WikidataID),
		},
	})
}

// mustRecord 只会因为本包内部写错 Kind 而失败，属于编程错误。
func mustRecord(core domain.Core, d domain.Details) domain.Record {
	r, err := domain.NewRecord(core, d)
	if err != nil {
		panic(err)
	}
	return r
}

func (c *Converter) bestOrPath(images []payload.Image, path string, role ImageRole) *domain.Image {
	if im := c.ExtractBestImage(images, role); im != nil {
		return im
	}
	return c.imageFromPath(path, role)
}

func genreNames(in []payload.Genre) []string {
	out := make([]string, 0, len(in))
	for _, g := range in {
		if n := strings.TrimSpace(g.Name); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// countryNames 优先用完整国名；没有时退回 ISO 代码列表。
func countryNames(countries []payload.Country, codes []string) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		if n := firstNonEmpty(c.Name, c.ISO); n != "" {
			out = append(out, n)
		}
	}
	if len(out) > 0 {
		return out
	}
	return trimAll(codes)
}

func altNames(a payload.AltTitles) []domain.AltName {
	all := a.All()
	out := make([]domain.AltName, 0, len(all))
	for _, t := range all {
		n := strings.TrimSpace(t.Title)
		if n == "" {
			continue
		}
		out = append(out, domain.AltName{Name: n, Type: strings.TrimSpace(t.Type)})
	}
	return out
}

// seasons 不包含特别篇（season 0）。
func seasons(in []payload.Season) []domain.Season {
	out := make([]domain.Season, 0, len(in))
	for _, s := range in {
		num := s.SeasonNumber.Int()
		if num <= 0 {
			continue
		}
		ep := s.EpisodeCount.Int()
		if ep < 0 {
			ep = 0
		}
		out = append(out, domain.Season{Number: num, EpisodeCount: ep})
	}
	return out
}

// seriesEndYear 只有在剧集已停止制作时才有意义；仍在播出返回 0。
func seriesEndYear(d payload.SeriesDetails) int {
	if d.InProduction {
		return 0
	}
	switch strings.TrimSpace(d.Status) {
	case "Ended", "Canceled", "Cancelled":
		return yearFromDate(d.LastAirDate)
	default:
		return 0
	}
}

func firstPositive(in []payload.Number) int {
	for _, v := range in {
		if n := v.Int(); n > 0 {
			return n
		}
	}
	return 0
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
