package formatter

import (
	"github.com/John-Robertt/tmdbnote/internal/domain"
)

// Presentation 是交给模板的扁平字段集合。
//
// 约束：
// - 字段集合对三种 Kind 完全相同；不适用的字段保持空值（""/0/[]），不会缺失
// - 所有数组字段都不为 nil
type Presentation struct {
	ID           int    `json:"id" yaml:"id"`
	Kind         string `json:"kind" yaml:"kind"`
	TypeLabel    string `json:"type" yaml:"type"`
	Name         string `json:"name" yaml:"name"`
	OriginalName string `json:"originalName" yaml:"originalName"`
	Year         int    `json:"year" yaml:"year"`
	Premiere     string `json:"premiere" yaml:"premiere"`
	Description  string `json:"description" yaml:"description"`
	Slogan       string `json:"slogan" yaml:"slogan"`
	ImdbID       string `json:"imdbId" yaml:"imdbId"`

	Rating          float64 `json:"rating" yaml:"rating"`
	Votes           int     `json:"votes" yaml:"votes"`
	RatingSecondary float64 `json:"ratingSecondary" yaml:"ratingSecondary"`
	VotesSecondary  int     `json:"votesSecondary" yaml:"votesSecondary"`

	Names          []string `json:"names" yaml:"names"`
	Genres         []string `json:"genres" yaml:"genres"`
	GenresLinks    []string `json:"genresLinks" yaml:"genresLinks"`
	Countries      []string `json:"countries" yaml:"countries"`
	CountriesLinks []string `json:"countriesLinks" yaml:"countriesLinks"`
	PosterURL      []string `json:"posterUrl" yaml:"posterUrl"`
	PosterPreview  []string `json:"posterPreviewUrl" yaml:"posterPreviewUrl"`
	CoverURL       []string `json:"coverUrl" yaml:"coverUrl"`
	LogoURL        []string `json:"logoUrl" yaml:"logoUrl"`
	Facts          []string `json:"facts" yaml:"facts"`

	// movie/series
	AgeRating         int      `json:"ageRating" yaml:"ageRating"`
	MovieLength       int      `json:"movieLength" yaml:"movieLength"`
	Status            string   `json:"status" yaml:"status"`
	EndYear           int      `json:"endYear" yaml:"endYear"`
	SeasonsCount      int      `json:"seasonsCount" yaml:"seasonsCount"`
	EpisodesPerSeason int      `json:"episodesPerSeason" yaml:"episodesPerSeason"`
	EpisodeLength     int      `json:"episodeLength" yaml:"episodeLength"`
	Directors         []string `json:"directors" yaml:"directors"`
	DirectorsNames    []string `json:"directorsNames" yaml:"directorsNames"`
	Actors            []string `json:"actors" yaml:"actors"`
	ActorsNames       []string `json:"actorsNames" yaml:"actorsNames"`
	Writers           []string `json:"writers" yaml:"writers"`
	WritersNames      []string `json:"writersNames" yaml:"writersNames"`
	Producers         []string `json:"producers" yaml:"producers"`
	ProducersNames    []string `json:"producersNames" yaml:"producersNames"`

	// person
	Sex                string   `json:"sex" yaml:"sex"`
	Birthday           string   `json:"birthday" yaml:"birthday"`
	Deathday           string   `json:"deathday" yaml:"deathday"`
	BirthPlace         string   `json:"birthPlace" yaml:"birthPlace"`
	DeathPlace         string   `json:"deathPlace" yaml:"deathPlace"`
	Biography          string   `json:"biography" yaml:"biography"`
	Homepage           string   `json:"homepage" yaml:"homepage"`
	KnownForDepartment string   `json:"knownForDepartment" yaml:"knownForDepartment"`
	Aliases            []string `json:"aliases" yaml:"aliases"`
	KnownFor           []string `json:"knownFor" yaml:"knownFor"`
}

// CreatePresentationRecord 把 Record 投影为 Presentation（纯函数）。
func CreatePresentationRecord(r domain.Record, paths domain.PathConfig) Presentation {
	p := Presentation{
		ID:           r.ID,
		Kind:         string(r.Kind),
		TypeLabel:    kindLabel(r.Kind),
		Name:         cleanText(r.DisplayName),
		OriginalName: cleanText(r.OriginalName),
		Year:         r.Year,
		Premiere:     isoDate(r.Premiere),
		Description:  collapseSpace(r.Description),
		Slogan:       cleanText(r.Slogan),
		ImdbID:       cleanText(r.ImdbID),

		Rating:          r.Rating.Primary,
		Votes:           r.Rating.PrimaryVotes,
		RatingSecondary: r.Rating.Secondary,
		VotesSecondary:  r.Rating.SecondaryVotes,

		Names:          FormatArray(ExtractEnglishNamesOnly(altNameStrings(r.AltNames)), ModeShort, "", MaxArrayLen),
		Genres:         FormatArray(r.Genres, ModeShort, "", MaxArrayLen),
		GenresLinks:    FormatArray(r.Genres, ModeLink, "", MaxArrayLen),
		Countries:      FormatArray(r.Countries, ModeShort, "", MaxArrayLen),
		CountriesLinks: FormatArray(r.Countries, ModeLink, "", MaxArrayLen),
		PosterURL:      FormatArray(imageURLs(r.Poster, false), ModeURL, "", MaxArrayLen),
		PosterPreview:  FormatArray(imageURLs(r.Poster, true), ModeURL, "", MaxArrayLen),
		CoverURL:       FormatArray(imageURLs(r.Backdrop, false), ModeURL, "", MaxArrayLen),
		LogoURL:        []string{},
		Facts:          FormatArray(r.Facts, ModeLong, "", MaxFacts),
	}

	fillMovieSeriesEmpty(&p)
	fillPersonEmpty(&p)

	switch d := r.Details.(type) {
	case *domain.MovieDetails:
		p.MovieLength = d.Runtime
		p.Status = cleanText(d.Status)
		fillPeople(&p, r, paths)
	case *domain.SeriesDetails:
		p.Status = cleanText(d.Status)
		p.EndYear = d.EndYear
		p.SeasonsCount, p.EpisodesPerSeason = seasonStats(d.Seasons)
		p.EpisodeLength = d.EpisodeLength
		p.LogoURL = FormatArray(imageURLs(d.Logo, false), ModeURL, "", MaxArrayLen)
		fillPeople(&p, r, paths)
	case *domain.PersonDetails:
		fillPerson(&p, r, d, paths.Titles)
	}
	return p
}

func fillMovieSeriesEmpty(p *Presentation) {
	p.Directors, p.DirectorsNames = []string{}, []string{}
	p.Actors, p.ActorsNames = []string{}, []string{}
	p.Writers, p.WritersNames = []string{}, []string{}
	p.Producers, p.ProducersNames = []string{}, []string{}
}

func fillPersonEmpty(p *Presentation) {
	p.Aliases = []string{}
	p.KnownFor = []string{}
}

// fillPeople 单次遍历 Persons，按转换阶段给出的职业编码分桶。
// 同一桶里同一 id 只保留一次（例如 Writer + Screenplay 两条记录）。
func fillPeople(p *Presentation, r domain.Record, paths domain.PathConfig) {
	p.AgeRating = r.AgeRating

	buckets := map[domain.Profession][]LinkEntry{}
	seen := map[domain.Profession]map[int]struct{}{}
	for _, person := range r.Persons {
		key := person.ProfessionKey
		if seen[key] == nil {
			seen[key] = map[int]struct{}{}
		}
		if _, ok := seen[key][person.ID]; ok && person.ID > 0 {
			continue
		}
		seen[key][person.ID] = struct{}{}
		buckets[key] = append(buckets[key], LinkEntry{ID: person.ID, Name: person.Name})
	}

	p.Directors, p.DirectorsNames = roleFields(buckets[domain.ProfessionDirector], paths.For(domain.ProfessionDirector))
	p.Actors, p.ActorsNames = roleFields(buckets[domain.ProfessionActor], paths.For(domain.ProfessionActor))
	p.Writers, p.WritersNames = roleFields(buckets[domain.ProfessionWriter], paths.For(domain.ProfessionWriter))
	p.Producers, p.ProducersNames = roleFields(buckets[domain.ProfessionProducer], paths.For(domain.ProfessionProducer))
}

func roleFields(entries []LinkEntry, folder string) (links, names []string) {
	plain := make([]string, 0, len(entries))
	for _, e := range entries {
		plain = append(plain, e.Name)
	}
	return FormatIDLinks(entries, folder, MaxArrayLen), FormatArray(plain, ModeShort, "", MaxArrayLen)
}

func fillPerson(p *Presentation, r domain.Record, d *domain.PersonDetails, titlesFolder string) {
	p.Sex = sexLabel(d.Gender)
	p.Birthday = isoDate(d.Birthday)
	p.Deathday = isoDate(d.Deathday)
	p.BirthPlace = cleanText(d.BirthPlace)
	p.DeathPlace = cleanText(d.DeathPlace)
	p.Biography = collapseSpace(d.Biography)
	p.Homepage = cleanURL(r.Homepage)
	p.KnownForDepartment = cleanText(departmentLabel(d.KnownForDepartment))

	primary := []string{r.Name, r.OriginalName}
	p.Aliases = FormatArray(CombineNamesForAliases(primary, d.AlsoKnownAs), ModeShort, "", MaxArrayLen)

	titles := make([]string, 0, len(d.KnownFor))
	for _, t := range d.KnownFor {
		titles = append(titles, t.Name)
	}
	p.KnownFor = FormatArray(titles, ModeLinkWithPath, titlesFolder, MaxArrayLen)
}

// seasonStats 返回季数与每季平均集数（向上取整；没有季时为 0）。
func seasonStats(seasons []domain.Season) (count, perSeason int) {
	count = len(seasons)
	if count == 0 {
		return 0, 0
	}
	total := 0
	for _, s := range seasons {
		total += s.EpisodeCount
	}
	return count, (total + count - 1) / count
}

func imageURLs(im *domain.Image, preview bool) []string {
	if im == nil {
		return []string{}
	}
	if preview {
		return []string{im.PreviewURL}
	}
	return []string{im.URL}
}

func altNameStrings(in []domain.AltName) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		out = append(out, a.Name)
	}
	return out
}

// URL 里的冒号不能去掉，只做 trim。
func cleanURL(s string) string {
	if v := FormatArray([]string{s}, ModeURL, "", 1); len(v) == 1 {
		return v[0]
	}
	return ""
}
