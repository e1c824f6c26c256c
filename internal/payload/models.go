// Package payload 定义目录 API 的原始响应结构。
//
// 约束：
// - 这里只描述“上游长什么样”，不做任何业务判断
// - 可能缺失/为 null 的字段一律用零值承接，规范化由 formatter 负责
package payload

// Image 是 /images 接口里的单张图片。
type Image struct {
	FilePath    string `json:"file_path"`
	Language    string `json:"iso_639_1"` // null => ""
	VoteAverage Number `json:"vote_average"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Images 覆盖 movie/tv/person 三种图片集合；person 只有 profiles。
type Images struct {
	Posters   []Image `json:"posters"`
	Backdrops []Image `json:"backdrops"`
	Logos     []Image `json:"logos"`
	Profiles  []Image `json:"profiles"`
}

// TaggedImages 是人物被标记出现的剧照（分页结构）。
type TaggedImages struct {
	Results []Image `json:"results"`
}

// PersonImageSet 对应 /person/{id}?append_to_response=images,tagged_images。
type PersonImageSet struct {
	Images       Images       `json:"images"`
	TaggedImages TaggedImages `json:"tagged_images"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Country struct {
	ISO  string `json:"iso_3166_1"`
	Name string `json:"name"`
}

// AltTitle 是别名条目；movie 放在 titles，tv 放在 results。
type AltTitle struct {
	ISO   string `json:"iso_3166_1"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

type AltTitles struct {
	Titles  []AltTitle `json:"titles"`
	Results []AltTitle `json:"results"`
}

// All 合并两种容器字段，保持源顺序。
func (a AltTitles) All() []AltTitle {
	out := make([]AltTitle, 0, len(a.Titles)+len(a.Results))
	out = append(out, a.Titles...)
	out = append(out, a.Results...)
	return out
}

// ReleaseDates 是电影按地区的上映/分级信息（分级嵌套在 release_dates 里）。
type ReleaseDates struct {
	Results []struct {
		ISO          string `json:"iso_3166_1"`
		ReleaseDates []struct {
			Certification string `json:"certification"`
			ReleaseDate   string `json:"release_date"`
			Type          int    `json:"type"`
		} `json:"release_dates"`
	} `json:"results"`
}

// ContentRatings 是剧集按地区的分级（扁平结构）。
type ContentRatings struct {
	Results []struct {
		ISO    string `json:"iso_3166_1"`
		Rating string `json:"rating"`
	} `json:"results"`
}

type ExternalIDs struct {
	ImdbID      string `json:"imdb_id"`
	FacebookID  string `json:"facebook_id"`
	InstagramID string `json:"instagram_id"`
	TwitterID   string `json:"twitter_id"`
	WikidataID  string `json:"wikidata_id"`
}

// Fact 是条目附带的趣闻；Value 可能包含 HTML。
type Fact struct {
	Value   string `json:"value"`
	Type    string `json:"type"`
	Spoiler bool   `json:"spoiler"`
}

type MovieDetails struct {
	ID                  int       `json:"id"`
	Title               string    `json:"title"`
	OriginalTitle       string    `json:"original_title"`
	Overview            string    `json:"overview"`
	Tagline             string    `json:"tagline"`
	ReleaseDate         string    `json:"release_date"`
	Status              string    `json:"status"`
	Homepage            string    `json:"homepage"`
	Runtime             Number    `json:"runtime"`
	Budget              Number    `json:"budget"`
	Revenue             Number    `json:"revenue"`
	VoteAverage         Number    `json:"vote_average"`
	VoteCount           Number    `json:"vote_count"`
	Popularity          Number    `json:"popularity"`
	Genres              []Genre   `json:"genres"`
	ProductionCountries []Country `json:"production_countries"`
	PosterPath          string    `json:"poster_path"`
	BackdropPath        string    `json:"backdrop_path"`
	ImdbID              string    `json:"imdb_id"`

	ReleaseDates      ReleaseDates `json:"release_dates"`
	AlternativeTitles AltTitles    `json:"alternative_titles"`
	ExternalIDs       ExternalIDs  `json:"external_ids"`
	Facts             []Fact       `json:"facts"`
}

type Season struct {
	SeasonNumber Number `json:"season_number"`
	EpisodeCount Number `json:"episode_count"`
	AirDate      string `json:"air_date"`
	Name         string `json:"name"`
}

type SeriesDetails struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	OriginalName        string    `json:"original_name"`
	Overview            string    `json:"overview"`
	Tagline             string    `json:"tagline"`
	FirstAirDate        string    `json:"first_air_date"`
	LastAirDate         string    `json:"last_air_date"`
	Status              string    `json:"status"`
	Homepage            string    `json:"homepage"`
	InProduction        bool      `json:"in_production"`
	EpisodeRunTime      []Number  `json:"episode_run_time"`
	NumberOfSeasons     Number    `json:"number_of_seasons"`
	NumberOfEpisodes    Number    `json:"number_of_episodes"`
	VoteAverage         Number    `json:"vote_average"`
	VoteCount           Number    `json:"vote_count"`
	Popularity          Number    `json:"popularity"`
	Genres              []Genre   `json:"genres"`
	ProductionCountries []Country `json:"production_countries"`
	OriginCountry       []string  `json:"origin_country"`
	Seasons             []Season  `json:"seasons"`
	PosterPath          string    `json:"poster_path"`
	BackdropPath        string    `json:"backdrop_path"`

	ContentRatings    ContentRatings `json:"content_ratings"`
	AlternativeTitles AltTitles      `json:"alternative_titles"`
	ExternalIDs       ExternalIDs    `json:"external_ids"`
	Facts             []Fact         `json:"facts"`
}

type PersonDetails struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	AlsoKnownAs        []string `json:"also_known_as"`
	Biography          string   `json:"biography"`
	Birthday           string   `json:"birthday"`
	Deathday           string   `json:"deathday"`
	PlaceOfBirth       string   `json:"place_of_birth"`
	PlaceOfDeath       string   `json:"place_of_death"`
	Gender             Number   `json:"gender"`
	Homepage           string   `json:"homepage"`
	KnownForDepartment string   `json:"known_for_department"`
	Popularity         Number   `json:"popularity"`
	ProfilePath        string   `json:"profile_path"`
	ImdbID             string   `json:"imdb_id"`

	ExternalIDs ExternalIDs `json:"external_ids"`
	Facts       []Fact      `json:"facts"`
}

type CastCredit struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path"`
}

type CrewCredit struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	ProfilePath string `json:"profile_path"`
}

// Credits 对应 movie/tv 的 /credits。
type Credits struct {
	Cast []CastCredit `json:"cast"`
	Crew []CrewCredit `json:"crew"`
}

// TitleCredit 是人物作品履历中的一条（movie 或 tv，由 MediaType 区分）。
type TitleCredit struct {
	ID            int    `json:"id"`
	MediaType     string `json:"media_type"`
	Title         string `json:"title"`
	Name          string `json:"name"`
	OriginalTitle string `json:"original_title"`
	OriginalName  string `json:"original_name"`
	ReleaseDate   string `json:"release_date"`
	FirstAirDate  string `json:"first_air_date"`
	Popularity    Number `json:"popularity"`
	VoteAverage   Number `json:"vote_average"`
	VoteCount     Number `json:"vote_count"`
	PosterPath    string `json:"poster_path"`
	Character     string `json:"character"`
	Job           string `json:"job"`
	Department    string `json:"department"`
}

// CombinedCredits 对应 /person/{id}/combined_credits。
type CombinedCredits struct {
	Cast []TitleCredit `json:"cast"`
	Crew []TitleCredit `json:"crew"`
}

// SearchResult 是 /search/multi 的单条结果。
type SearchResult struct {
	ID                 int    `json:"id"`
	MediaType          string `json:"media_type"`
	Title              string `json:"title"`
	Name               string `json:"name"`
	OriginalTitle      string `json:"original_title"`
	OriginalName       string `json:"original_name"`
	ReleaseDate        string `json:"release_date"`
	FirstAirDate       string `json:"first_air_date"`
	Popularity         Number `json:"popularity"`
	PosterPath         string `json:"poster_path"`
	ProfilePath        string `json:"profile_path"`
	KnownForDepartment string `json:"known_for_department"`
}

type SearchPage struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}
