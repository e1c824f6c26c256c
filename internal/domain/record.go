package domain

import "fmt"

// Kind 区分三类条目。
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
	KindPerson Kind = "person"
)

// ParseKind 接受 CLI/上游常见写法（tv 等同 series）。
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "movie":
		return KindMovie, true
	case "series", "tv":
		return KindSeries, true
	case "person":
		return KindPerson, true
	default:
		return "", false
	}
}

// Profession 是角色分类后的稳定编码。
type Profession string

const (
	ProfessionActor    Profession = "actor"
	ProfessionDirector Profession = "director"
	ProfessionWriter   Profession = "writer"
	ProfessionProducer Profession = "producer"
)

// Image 是选定的一张图：原图 + 预览图。
type Image struct {
	URL        string `json:"url"`
	PreviewURL string `json:"previewUrl,omitempty"`
	Language   string `json:"language,omitempty"`
}

// Person 是条目的演职人员（只对 movie/series 填充）。
type Person struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Profession    string     `json:"profession"` // 本地化职业名
	ProfessionKey Profession `json:"professionKey"`
	Photo         string     `json:"photo,omitempty"`
}

type AltName struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Ratings 保存两个来源的评分与票数；person 的 Primary 承载 popularity。
type Ratings struct {
	Primary        float64 `json:"primary"`
	Secondary      float64 `json:"secondary"`
	PrimaryVotes   int     `json:"primaryVotes"`
	SecondaryVotes int     `json:"secondaryVotes"`
}

// Core 是三类条目共享的字段。
//
// 约束：所有切片字段在转换后都不为 nil（空也是 []T{}），下游投影不需要判空。
type Core struct {
	ID           int    `json:"id"`
	Kind         Kind   `json:"kind"`
	Name         string `json:"name"`
	OriginalName string `json:"originalName"`
	DisplayName  string `json:"displayName"`

	Year     int    `json:"year"`
	Premiere string `json:"premiere"` // ISO 日期（YYYY-MM-DD），未知为空

	Description string    `json:"description"`
	Slogan      string    `json:"slogan"`
	Genres      []string  `json:"genres"`
	Countries   []string  `json:"countries"`
	AltNames    []AltName `json:"altNames"`

	Poster   *Image `json:"poster,omitempty"`
	Backdrop *Image `json:"backdrop,omitempty"`

	Persons   []Person `json:"persons"`
	Rating    Ratings  `json:"rating"`
	AgeRating int      `json:"ageRating"`
	Facts     []string `json:"facts"`

	ImdbID   string `json:"imdbId"`
	Homepage string `json:"homepage"`
}

// Details 是按 Kind 区分的扩展字段（封闭接口，只有本包三个实现）。
type Details interface {
	Kind() Kind
	sealed()
}

type MovieDetails struct {
	Runtime int    `json:"runtime"`
	Status  string `json:"status"`
	Budget  int64  `json:"budget"`
	Revenue int64  `json:"revenue"`
}

type Season struct {
	Number       int `json:"number"`
	EpisodeCount int `json:"episodeCount"`
}

type SeriesDetails struct {
	EndYear       int      `json:"endYear"` // 0 表示未完结或未知
	Seasons       []Season `json:"seasons"`
	Status        string   `json:"status"`
	EpisodeLength int      `json:"episodeLength"`
	Logo          *Image   `json:"logo,omitempty"`
}

// RelatedTitle 是人物代表作的紧凑表示。
type RelatedTitle struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"originalName"`
	Kind         Kind    `json:"kind"`
	Poster       *Image  `json:"poster,omitempty"`
	Rating       float64 `json:"rating"`
	Year         int     `json:"year"`
}

type ExternalIDs struct {
	Imdb      string `json:"imdb"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Wikidata  string `json:"wikidata"`
}

type PersonDetails struct {
	Birthday           string         `json:"birthday"`
	Deathday           string         `json:"deathday"`
	BirthPlace         string         `json:"birthPlace"`
	DeathPlace         string         `json:"deathPlace"`
	Gender             int            `json:"gender"` // 0 未知 / 1 女 / 2 男 / 3 其他
	AlsoKnownAs        []string       `json:"alsoKnownAs"`
	KnownFor           []RelatedTitle `json:"knownFor"`
	KnownForDepartment string         `json:"knownForDepartment"`
	Biography          string         `json:"biography"`
	ExternalIDs        ExternalIDs    `json:"externalIds"`
}

func (*MovieDetails) Kind() Kind  { return KindMovie }
func (*SeriesDetails) Kind() Kind { return KindSeries }
func (*PersonDetails) Kind() Kind { return KindPerson }

func (*MovieDetails) sealed()  {}
func (*SeriesDetails) sealed() {}
func (*PersonDetails) sealed() {}

// Record 是规范化后的条目：共享 Core + 按类型的 Details。
// 构造后不再修改；只通过 NewRecord 创建以保证 Kind 与 Details 一致。
type Record struct {
	Core
	Details Details `json:"details"`
}

// NewRecord 把 Core.Kind 对齐到 Details 的类型。
func NewRecord(core Core, d Details) (Record, error) {
	if d == nil {
		return Record{}, fmt.Errorf("details 不能为空")
	}
	if core.Kind != "" && core.Kind != d.Kind() {
		return Record{}, fmt.Errorf("kind 不一致：core=%q details=%q", core.Kind, d.Kind())
	}
	core.Kind = d.Kind()
	return Record{Core: core, Details: d}, nil
}

// Movie/Series/Person 返回对应扩展；类型不符时 ok=false。
func (r Record) Movie() (*MovieDetails, bool) {
	d, ok := r.Details.(*MovieDetails)
	return d, ok
}

func (r Record) Series() (*SeriesDetails, bool) {
	d, ok := r.Details.(*SeriesDetails)
	return d, ok
}

func (r Record) Person() (*PersonDetails, bool) {
	d, ok := r.Details.(*PersonDetails)
	return d, ok
}
