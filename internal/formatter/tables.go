package formatter

import "github.com/John-Robertt/tmdbnote/internal/domain"

// 这里的查找表都是只读的：用 switch 表达，不存在可被改写的全局 map。

const (
	// TargetLanguage 是固定的目标语言（图片优先级、人物本地化名都以它为准）。
	TargetLanguage = "ru"
	// FallbackLanguage 是目标语言缺失时的次优先级。
	FallbackLanguage = "en"
)

// professionForJob 只做精确匹配；部门兜底在调用方处理。
func professionForJob(job string) (domain.Profession, bool) {
	switch job {
	case "Director":
		return domain.ProfessionDirector, true
	case "Writer", "Screenplay":
		return domain.ProfessionWriter, true
	case "Producer", "Executive Producer":
		return domain.ProfessionProducer, true
	default:
		return "", false
	}
}

func professionLabel(p domain.Profession) string {
	switch p {
	case domain.ProfessionActor:
		return "актер"
	case domain.ProfessionDirector:
		return "режиссер"
	case domain.ProfessionWriter:
		return "сценарист"
	case domain.ProfessionProducer:
		return "продюсер"
	default:
		return ""
	}
}

// movieCertificationAge 对应美国电影分级。
func movieCertificationAge(cert string) int {
	switch cert {
	case "G":
		return 0
	case "PG":
		return 6
	case "PG-13":
		return 13
	case "R":
		return 17
	case "NC-17":
		return 18
	default:
		return 0
	}
}

// tvRatingAge 对应美国电视分级。
func tvRatingAge(rating string) int {
	switch rating {
	case "TV-Y", "TV-G":
		return 0
	case "TV-Y7":
		return 7
	case "TV-PG":
		return 10
	case "TV-14":
		return 14
	case "TV-MA":
		return 17
	default:
		return 0
	}
}

func kindLabel(k domain.Kind) string {
	switch k {
	case domain.KindMovie:
		return "Фильм"
	case domain.KindSeries:
		return "Сериал"
	case domain.KindPerson:
		return "Персона"
	default:
		return ""
	}
}

// sexLabel 只区分三种情况：女 / 男 / 其他（含未知）。
func sexLabel(gender int) string {
	switch gender {
	case 1:
		return "Женский"
	case 2:
		return "Мужской"
	default:
		return ""
	}
}

func departmentLabel(dep string) string {
	switch dep {
	case "Acting":
		return "Актер"
	case "Directing":
		return "Режиссер"
	case "Writing":
		return "Сценарист"
	case "Production":
		return "Продюсер"
	case "Sound":
		return "Звук"
	case "Camera":
		return "Оператор"
	case "Editing":
		return "Монтаж"
	default:
		return dep
	}
}

// htmlEntity 是允许解码的命名实体；不在表里的实体引用直接丢弃。
func htmlEntity(ref string) (string, bool) {
	switch ref {
	case "&nbsp;":
		return " ", true
	case "&amp;":
		return "&", true
	case "&quot;":
		return `"`, true
	case "&#39;", "&apos;":
		return "'", true
	case "&laquo;":
		return "«", true
	case "&raquo;":
		return "»", true
	case "&lt;":
		return "<", true
	case "&gt;":
		return ">", true
	case "&mdash;":
		return "—", true
	case "&ndash;":
		return "–", true
	default:
		return "", false
	}
}
