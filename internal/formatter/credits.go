package formatter

import (
	"strings"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/payload"
)

// MaxCast 是转换阶段保留的演员上限（按源顺序取前 N 个）。
const MaxCast = 20

// ConvertCreditsToPersons 把 cast + crew 归类为演职人员列表。
//
// 优先级（固定，不要调整）：
// 1) cast 一律是 actor（只取前 MaxCast 个）
// 2) crew 先按 job 精确匹配
// 3) 匹配不到时，department == "Writing" 归为 writer
// 4) 其余直接丢弃
//
// 注意：不在 Writing 部门、job 又不在表里的编剧会被丢掉；这是有意的取舍。
func (c *Converter) ConvertCreditsToPersons(credits payload.Credits) []domain.Person {
	cast := credits.Cast
	if len(cast) > MaxCast {
		cast = cast[:MaxCast]
	}

	out := make([]domain.Person, 0, len(cast)+len(credits.Crew))
	for _, m := range cast {
		out = append(out, c.person(m.ID, m.Name, m.ProfilePath, domain.ProfessionActor))
	}

	for _, m := range credits.Crew {
		p, ok := classifyCrew(m.Job, m.Department)
		if !ok {
			continue
		}
		out = append(out, c.person(m.ID, m.Name, m.ProfilePath, p))
	}
	return out
}

func classifyCrew(job, department string) (domain.Profession, bool) {
	if p, ok := professionForJob(strings.TrimSpace(job)); ok {
		return p, true
	}
	if strings.TrimSpace(department) == "Writing" {
		return domain.ProfessionWriter, true
	}
	return "", false
}

func (c *Converter) person(id int, name, profilePath string, p domain.Profession) domain.Person {
	photo := ""
	if im := c.imageFromPath(profilePath, RoleProfile); im != nil {
		photo = im.PreviewURL
	}
	return domain.Person{
		ID:            id,
		Name:          strings.TrimSpace(name),
		Profession:    professionLabel(p),
		ProfessionKey: p,
		Photo:         photo,
	}
}
