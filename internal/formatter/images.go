package formatter

import (
	"strings"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/payload"
)

// ImageRole 决定预览图尺寸。
type ImageRole string

const (
	RolePoster   ImageRole = "poster"
	RoleBackdrop ImageRole = "backdrop"
	RoleLogo     ImageRole = "logo"
	RoleProfile  ImageRole = "profile"
)

const (
	// DefaultImageURLPattern 中的 {size}/{path} 会被替换。
	DefaultImageURLPattern = "https://image.tmdb.org/t/p/{size}{path}"

	fullSize = "original"
)

func (r ImageRole) previewSize() string {
	switch r {
	case RoleBackdrop:
		return "w780"
	case RoleLogo:
		return "w300"
	case RoleProfile:
		return "w185"
	default:
		return "w500"
	}
}

// BuildImageURL 把 size 与 path 代入 pattern；path 为空时返回空串。
// 已经是绝对 URL 的 path 原样返回。
func BuildImageURL(pattern, size, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if pattern == "" {
		pattern = DefaultImageURLPattern
	}
	return strings.NewReplacer("{size}", size, "{path}", path).Replace(pattern)
}

// ExtractBestImage 按语言优先级选出一张图：目标语言 > en > 源顺序第一张。
//
// 规则：
// - 与数组顺序无关：只要存在目标语言的条目，就一定选它
// - file_path 为空的条目不参与挑选
// - 无可选条目返回 nil，由调用方回退到详情里的直接路径或省略该字段
func (c *Converter) ExtractBestImage(images []payload.Image, role ImageRole) *domain.Image {
	var first, fallback, target *payload.Image
	for i := range images {
		im := &images[i]
		if strings.TrimSpace(im.FilePath) == "" {
			continue
		}
		if first == nil {
			first = im
		}
		lang := strings.ToLower(strings.TrimSpace(im.Language))
		if target == nil && lang == c.language {
			target = im
			break
		}
		if fallback == nil && lang == FallbackLanguage {
			fallback = im
		}
	}

	picked := target
	if picked == nil {
		picked = fallback
	}
	if picked == nil {
		picked = first
	}
	if picked == nil {
		return nil
	}
	return c.image(picked.FilePath, picked.Language, role)
}

// imageFromPath 是详情里直接给出的图片路径（无语言信息）。
func (c *Converter) imageFromPath(path string, role ImageRole) *domain.Image {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	return c.image(path, "", role)
}

func (c *Converter) image(path, lang string, role ImageRole) *domain.Image {
	u := BuildImageURL(c.imagePattern, fullSize, path)
	if u == "" {
		return nil
	}
	return &domain.Image{
		URL:        u,
		PreviewURL: BuildImageURL(c.imagePattern, role.previewSize(), path),
		Language:   strings.TrimSpace(lang),
	}
}

// ImageEntries 把整组图片转换为 URL 列表（保持源顺序，过滤空 URL）。
func (c *Converter) ImageEntries(images []payload.Image, role ImageRole) []domain.Image {
	out := make([]domain.Image, 0, len(images))
	for i := range images {
		im := c.image(images[i].FilePath, images[i].Language, role)
		if im == nil || strings.TrimSpace(im.URL) == "" {
			continue
		}
		out = append(out, *im)
	}
	return out
}
