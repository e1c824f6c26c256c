package domain

// ImageBuckets 是按用途分桶的图片列表（图片浏览 UI 使用）。
//
// 约束：三个桶都不为 nil；获取失败时全部为空，而不是返回错误。
type ImageBuckets struct {
	Posters   []Image `json:"posters"`
	Backdrops []Image `json:"backdrops"`
	Logos     []Image `json:"logos"`
}

// EmptyImageBuckets 返回三个空桶。
func EmptyImageBuckets() ImageBuckets {
	return ImageBuckets{Posters: []Image{}, Backdrops: []Image{}, Logos: []Image{}}
}

// Len 是三个桶的总数。
func (b ImageBuckets) Len() int { return len(b.Posters) + len(b.Backdrops) + len(b.Logos) }
