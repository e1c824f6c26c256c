package domain

// PathConfig 是每种角色对应的笔记目录（用于生成带路径的交叉引用）。
// 空字符串表示不加目录前缀。
type PathConfig struct {
	Actor    string `json:"actor"`
	Director string `json:"director"`
	Writer   string `json:"writer"`
	Producer string `json:"producer"`
	// Titles 是作品笔记所在目录（人物的 knownFor 引用使用）。
	Titles string `json:"titles"`
}

// For 返回某个职业对应的目录。
func (p PathConfig) For(prof Profession) string {
	switch prof {
	case ProfessionActor:
		return p.Actor
	case ProfessionDirector:
		return p.Director
	case ProfessionWriter:
		return p.Writer
	case ProfessionProducer:
		return p.Producer
	default:
		return ""
	}
}
