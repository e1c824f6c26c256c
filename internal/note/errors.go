package note

import "errors"

var errNoFrontmatter = errors.New("缺少 frontmatter")
