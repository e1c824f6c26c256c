package formatter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// 只允许拉丁字母与少量标点；任何非拉丁文字都会让整条名字被排除。
var latinNameRE = regexp.MustCompile(`^[A-Za-z\s\-'.,()]+$`)

// middleInitialRE 匹配 "A." 这种单字母中间名缩写。
var middleInitialRE = regexp.MustCompile(`^\p{Lu}\.$`)

// ExtractEnglishNamesOnly 保留纯拉丁名字，并折叠近似重复（保留首次出现的原始写法）。
func ExtractEnglishNamesOnly(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || !latinNameRE.MatchString(n) {
			continue
		}
		if similarToAny(n, out) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// AreSimilarNames 规范化后按大小写无关的子串包含判断。
//
// 已知局限：短名字会被误合并（"Lee" 包含于 "Bruce Lee"）。保持该行为，不要“修正”。
func AreSimilarNames(a, b string) bool {
	na, nb := normalizeName(a), normalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// CombineNamesForAliases 先放 primary（原样），再追加与已收集名字都不相似的 alternates。
//
// primary 之间只去掉规范化后完全相同的重复（没有本地化名时 name 与原名相同），
// 不做子串合并。
func CombineNamesForAliases(primary, alternates []string) []string {
	out := make([]string, 0, len(primary)+len(alternates))
	for _, n := range primary {
		n = strings.TrimSpace(n)
		if n == "" || sameNameAsAny(n, out) {
			continue
		}
		out = append(out, n)
	}
	for _, n := range alternates {
		n = strings.TrimSpace(n)
		if n == "" || similarToAny(n, out) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func sameNameAsAny(name string, kept []string) bool {
	nn := normalizeName(name)
	for _, k := range kept {
		if normalizeName(k) == nn {
			return true
		}
	}
	return false
}

func similarToAny(name string, kept []string) bool {
	for _, k := range kept {
		if AreSimilarNames(name, k) {
			return true
		}
	}
	return false
}

// normalizeName 折叠空白、去掉中间名缩写，并做大小写折叠。
func normalizeName(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if middleInitialRE.MatchString(f) {
			continue
		}
		kept = append(kept, f)
	}
	// cases.Caser 有状态，不能跨 goroutine 共享。
	return cases.Fold().String(strings.Join(kept, " "))
}

// localizedName 取第一个西里尔文字的别名；没有则返回 fallback。
func localizedName(aliases []string, fallback string) string {
	for _, a := range aliases {
		a = strings.TrimSpace(a)
		if a != "" && isCyrillic(a) {
			return a
		}
	}
	return strings.TrimSpace(fallback)
}

func isCyrillic(s string) bool {
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.Is(unicode.Cyrillic, r) {
			return false
		}
		letters++
	}
	return letters > 0
}
