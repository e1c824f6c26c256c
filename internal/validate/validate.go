// Package validate 提供调用网络前的纯谓词检查。
//
// 约束：这些函数只回答“形状是否合法”，不做修正也不发请求；
// 调用方在失败时应立即返回 invalid_input，而不是静默修正输入。
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// MinTokenLen 对应 v3 API key（32 位 hex）；v4 读令牌是更长的 JWT。
	MinTokenLen = 32
	MaxTokenLen = 1024

	// MaxQueryLen 按 rune 计数（validator 的 max 对字符串按 rune 计数）。
	MaxQueryLen = 200
)

// JWT 三段与 v3 key 都只用 base64url 字符与 '.'。
var tokenRE = regexp.MustCompile(`^[A-Za-z0-9_\-.]+$`)

const tokenCharsTag = "tokenchars"

var (
	tokenRule = "required,min=" + strconv.Itoa(MinTokenLen) + ",max=" + strconv.Itoa(MaxTokenLen) + "," + tokenCharsTag
	queryRule = "required,max=" + strconv.Itoa(MaxQueryLen)
	idRule    = "gt=0"
)

// Validate 可并发使用；自定义规则只在这里注册一次。
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(tokenCharsTag, func(fl validator.FieldLevel) bool {
		return tokenRE.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsValidToken 检查凭据形状：非空、长度在范围内、字符集合法。
// 首尾带空白的输入视为无效（调用方应先做自己的 Trim，而不是依赖这里放行）。
func IsValidToken(token string) bool {
	return Validate.Var(token, tokenRule) == nil
}

// IsValidSearchQuery 检查去空白后非空且不超过 MaxQueryLen 个字符。
func IsValidSearchQuery(query string) bool {
	return Validate.Var(strings.TrimSpace(query), queryRule) == nil
}

// IsValidMovieID 检查条目 id 为正整数（对 movie/series/person 通用）。
func IsValidMovieID(id int) bool {
	return Validate.Var(id, idRule) == nil
}
