package tmdb

import (
	"errors"
	"fmt"
)

const (
	// CodeInvalidInput 表示 token/query/id 形状不合法；不会发出任何请求。
	CodeInvalidInput = "invalid_input"
	// CodeNotFound 表示搜索排序截断后没有任何结果。
	CodeNotFound = "not_found"
	// CodeUpstreamFailure 表示传输失败或非 2xx。
	CodeUpstreamFailure = "upstream_failure"
	// CodePartialDataUnavailable 只在 best-effort 路径内部使用（记录日志/指标），不会返回给调用方。
	CodePartialDataUnavailable = "partial_data_unavailable"
)

// Error 是目录客户端的结构化错误（带 error_code）。
type Error struct {
	Code string
	Op   string // "search" / "get_record" / ...
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeInvalidInput:
		return fmt.Sprintf("%s：%s 参数不合法：%v", e.Code, e.Op, e.Err)
	case CodeNotFound:
		return fmt.Sprintf("%s：%s 没有结果", e.Code, e.Op)
	case CodeUpstreamFailure:
		// 底层错误可能包含完整 URL，这里只给稳定文案；细节通过 Unwrap 获取。
		return fmt.Sprintf("%s：%s 请求目录服务失败", e.Code, e.Op)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%s：%v", e.Code, e.Op, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HTTPStatusError 表示目录服务返回了非 2xx。
type HTTPStatusError struct {
	URL        string // 不含查询参数
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, e.URL)
}

// StatusCode 返回链路中 HTTPStatusError 的状态码；没有则返回 0。
func StatusCode(err error) int {
	var he *HTTPStatusError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

func invalidInput(op, format string, args ...any) error {
	return &Error{Code: CodeInvalidInput, Op: op, Err: fmt.Errorf(format, args...)}
}

func upstreamFailure(op string, err error) error {
	return &Error{Code: CodeUpstreamFailure, Op: op, Err: err}
}
