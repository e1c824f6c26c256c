package tmdb

// bestEffort 是允许降级的操作结果。
// cause 非空表示“失败后退化为零值”，与“确实为空”区分，只用于日志与指标，不暴露给调用方。
type bestEffort[T any] struct {
	value T
	cause error
}

func succeeded[T any](v T) bestEffort[T] { return bestEffort[T]{value: v} }

func degradedTo[T any](fallback T, op string, err error) bestEffort[T] {
	return bestEffort[T]{value: fallback, cause: &Error{Code: CodePartialDataUnavailable, Op: op, Err: err}}
}

func (r bestEffort[T]) degraded() bool { return r.cause != nil }

// settle 记录降级并返回值。
func (r bestEffort[T]) settle(c *Client, op string) T {
	if r.degraded() {
		c.metrics.RecordDegraded(op)
		c.log.Warn().Err(r.cause).Str("op", op).Msg("降级为空结果")
	}
	return r.value
}
