package formatter

import (
	"encoding/json"
	"testing"
)

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("json.Unmarshal 失败：%v\n%s", err, raw)
	}
	return v
}
