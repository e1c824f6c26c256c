package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validToken = "abcdefghijklmnopqrstuvwxyz0123456789"

func TestLoadEffective_DefaultsWithoutFile(t *testing.T) {
	cwd := t.TempDir()

	eff, err := LoadEffective(cwd, CLIArgs{})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if eff.Source != "" {
		t.Fatalf("没有配置文件时 Source 应为空，实际=%q", eff.Source)
	}
	if eff.BaseURL != DefaultBaseURL || eff.Language != DefaultLanguage || eff.ImageLanguage != DefaultImageLanguage {
		t.Fatalf("默认值不正确：%+v", eff)
	}
	if eff.ImageURLPattern != "https://image.tmdb.org/t/p/{size}{path}" {
		t.Fatalf("图片模板不正确：%q", eff.ImageURLPattern)
	}
	if eff.Timeout != 20*time.Second || eff.LogLevel != "info" {
		t.Fatalf("默认超时/日志级别不正确：%v %q", eff.Timeout, eff.LogLevel)
	}
	if Code(eff.RequireToken()) != ErrCodeMissingToken {
		t.Fatalf("没有 token 时应返回 %q", ErrCodeMissingToken)
	}
}

func TestLoadEffective_FileThenEnvThenCLI(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, DefaultFileName), []byte(`
token: "  file-token-0123456789abcdefghijklmnop  "
log_level: debug
timeout_sec: 5
paths:
  actor: People/Actors
  director: People/Directors
  titles: Library/Titles
`))

	eff, err := LoadEffective(cwd, CLIArgs{})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if eff.Token != "file-token-0123456789abcdefghijklmnop" {
		t.Fatalf("token 应来自文件并去空白：%q", eff.Token)
	}
	if eff.LogLevel != "debug" || eff.Timeout != 5*time.Second {
		t.Fatalf("文件值未生效：%+v", eff)
	}
	if eff.Paths.Actor != "People/Actors" || eff.Paths.Director != "People/Directors" || eff.Paths.Titles != "Library/Titles" {
		t.Fatalf("paths 未生效：%+v", eff.Paths)
	}
	if eff.Source != filepath.Join(cwd, DefaultFileName) {
		t.Fatalf("Source 不正确：%q", eff.Source)
	}

	// env 覆盖文件。
	t.Setenv("TMDBNOTE_TOKEN", validToken)
	t.Setenv("TMDBNOTE_PATHS__ACTOR", "Actors")
	t.Setenv("TMDBNOTE_TIMEOUT_SEC", "7")
	eff, err = LoadEffective(cwd, CLIArgs{})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if eff.Token != validToken || eff.Paths.Actor != "Actors" || eff.Timeout != 7*time.Second {
		t.Fatalf("env 未覆盖文件：%+v", eff)
	}
	if eff.Paths.Director != "People/Directors" {
		t.Fatalf("未覆盖的嵌套字段应保留文件值：%+v", eff.Paths)
	}

	// CLI 覆盖 env 与文件（显式 info 也要能覆盖 debug）。
	eff, err = LoadEffective(cwd, CLIArgs{Token: "cli-token-0123456789abcdefghijklmnopq", TokenSet: true, LogLevel: "info", LogLevelSet: true})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if eff.Token != "cli-token-0123456789abcdefghijklmnopq" || eff.LogLevel != "info" {
		t.Fatalf("CLI 未覆盖：%+v", eff)
	}
	if err := eff.RequireToken(); err != nil {
		t.Fatalf("有 token 时不应报错：%v", err)
	}
}

func TestLoadEffective_ExplicitConfigMustExist(t *testing.T) {
	cwd := t.TempDir()

	_, err := LoadEffective(cwd, CLIArgs{ConfigPath: "missing.yaml"})
	if Code(err) != ErrCodeNotFound {
		t.Fatalf("期望 %q，实际 err=%v", ErrCodeNotFound, err)
	}

	t.Setenv(EnvConfigPath, filepath.Join(cwd, "also-missing.yaml"))
	_, err = LoadEffective(cwd, CLIArgs{})
	if Code(err) != ErrCodeNotFound {
		t.Fatalf("期望 %q，实际 err=%v", ErrCodeNotFound, err)
	}
}

func TestLoadEffective_CLIConfigBeatsEnvConfig(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, "a.yaml"), []byte("language: en-US\n"))
	writeFile(t, filepath.Join(cwd, "b.yaml"), []byte("language: de-DE\n"))
	t.Setenv(EnvConfigPath, filepath.Join(cwd, "b.yaml"))

	eff, err := LoadEffective(cwd, CLIArgs{ConfigPath: "a.yaml"})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if eff.Language != "en-US" || eff.Source != filepath.Join(cwd, "a.yaml") {
		t.Fatalf("--config 应优先于 %s：%+v", EnvConfigPath, eff)
	}
}

func TestLoadEffective_Invalid(t *testing.T) {
	cases := map[string]string{
		"yaml 语法错误":    "token: [unclosed\n",
		"base_url 非法":  "base_url: not-a-url\n",
		"base_url 非 http": "base_url: ftp://example.com\n",
		"proxy_url 非法": "proxy_url: 127.0.0.1:8080\n",
		"log_level 非法": "log_level: verbose\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			cwd := t.TempDir()
			writeFile(t, filepath.Join(cwd, DefaultFileName), []byte(content))
			_, err := LoadEffective(cwd, CLIArgs{})
			if Code(err) != ErrCodeInvalid {
				t.Fatalf("期望 %q，实际 err=%v", ErrCodeInvalid, err)
			}
		})
	}
}

func TestLoadEffective_ConfigPathIsDirectory(t *testing.T) {
	cwd := t.TempDir()
	if err := os.Mkdir(filepath.Join(cwd, DefaultFileName), 0o755); err != nil {
		t.Fatalf("mkdir 失败：%v", err)
	}
	_, err := LoadEffective(cwd, CLIArgs{})
	if Code(err) != ErrCodeInvalid {
		t.Fatalf("期望 %q，实际 err=%v", ErrCodeInvalid, err)
	}
}

func TestLoadEffective_TimeoutClamped(t *testing.T) {
	cases := []struct {
		content string
		want    time.Duration
	}{
		{"timeout_sec: -5\n", time.Second},
		{"timeout_sec: 9999\n", 300 * time.Second},
		{"timeout_sec: 0\n", DefaultTimeoutSec * time.Second},
	}
	for _, tc := range cases {
		cwd := t.TempDir()
		writeFile(t, filepath.Join(cwd, DefaultFileName), []byte(tc.content))
		eff, err := LoadEffective(cwd, CLIArgs{})
		if err != nil {
			t.Fatalf("不期望错误：%v", err)
		}
		if eff.Timeout != tc.want {
			t.Fatalf("%q => %v, want %v", tc.content, eff.Timeout, tc.want)
		}
	}
}

func TestError_Messages(t *testing.T) {
	if got := (&Error{Code: ErrCodeNotFound, Path: "/x.yaml"}).Error(); got != `config_not_found：未找到配置文件 "/x.yaml"` {
		t.Fatalf("文案不正确：%q", got)
	}
	if Code(os.ErrNotExist) != "" {
		t.Fatalf("非 *Error 应返回空串")
	}
}

func writeFile(t *testing.T, path string, b []byte) {
	t.Helper()
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("写入文件失败 %q：%v", path, err)
	}
}
