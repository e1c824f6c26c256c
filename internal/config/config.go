package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/John-Robertt/tmdbnote/internal/domain"
)

const (
	// ErrCodeNotFound 表示显式指定的配置文件不存在。
	ErrCodeNotFound = "config_not_found"
	// ErrCodeInvalid 表示配置文件无法读取/解析，或字段不合法。
	ErrCodeInvalid = "config_invalid"
	// ErrCodeMissingToken 表示所有来源都没有提供 token。
	ErrCodeMissingToken = "config_missing_token"
)

const (
	// EnvPrefix 是环境变量前缀；"__" 表示嵌套（TMDBNOTE_PATHS__ACTOR => paths.actor）。
	EnvPrefix = "TMDBNOTE_"
	// EnvConfigPath 指定配置文件位置（优先级低于 --config）。
	EnvConfigPath = EnvPrefix + "CONFIG"
	// DefaultFileName 是 cwd 下的默认配置文件名（可选）。
	DefaultFileName = "tmdbnote.yaml"

	DefaultBaseURL       = "https://api.themoviedb.org/3"
	DefaultImageBaseURL  = "https://image.tmdb.org/t/p"
	DefaultLanguage      = "ru-RU"
	DefaultImageLanguage = "ru"
	DefaultTimeoutSec    = 20
	DefaultLogLevel      = "info"
)

// CLIArgs 只包含 CLI 暴露的入口，并保留“是否显式指定”的信息。
// 这样 --log-level=info 也能覆盖配置文件里的 debug。
type CLIArgs struct {
	ConfigPath string

	Token    string
	TokenSet bool

	LogLevel    string
	LogLevelSet bool
}

// FileConfig 是 YAML 文件与环境变量共同映射的结构。
type FileConfig struct {
	Token         string      `koanf:"token"`
	Language      string      `koanf:"language"`
	ImageLanguage string      `koanf:"image_language"`
	BaseURL       string      `koanf:"base_url"`
	ImageBaseURL  string      `koanf:"image_base_url"`
	ProxyURL      string      `koanf:"proxy_url"`
	TimeoutSec    int         `koanf:"timeout_sec"`
	LogLevel      string      `koanf:"log_level"`
	Paths         PathsConfig `koanf:"paths"`
}

type PathsConfig struct {
	Actor    string `koanf:"actor"`
	Director string `koanf:"director"`
	Writer   string `koanf:"writer"`
	Producer string `koanf:"producer"`
	Titles   string `koanf:"titles"`
}

// EffectiveConfig 是合并并规范化后的最终配置（实现层直接消费，不再做二次默认/优先级判断）。
type EffectiveConfig struct {
	Token string

	Language      string
	ImageLanguage string

	BaseURL         string
	ImageURLPattern string // 含 {size}{path} 占位符
	ProxyURL        string
	Timeout         time.Duration

	LogLevel string
	Paths    domain.PathConfig

	// Source 是实际读取的配置文件；没有读取任何文件时为空。
	Source string
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeNotFound:
		return fmt.Sprintf("%s：未找到配置文件 %q", e.Code, e.Path)
	case ErrCodeMissingToken:
		return fmt.Sprintf("%s：未提供 token（--token、%sTOKEN 或配置文件 token 字段）", e.Code, EnvPrefix)
	case ErrCodeInvalid:
		if e.Err != nil {
			return fmt.Sprintf("%s：配置 %q 无效：%v", e.Code, e.Path, e.Err)
		}
		return fmt.Sprintf("%s：配置 %q 无效", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
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

// LoadEffective 按固定规则发现配置文件，再与环境变量、CLI 参数合并。
//
// 发现规则（固定）：
// 1) --config 给出路径：必须存在
// 2) 否则 $TMDBNOTE_CONFIG 给出路径：必须存在
// 3) 否则尝试 <cwd>/tmdbnote.yaml：可选
//
// 覆盖优先级（低 -> 高）：默认值 < 配置文件 < 环境变量 < CLI。
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	cwdAbs, err := filepath.Abs(cwd)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cwd, Err: err}
	}

	cfgPath, required := discover(cwdAbs, cli.ConfigPath)

	k := koanf.New(".")
	source := ""
	if cfgPath != "" {
		exists, err := fileExists(cfgPath)
		if err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
		}
		switch {
		case exists:
			if err := k.Load(file.Provider(cfgPath), yaml.Parser()); err != nil {
				return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
			}
			source = cfgPath
		case required:
			return EffectiveConfig{}, &Error{Code: ErrCodeNotFound, Path: cfgPath, Err: os.ErrNotExist}
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: "env", Err: err}
	}

	fc := defaults()
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: sourceOrEnv(source), Err: err}
	}

	// CLI 最后覆盖。
	if cli.TokenSet {
		fc.Token = cli.Token
	}
	if cli.LogLevelSet {
		fc.LogLevel = cli.LogLevel
	}

	eff, err := normalize(fc)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: sourceOrEnv(source), Err: err}
	}
	eff.Source = source
	return eff, nil
}

// RequireToken 在需要访问目录服务的命令里调用。
func (c EffectiveConfig) RequireToken() error {
	if c.Token == "" {
		return &Error{Code: ErrCodeMissingToken}
	}
	return nil
}

func defaults() FileConfig {
	return FileConfig{
		Language:      DefaultLanguage,
		ImageLanguage: DefaultImageLanguage,
		BaseURL:       DefaultBaseURL,
		ImageBaseURL:  DefaultImageBaseURL,
		TimeoutSec:    DefaultTimeoutSec,
		LogLevel:      DefaultLogLevel,
	}
}

func discover(cwdAbs, cliPath string) (path string, required bool) {
	if p := strings.TrimSpace(cliPath); p != "" {
		return absCleanFrom(cwdAbs, p), true
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return absCleanFrom(cwdAbs, p), true
	}
	return filepath.Join(cwdAbs, DefaultFileName), false
}

func normalize(fc FileConfig) (EffectiveConfig, error) {
	baseURL, err := httpURL("base_url", fc.BaseURL)
	if err != nil {
		return EffectiveConfig{}, err
	}
	imageBase, err := httpURL("image_base_url", fc.ImageBaseURL)
	if err != nil {
		return EffectiveConfig{}, err
	}

	proxyURL := strings.TrimSpace(fc.ProxyURL)
	if proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return EffectiveConfig{}, fmt.Errorf("proxy_url 无效：%q", proxyURL)
		}
	}

	// 文档约定：范围 [1, 300] 秒；0 表示使用默认值，超出截断。
	timeout := fc.TimeoutSec
	if timeout == 0 {
		timeout = DefaultTimeoutSec
	}
	if timeout < 1 {
		timeout = 1
	}
	if timeout > 300 {
		timeout = 300
	}

	level := strings.ToLower(strings.TrimSpace(fc.LogLevel))
	if level == "" {
		level = DefaultLogLevel
	}
	if err := validateLogLevel(level); err != nil {
		return EffectiveConfig{}, err
	}

	lang := strings.TrimSpace(fc.Language)
	if lang == "" {
		lang = DefaultLanguage
	}
	imgLang := strings.ToLower(strings.TrimSpace(fc.ImageLanguage))
	if imgLang == "" {
		imgLang = DefaultImageLanguage
	}

	return EffectiveConfig{
		Token:           strings.TrimSpace(fc.Token),
		Language:        lang,
		ImageLanguage:   imgLang,
		BaseURL:         baseURL,
		ImageURLPattern: imageBase + "/{size}{path}",
		ProxyURL:        proxyURL,
		Timeout:         time.Duration(timeout) * time.Second,
		LogLevel:        level,
		Paths: domain.PathConfig{
			Actor:    strings.TrimSpace(fc.Paths.Actor),
			Director: strings.TrimSpace(fc.Paths.Director),
			Writer:   strings.TrimSpace(fc.Paths.Writer),
			Producer: strings.TrimSpace(fc.Paths.Producer),
			Titles:   strings.TrimSpace(fc.Paths.Titles),
		},
	}, nil
}

func httpURL(field, raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%s 无效：%q", field, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%s 必须是 http/https：%q", field, raw)
	}
	return raw, nil
}

func validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log_level 只能是 debug/info/warn/error，实际是 %q", level)
	}
}

func sourceOrEnv(source string) string {
	if source == "" {
		return "env"
	}
	return source
}

func fileExists(path string) (bool, error) {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if st.IsDir() {
		return false, fmt.Errorf("%q 是目录", path)
	}
	return true, nil
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
func absCleanFrom(base, p string) string {
	p = filepath.Clean(strings.TrimSpace(p))
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}
