package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/John-Robertt/tmdbnote/internal/config"
	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/formatter"
	"github.com/John-Robertt/tmdbnote/internal/infra/fsx"
	"github.com/John-Robertt/tmdbnote/internal/infra/httpx"
	"github.com/John-Robertt/tmdbnote/internal/infra/metrics"
	"github.com/John-Robertt/tmdbnote/internal/note"
	"github.com/John-Robertt/tmdbnote/internal/tmdb"
)

const userAgent = "tmdbnote/1"

// 退出码：0 成功；1 操作失败；2 用法或配置错误。
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run 是可测试的入口：不直接读写 os.Stdout/os.Stderr，也不调用 os.Exit。
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || isHelp(args[0]) {
		printUsage(stdout)
		return exitOK
	}

	cmd := args[0]
	switch cmd {
	case "search", "get", "images", "check":
	default:
		fmt.Fprintf(stderr, "未知命令：%q\n\n", cmd)
		printUsage(stderr)
		return exitUsage
	}

	for _, a := range args[1:] {
		if isHelp(a) {
			printUsage(stdout)
			return exitOK
		}
	}

	ca, err := parseArgs(args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "参数错误：%v\n\n", err)
		printUsage(stderr)
		return exitUsage
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "读取当前目录失败：%v\n", err)
		return exitFailed
	}

	eff, err := config.LoadEffective(cwd, config.CLIArgs{
		ConfigPath:  ca.ConfigPath,
		Token:       ca.Token,
		TokenSet:    ca.TokenSet,
		LogLevel:    ca.LogLevel,
		LogLevelSet: ca.LogLevelSet,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if err := eff.RequireToken(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := newLogger(stderr, eff.LogLevel)
	log.Debug().
		Str("config", orNone(eff.Source)).
		Str("base_url", eff.BaseURL).
		Str("language", eff.Language).
		Str("proxy", formatProxy(eff.ProxyURL)).
		Dur("timeout", eff.Timeout).
		Msg("配置（生效）")

	m := metrics.NewManager()
	client, err := newClient(eff, log, m)
	if err != nil {
		fmt.Fprintf(stderr, "初始化目录客户端失败：%v\n", err)
		return exitUsage
	}

	var code int
	switch cmd {
	case "search":
		code = searchCmd(ctx, client, eff.Token, ca, stdout, stderr)
	case "get":
		code = getCmd(ctx, client, eff.Token, ca, stdout, stderr)
	case "images":
		code = imagesCmd(ctx, client, eff.Token, ca, stdout, stderr)
	case "check":
		code = checkCmd(ctx, client, eff.Token, ca, stdout, stderr)
	}

	if ca.Metrics {
		if err := m.WriteText(stderr); err != nil {
			log.Warn().Err(err).Msg("输出指标失败")
		}
	}
	return code
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: !isTTY(w), TimeFormat: "15:04:05"}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

func newClient(eff config.EffectiveConfig, log zerolog.Logger, m *metrics.Manager) (*tmdb.Client, error) {
	h, err := httpx.NewClient(httpx.Options{
		ProxyURL:  eff.ProxyURL,
		Timeout:   eff.Timeout,
		UserAgent: userAgent,
		Observer:  m,
	})
	if err != nil {
		return nil, err
	}
	conv := formatter.NewConverter(
		formatter.WithLanguage(eff.ImageLanguage),
		formatter.WithImageURLPattern(eff.ImageURLPattern),
	)
	return tmdb.New(
		tmdb.WithBaseURL(eff.BaseURL),
		tmdb.WithLanguage(eff.Language),
		tmdb.WithHTTPClient(h),
		tmdb.WithConverter(conv),
		tmdb.WithPaths(eff.Paths),
		tmdb.WithLogger(log),
		tmdb.WithMetrics(m),
	)
}

func searchCmd(ctx context.Context, c *tmdb.Client, token string, ca cliArgs, stdout, stderr io.Writer) int {
	if len(ca.Positional) == 0 {
		fmt.Fprintln(stderr, "参数错误：search 需要查询词")
		return exitUsage
	}
	query := strings.Join(ca.Positional, " ")

	items, err := c.SearchByQuery(ctx, query, token)
	if err != nil {
		return reportError(stderr, err)
	}
	if isTTY(stdout) {
		for _, line := range renderSuggestions(items) {
			fmt.Fprintln(stdout, line)
		}
		return exitOK
	}
	return emitJSON(stdout, stderr, items)
}

func getCmd(ctx context.Context, c *tmdb.Client, token string, ca cliArgs, stdout, stderr io.Writer) int {
	kind, id, err := kindAndID(ca.Positional)
	if err != nil {
		fmt.Fprintf(stderr, "参数错误：%v\n", err)
		return exitUsage
	}

	entry, err := c.GetRecordByID(ctx, kind, id, token)
	if err != nil {
		return reportError(stderr, err)
	}
	b, err := note.Encode(entry.Presentation)
	if err != nil {
		fmt.Fprintf(stderr, "生成笔记失败：%v\n", err)
		return exitFailed
	}

	if strings.TrimSpace(ca.Out) == "" {
		_, _ = stdout.Write(b)
		return exitOK
	}

	target := fsx.ResolveTarget(ca.Out, note.FileName(entry.Presentation))
	if err := fsx.WriteFileAtomic(target, b, ca.Force); err != nil {
		if errors.Is(err, fsx.ErrExists) {
			fmt.Fprintf(stderr, "%q 已存在；使用 --force 覆盖\n", target)
			return exitFailed
		}
		fmt.Fprintf(stderr, "写入笔记失败：%v\n", err)
		return exitFailed
	}
	fmt.Fprintf(stderr, "已写入：%s\n", target)
	return exitOK
}

func imagesCmd(ctx context.Context, c *tmdb.Client, token string, ca cliArgs, stdout, stderr io.Writer) int {
	kind, id, err := kindAndID(ca.Positional)
	if err != nil {
		fmt.Fprintf(stderr, "参数错误：%v\n", err)
		return exitUsage
	}
	// 获取失败时是三个空桶，不算错误。
	return emitJSON(stdout, stderr, c.ListImagesByID(ctx, kind, id, token))
}

func checkCmd(ctx context.Context, c *tmdb.Client, token string, ca cliArgs, stdout, stderr io.Writer) int {
	if len(ca.Positional) > 0 {
		fmt.Fprintf(stderr, "参数错误：check 不接受参数 %q\n", ca.Positional[0])
		return exitUsage
	}
	if !c.ValidateCredential(ctx, token) {
		fmt.Fprintln(stdout, "token: invalid")
		return exitFailed
	}
	fmt.Fprintln(stdout, "token: ok")
	return exitOK
}

func kindAndID(pos []string) (domain.Kind, int, error) {
	if len(pos) != 2 {
		return "", 0, fmt.Errorf("需要 <movie|series|person> <id>，实际得到 %d 个参数", len(pos))
	}
	kind, ok := domain.ParseKind(pos[0])
	if !ok {
		return "", 0, fmt.Errorf("kind 只能是 movie、series 或 person，实际是 %q", pos[0])
	}
	id, err := strconv.Atoi(pos[1])
	if err != nil {
		return "", 0, fmt.Errorf("id 必须是整数，实际是 %q", pos[1])
	}
	return kind, id, nil
}

// reportError 把目录客户端错误写到 stderr；invalid_input 视为用法错误。
func reportError(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, err)
	if tmdb.Code(err) == tmdb.CodeInvalidInput {
		return exitUsage
	}
	return exitFailed
}

func emitJSON(stdout, stderr io.Writer, v any) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(stderr, "输出 JSON 失败：%v\n", err)
		return exitFailed
	}
	return exitOK
}

type cliArgs struct {
	ConfigPath string

	Token    string
	TokenSet bool

	LogLevel    string
	LogLevelSet bool

	Out     string
	Force   bool
	Metrics bool

	Positional []string
}

func parseArgs(args []string) (cliArgs, error) {
	ca := cliArgs{}

	// value 读取 "--name value" 或 "--name=value"。
	value := func(i *int, a, name string) (string, bool, error) {
		if a == name {
			if *i+1 >= len(args) {
				return "", true, fmt.Errorf("%s 需要一个值", name)
			}
			*i++
			return args[*i], true, nil
		}
		if strings.HasPrefix(a, name+"=") {
			return strings.TrimPrefix(a, name+"="), true, nil
		}
		return "", false, nil
	}

	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			ca.Positional = append(ca.Positional, args[i+1:]...)
			break
		}

		if v, ok, err := value(&i, a, "--config"); ok {
			if err != nil {
				return cliArgs{}, err
			}
			ca.ConfigPath = v
			continue
		}
		if v, ok, err := value(&i, a, "--token"); ok {
			if err != nil {
				return cliArgs{}, err
			}
			ca.Token, ca.TokenSet = v, true
			continue
		}
		if v, ok, err := value(&i, a, "--log-level"); ok {
			if err != nil {
				return cliArgs{}, err
			}
			ca.LogLevel, ca.LogLevelSet = v, true
			continue
		}
		if v, ok, err := value(&i, a, "--out"); ok {
			if err != nil {
				return cliArgs{}, err
			}
			if strings.TrimSpace(v) == "" {
				return cliArgs{}, fmt.Errorf("--out 不能为空")
			}
			ca.Out = v
			continue
		}

		switch {
		case a == "--force":
			ca.Force = true
		case a == "--metrics":
			ca.Metrics = true
		case strings.HasPrefix(a, "-") && a != "-":
			return cliArgs{}, fmt.Errorf("未知参数 %q", a)
		default:
			ca.Positional = append(ca.Positional, a)
		}
	}
	return ca, nil
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `用法：
  tmdbnote search <query...>
  tmdbnote get <movie|series|person> <id> [--out <file|dir>] [--force]
  tmdbnote images <movie|series|person> <id>
  tmdbnote check

命令：
  search  搜索电影、剧集和人物（终端里输出表格，否则输出 JSON）
  get     获取条目并输出 Markdown 笔记（YAML frontmatter）
  images  列出条目的海报、背景图和 logo（JSON）
  check   校验 token，有效时退出码为 0

全局参数：
  --token <token>      访问令牌（覆盖 TMDBNOTE_TOKEN 与配置文件）
  --config <path>      配置文件（默认 ./tmdbnote.yaml，可选）
  --log-level <level>  debug|info|warn|error
  --metrics            结束时把请求指标（文本格式）写到 stderr
  -h, --help           显示帮助
`)
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
