// Package logger 提供基于zerolog的全局结构化日志
//
// 启动时调用一次Init，之后任意位置通过Get获取单例。
// 级别：debug → info → warn → error，默认info。
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options 日志初始化选项
type Options struct {
	// Level 最低日志级别：debug、info、warn、error，空值按info处理
	Level string
	// Format 输出格式：console（彩色文本，开发用）或json（生产用）
	Format string
	// Output 日志写入目标，默认os.Stdout
	Output io.Writer
}

var (
	instance    zerolog.Logger
	once        sync.Once
	initialized bool
)

// Init 初始化全局日志单例
// 多次调用只有第一次生效（sync.Once保证）
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Format == "console" {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		instance = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Logger()

		initialized = true
	})
	return instance
}

// Get 获取全局日志单例
// 未初始化时回落到默认配置，避免在单元测试中强制Init
func Get() zerolog.Logger {
	if !initialized {
		return Init(Options{})
	}
	return instance
}

// Reset 重置单例，下一次Init重新生效（仅测试使用）
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	initialized = false
}

// parseLevel 字符串转zerolog级别
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
