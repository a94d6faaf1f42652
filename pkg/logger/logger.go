// Package logger 提供全局日志实例
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log 全局日志实例
// 在 Init 之前使用也是安全的：默认输出被丢弃
var Log = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init 初始化全局日志
//
// 参数:
//   - verbose: false 时丢弃所有输出（与 -verbose 命令行参数对应）
//
// 日志级别读取 LOG_LEVEL（默认 info，verbose 时默认 debug），
// LOG_FORMAT=json 时输出 JSON，否则输出带时间戳的文本。
func Init(verbose bool) {
	l := logrus.New()

	if !verbose {
		l.SetOutput(io.Discard)
		Log = l
		return
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	l.SetOutput(os.Stdout)

	Log = l
}
