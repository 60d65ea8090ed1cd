package xprop

import (
	"context"
	"log/slog"
)

// =============================================================================
// 诊断接收器
// =============================================================================

// NoOffset 表示该条诊断没有对应的输入偏移量。
const NoOffset = -1

// Diagnostics 接收被拒绝输入的诊断信息。
//
// msg 是人类可读的消息模板；offset 是语法被违反处在输入中的下标，
// 无偏移时为 NoOffset；cause 可选。每次拒绝恰好上报一次。
//
// 实现必须是并发安全的：编解码操作本身无共享可变状态，
// 多 goroutine 并发调用时诊断会从不同 goroutine 到达。
type Diagnostics interface {
	Report(msg string, offset int, cause error)
}

// NewSlogDiagnostics 返回落到 slog 的默认诊断实现。
// logger 为 nil 时使用 slog.Default()。诊断按 Warn 级别记录：
// 畸形的上游头部值得关注，但不构成本进程的错误。
func NewSlogDiagnostics(logger *slog.Logger) Diagnostics {
	if logger == nil {
		logger = slog.Default()
	}
	return slogDiagnostics{logger: logger}
}

type slogDiagnostics struct {
	logger *slog.Logger
}

// Report 实现 Diagnostics。
func (d slogDiagnostics) Report(msg string, offset int, cause error) {
	attrs := make([]slog.Attr, 0, 2)
	if offset != NoOffset {
		attrs = append(attrs, slog.Int("offset", offset))
	}
	if cause != nil {
		attrs = append(attrs, slog.Any("cause", cause))
	}
	d.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}

// NopDiagnostics 丢弃全部诊断。适用于不关心畸形输入细节的热路径。
type NopDiagnostics struct{}

// Report 实现 Diagnostics。
func (NopDiagnostics) Report(string, int, error) {}
