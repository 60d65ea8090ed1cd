package xprop

import "fmt"

// =============================================================================
// 采样决策
// =============================================================================

// Sampling 三态采样决策。
//
// 线上格式只能表达"采样/不采样"两种取值，头部缺少 flags 段时为"未知"。
// 零值即 SamplingUnknown，保证 TraceContext 零值不会凭空携带采样决策。
type Sampling uint8

const (
	// SamplingUnknown 未传播采样决策。
	SamplingUnknown Sampling = iota

	// SamplingDeny 明确不采样。
	SamplingDeny

	// SamplingAccept 明确采样。
	SamplingAccept
)

// String 返回采样决策的可读名称。
func (s Sampling) String() string {
	switch s {
	case SamplingDeny:
		return "deny"
	case SamplingAccept:
		return "accept"
	default:
		return "unknown"
	}
}

// =============================================================================
// TraceContext
// =============================================================================

// TraceContext 一次分布式调用的追踪标识。
//
// TraceIDHigh 和 TraceIDLow 合并为 128 位 trace ID（高 64 位在前）。
// 调用方在编码前需保证 Validate 通过：trace ID 两段不同时为零，
// span ID 不为零。解码端会拒绝违反该约束的线上数据，而不是构造出
// 一个非法的 TraceContext。
//
// Debug 是比"已采样"更强的标记。线上格式没有独立的 debug 表示，
// 编码时会归一化为采样（debug 至少等价于 SamplingAccept）。
type TraceContext struct {
	TraceIDHigh uint64
	TraceIDLow  uint64
	SpanID      uint64
	Sampling    Sampling
	Debug       bool
}

// Validate 校验标识约束。
// 违反约束属于调用方的编程错误，应由测试兜住，而非运行时容错。
func (c TraceContext) Validate() error {
	if c.TraceIDHigh == 0 && c.TraceIDLow == 0 {
		return ErrZeroTraceID
	}
	if c.SpanID == 0 {
		return ErrZeroSpanID
	}
	return nil
}

// TraceIDHex 返回 32 位小写十六进制的 trace ID（高 16 位在前，零填充）。
func (c TraceContext) TraceIDHex() string {
	return fmt.Sprintf("%016x%016x", c.TraceIDHigh, c.TraceIDLow)
}

// SpanIDHex 返回 16 位小写十六进制的 span ID（零填充）。
func (c TraceContext) SpanIDHex() string {
	return fmt.Sprintf("%016x", c.SpanID)
}
