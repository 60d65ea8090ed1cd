package xotel

import (
	"encoding/binary"

	"go.opentelemetry.io/otel/trace"

	"github.com/WillTong/brave/pkg/propagation/xprop"
)

// ToSpanContext 把 c 转换为远端 SpanContext。
// 采样为 SamplingAccept 或带 debug 标记时置采样位；未知按未采样处理。
func ToSpanContext(c xprop.TraceContext) trace.SpanContext {
	var traceID trace.TraceID
	binary.BigEndian.PutUint64(traceID[:8], c.TraceIDHigh)
	binary.BigEndian.PutUint64(traceID[8:], c.TraceIDLow)

	var spanID trace.SpanID
	binary.BigEndian.PutUint64(spanID[:], c.SpanID)

	var flags trace.TraceFlags
	if c.Debug || c.Sampling == xprop.SamplingAccept {
		flags = trace.FlagsSampled
	}

	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
		Remote:     true,
	})
}

// FromSpanContext 把 SpanContext 转换为 TraceContext。
// sc 无效（零 trace ID 或零 span ID）时 ok 为 false。
// SpanContext 无法表达"未知"，采样决策只会是 Accept 或 Deny。
func FromSpanContext(sc trace.SpanContext) (xprop.TraceContext, bool) {
	if !sc.IsValid() {
		return xprop.TraceContext{}, false
	}

	traceID := sc.TraceID()
	spanID := sc.SpanID()

	c := xprop.TraceContext{
		TraceIDHigh: binary.BigEndian.Uint64(traceID[:8]),
		TraceIDLow:  binary.BigEndian.Uint64(traceID[8:]),
		SpanID:      binary.BigEndian.Uint64(spanID[:]),
		Sampling:    xprop.SamplingDeny,
	}
	if sc.IsSampled() {
		c.Sampling = xprop.SamplingAccept
	}
	return c, true
}
