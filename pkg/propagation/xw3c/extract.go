package xw3c

import "github.com/WillTong/brave/pkg/propagation/xprop"

// Extractor 从载体提取追踪上下文。
// 组合两个编解码器：先用 StateFormat 定位本系统条目，
// 再把条目值的区间交给 ParentFormat 解码，结果与保留的其他厂商
// 片段合成 xprop.Extraction 的三种变体之一。
type Extractor[C any] struct {
	prop   *Propagation
	getter xprop.Getter[C]
}

// NewExtractor 创建提取器。prop 和 getter 不能为 nil。
func NewExtractor[C any](prop *Propagation, getter xprop.Getter[C]) Extractor[C] {
	if prop == nil {
		panic("xw3c: propagation cannot be nil")
	}
	if getter == nil {
		panic("xw3c: getter cannot be nil")
	}
	return Extractor[C]{prop: prop, getter: getter}
}

// Extract 读取载体中的 tracestate 并提取追踪上下文。
//
// 结果变体：
//   - 头部缺失或为空 → Empty
//   - 本系统条目解码成功 → Context（附其他厂商片段，若有）
//   - 没有本系统条目但有其他厂商片段 → FlagsOnly
//   - 本系统条目损坏 → Empty，已累积的片段一并丢弃。
//     模糊的信任问题从保守处理：损坏的本系统条目使整个头部失效，
//     而不是降级成 FlagsOnly。
func (e Extractor[C]) Extract(carrier C) xprop.Extraction {
	value, ok := e.getter.Get(carrier, HeaderTracestate)
	if !ok || value == "" {
		return xprop.EmptyExtraction()
	}

	var decoded xprop.TraceContext
	found := false
	other, aborted := e.prop.state.Parse(value, func(begin, end int) bool {
		c, ok := e.prop.parent.Parse(value, begin, end)
		if ok {
			decoded = c
			found = true
		}
		return ok
	})
	if aborted {
		return xprop.EmptyExtraction()
	}
	if found {
		return xprop.ContextExtraction(decoded, other)
	}
	if other != "" {
		return xprop.FlagsOnlyExtraction(other)
	}
	return xprop.EmptyExtraction()
}
