package xw3c

import "github.com/WillTong/brave/pkg/propagation/xprop"

// Injector 把追踪上下文写入载体。
type Injector[C any] struct {
	prop   *Propagation
	setter xprop.Setter[C]
}

// NewInjector 创建注入器。prop 和 setter 不能为 nil。
func NewInjector[C any](prop *Propagation, setter xprop.Setter[C]) Injector[C] {
	if prop == nil {
		panic("xw3c: propagation cannot be nil")
	}
	if setter == nil {
		panic("xw3c: setter cannot be nil")
	}
	return Injector[C]{prop: prop, setter: setter}
}

// Inject 把 c 编码进载体的 traceparent 和 tracestate。
//
// otherState 是上次提取保留的其他厂商片段，原样折回 tracestate，
// 排在本系统条目之后。c 需满足 Validate 约束，注入没有错误路径。
func (i Injector[C]) Inject(c xprop.TraceContext, otherState string, carrier C) {
	parent := i.prop.parent.Write(c)
	i.setter.Set(carrier, HeaderTraceparent, parent)
	i.setter.Set(carrier, HeaderTracestate, i.prop.state.Write(parent, otherState))
}
