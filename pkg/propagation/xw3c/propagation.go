package xw3c

// 头部名称。
const (
	// HeaderTraceparent 固定格式头部。
	HeaderTraceparent = "traceparent"

	// HeaderTracestate 厂商状态列表头部。
	HeaderTracestate = "tracestate"
)

// DefaultStateName 本系统在 tracestate 中的默认条目名。
const DefaultStateName = "b3"

// Propagation 把两个编解码器与条目名组合成一套传播方案。
// 通过 NewExtractor / NewInjector 绑定具体载体后使用。
// 创建后只读，可并发共享。
type Propagation struct {
	stateName string
	parent    *ParentFormat
	state     *StateFormat
}

// New 创建传播方案。
func New(opts ...Option) *Propagation {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Propagation{
		stateName: o.stateName,
		parent:    NewParentFormat(o.diag),
		state:     NewStateFormat(o.stateName),
	}
}

// StateName 返回本系统的条目名。
func (p *Propagation) StateName() string {
	return p.stateName
}

// ParentFormat 返回固定格式编解码器。
func (p *Propagation) ParentFormat() *ParentFormat {
	return p.parent
}

// StateFormat 返回列表编解码器。
func (p *Propagation) StateFormat() *StateFormat {
	return p.state
}
