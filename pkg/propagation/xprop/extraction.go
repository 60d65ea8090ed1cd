package xprop

// =============================================================================
// 提取结果
// =============================================================================

// ExtractionKind 提取结果的变体标签。
type ExtractionKind uint8

const (
	// KindEmpty 头部缺失，或没有任何可用内容（含本系统条目损坏的情况）。
	KindEmpty ExtractionKind = iota

	// KindFlagsOnly 没有本系统条目，但保留了其他厂商的 tracestate 片段。
	KindFlagsOnly

	// KindContext 本系统条目解码成功。
	KindContext
)

// String 返回变体标签的可读名称。
func (k ExtractionKind) String() string {
	switch k {
	case KindFlagsOnly:
		return "flags_only"
	case KindContext:
		return "context"
	default:
		return "empty"
	}
}

// Extraction 一次头部提取的结果。
//
// 设计决策: 用带标签的变体而非"可能为 nil 的指针 + 哨兵单例"表达三种结果，
// 调用方对 Kind 分支即可，不存在与某个特定实例做同一性比较的隐含协议。
// 零值即 Empty。
type Extraction struct {
	kind       ExtractionKind
	context    TraceContext
	otherState string
}

// EmptyExtraction 返回 Empty 结果。
func EmptyExtraction() Extraction {
	return Extraction{}
}

// FlagsOnlyExtraction 返回 FlagsOnly 结果。
// FlagsOnly 必须携带其他厂商片段，otherState 为空时退化为 Empty。
func FlagsOnlyExtraction(otherState string) Extraction {
	if otherState == "" {
		return Extraction{}
	}
	return Extraction{kind: KindFlagsOnly, otherState: otherState}
}

// ContextExtraction 返回 Context 结果。otherState 可以为空。
func ContextExtraction(c TraceContext, otherState string) Extraction {
	return Extraction{kind: KindContext, context: c, otherState: otherState}
}

// Kind 返回变体标签。
func (e Extraction) Kind() ExtractionKind {
	return e.kind
}

// Context 返回解码出的 TraceContext；仅 KindContext 时 ok 为 true。
func (e Extraction) Context() (TraceContext, bool) {
	return e.context, e.kind == KindContext
}

// OtherState 返回其他厂商的 tracestate 片段，无则为空串。
// 片段按原始顺序逐字节保留，下次编码时原样折回。
func (e Extraction) OtherState() string {
	return e.otherState
}
