package xw3c

import (
	"sync"

	"github.com/WillTong/brave/pkg/propagation/xprop"
)

// ParentFormatLen traceparent 固定长度：00-{32}-{16}-{2} = 55 字符。
const ParentFormatLen = 3 + 32 + 1 + 16 + 3

// 诊断消息模板。偏移量不嵌进消息体，单独上报。
const (
	diagEmpty          = "invalid input: empty"
	diagTruncated      = "invalid input: truncated"
	diagTooLong        = "invalid input: too long"
	diagNotLowerHex    = "invalid input: neither hyphen, nor lower-hex"
	diagVersionMissing = "invalid input: expected version"
	diagVersion        = "invalid input: expected version 00"
	diagTraceID        = "invalid input: expected a 32 lower hex trace ID"
	diagTraceIDTooLong = "invalid input: trace ID is too long"
	diagHyphen         = "invalid input: expected a hyphen(-) delimiter"
	diagSpanID         = "invalid input: expected a 16 lower hex parent ID"
	diagSpanIDTooLong  = "invalid input: parent ID is too long"
	diagFlags          = "invalid input: expected 00 or 01 for flags"
)

// ParentFormat 编解码 traceparent 固定格式。
// 无内部可变状态，可被任意多 goroutine 并发使用。
type ParentFormat struct {
	diag xprop.Diagnostics
}

// NewParentFormat 创建固定格式编解码器。
// diag 为 nil 时使用落到 slog.Default() 的默认诊断。
func NewParentFormat(diag xprop.Diagnostics) *ParentFormat {
	if diag == nil {
		diag = xprop.NewSlogDiagnostics(nil)
	}
	return &ParentFormat{diag: diag}
}

// =============================================================================
// 解析
// =============================================================================

// ParseString 解析完整字符串，等价于 Parse(input, 0, len(input))。
func (f *ParentFormat) ParseString(input string) (xprop.TraceContext, bool) {
	return f.Parse(input, 0, len(input))
}

// Parse 解析 input[begin:end) 中的 traceparent 固定格式。
//
// 按固定顺序检查，每处违规对应一条独立的诊断（消息模板 + 输入偏移量），
// 上报后立即返回"无结果"。偏移量相对整个 input 而非区间起点，
// 这样在 tracestate 内嵌场景下诊断能直接指向原始头部的出错位置。
func (f *ParentFormat) Parse(input string, begin, end int) (xprop.TraceContext, bool) {
	var none xprop.TraceContext

	length := end - begin
	if length == 0 {
		f.diag.Report(diagEmpty, xprop.NoOffset, nil)
		return none, false
	}
	if length < ParentFormatLen {
		f.diag.Report(diagTruncated, xprop.NoOffset, nil)
		return none, false
	}
	if length > ParentFormatLen {
		f.diag.Report(diagTooLong, xprop.NoOffset, nil)
		return none, false
	}

	// 字符集预扫描：只放行 '-' 和小写十六进制。
	// 之后的逐字段检查只会看到格式良好的字符，能给出更精确的诊断。
	for i := begin; i < end; i++ {
		if c := input[i]; c != '-' && !isLowerHex(c) {
			f.diag.Report(diagNotLowerHex, i, nil)
			return none, false
		}
	}

	pos := begin
	version, ok := parseVersion(input, pos)
	if !ok {
		f.diag.Report(diagVersionMissing, begin, nil)
		return none, false
	}
	if version != 0 {
		// 高版本的兼容解析是 SHOULD 而非 MUST，这里选择整体拒绝。
		f.diag.Report(diagVersion, begin, nil)
		return none, false
	}
	pos += 3

	traceIDHigh := parse16Hex(input, pos, end)
	pos += 16
	traceIDLow := parse16Hex(input, pos, end)
	pos += 16
	if traceIDHigh == 0 && traceIDLow == 0 {
		f.diag.Report(diagTraceID, pos-32, nil)
		return none, false
	}
	if isLowerHex(input[pos]) {
		// 第 33 个十六进制字符：字段超长，不再继续检查分隔符。
		f.diag.Report(diagTraceIDTooLong, pos, nil)
		return none, false
	}

	if !f.checkHyphen(input, pos) {
		return none, false
	}
	pos++

	// 线上规范把 span ID 字段称作 parent ID，诊断沿用该叫法。
	spanID := parse16Hex(input, pos, end)
	if spanID == 0 {
		f.diag.Report(diagSpanID, pos, nil)
		return none, false
	}
	pos += 16
	if isLowerHex(input[pos]) {
		f.diag.Report(diagSpanIDTooLong, pos, nil)
		return none, false
	}

	// flags 段需要分隔符加 2 个字符，只剩 1 个字符即截断。
	if end == pos+1 {
		f.diag.Report(diagTruncated, xprop.NoOffset, nil)
		return none, false
	}
	if !f.checkHyphen(input, pos) {
		return none, false
	}
	pos++

	sampling, ok := f.parseFlags(input, pos)
	if !ok {
		return none, false
	}

	return xprop.TraceContext{
		TraceIDHigh: traceIDHigh,
		TraceIDLow:  traceIDLow,
		SpanID:      spanID,
		Sampling:    sampling,
	}, true
}

func (f *ParentFormat) checkHyphen(input string, pos int) bool {
	if input[pos] == '-' {
		return true
	}
	f.diag.Report(diagHyphen, pos, nil)
	return false
}

// parseFlags 只接受 "00" 和 "01"。
// flags 字节目前仅定义了采样位，其余取值整体拒绝。
func (f *ParentFormat) parseFlags(input string, pos int) (xprop.Sampling, bool) {
	if input[pos] == '0' {
		switch input[pos+1] {
		case '0':
			return xprop.SamplingDeny, true
		case '1':
			return xprop.SamplingAccept, true
		}
	}
	f.diag.Report(diagFlags, pos, nil)
	return xprop.SamplingUnknown, false
}

func isLowerHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// parseVersion 解析 2 位小写十六进制版本号，遇到非十六进制字符返回 ok=false。
func parseVersion(input string, pos int) (int, bool) {
	v := 0
	for i := pos; i < pos+2; i++ {
		c := input[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

// parse16Hex 宽松解析 16 位小写十六进制。
// 区间越界或遇到非十六进制字符（预扫描后只可能是 '-'）返回 0，
// 由调用方的零值检查统一拒绝。
func parse16Hex(input string, pos, end int) uint64 {
	if pos+16 > end {
		return 0
	}
	var v uint64
	for i := pos; i < pos+16; i++ {
		c := input[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint64(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint64(c-'a') + 10
		default:
			return 0
		}
	}
	return v
}

// =============================================================================
// 写出
// =============================================================================

// 写出热路径的定长缓冲池。借还都在单次调用内完成，绝不跨调用共享；
// 池外逃逸的只有最终的 string / []byte 拷贝。
var parentBufPool = sync.Pool{
	New: func() any { return new([ParentFormatLen]byte) },
}

// Write 把 c 编码为 traceparent 固定格式。
//
// 采样决策已知时输出 55 字符（"-00" 或 "-01" 结尾），未知时省略
// flags 段输出 52 字符。Debug 归一化为采样：debug 至少等价于已采样，
// 线上格式没有独立的 debug 表示。
//
// 写出没有错误路径：c 违反 Validate 约束属于调用方的编程错误。
func (f *ParentFormat) Write(c xprop.TraceContext) string {
	buf := parentBufPool.Get().(*[ParentFormatLen]byte)
	n := writeParent(buf, c)
	s := string(buf[:n])
	parentBufPool.Put(buf)
	return s
}

// WriteBytes 同 Write，返回独立的字节切片。
// 适用于以字节为值的载体（消息属性、二进制元数据等）。
func (f *ParentFormat) WriteBytes(c xprop.TraceContext) []byte {
	buf := parentBufPool.Get().(*[ParentFormatLen]byte)
	n := writeParent(buf, c)
	out := make([]byte, n)
	copy(out, buf[:n])
	parentBufPool.Put(buf)
	return out
}

func writeParent(buf *[ParentFormatLen]byte, c xprop.TraceContext) int {
	buf[0], buf[1], buf[2] = '0', '0', '-'
	writeHexUint64(buf[3:19], c.TraceIDHigh)
	writeHexUint64(buf[19:35], c.TraceIDLow)
	buf[35] = '-'
	writeHexUint64(buf[36:52], c.SpanID)

	sampling := c.Sampling
	if c.Debug {
		sampling = xprop.SamplingAccept
	}
	switch sampling {
	case xprop.SamplingDeny:
		buf[52], buf[53], buf[54] = '-', '0', '0'
	case xprop.SamplingAccept:
		buf[52], buf[53], buf[54] = '-', '0', '1'
	default:
		return 52
	}
	return ParentFormatLen
}

const lowerHexDigits = "0123456789abcdef"

// writeHexUint64 以 16 位小写十六进制零填充写入 dst（len(dst) == 16）。
func writeHexUint64(dst []byte, v uint64) {
	for i := 15; i >= 0; i-- {
		dst[i] = lowerHexDigits[v&0xf]
		v >>= 4
	}
}
