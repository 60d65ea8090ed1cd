package xw3c

import "strings"

// StateFormat 编解码 tracestate 列表格式。
// 只负责条目边界的切分与本系统条目的定位，不解释任何条目的值。
// 无内部可变状态，可并发使用。
type StateFormat struct {
	name string
}

// NewStateFormat 创建列表编解码器。name 是本系统在 tracestate 中的条目名。
func NewStateFormat(name string) *StateFormat {
	if name == "" {
		panic("xw3c: state name cannot be empty")
	}
	return &StateFormat{name: name}
}

// Name 返回本系统的条目名。
func (f *StateFormat) Name() string {
	return f.name
}

// OwnEntryFunc 定位到本系统条目时的回调。
// begin/end 是条目值在原始输入中的下标区间（已去除首尾空格）——
// 传区间而非拷贝子串，固定格式解析器才能在出错时上报相对原始输入的
// 真实偏移量。返回值表示该条目是否解析成功。
type OwnEntryFunc func(begin, end int) bool

// Parse 从左到右扫描 tracestate 文本。
//
// 条目按 ',' 切分，条目内按第一个 '=' 切分 key 和 value，
// 分隔符两侧的空格是唯一做的归一化。key 以配置的条目名开头的
// 首个条目视为本系统条目，其值的区间交给 onOwnEntry；之后的同名
// 条目不再理会（首个出现才是权威的，头部本就不该携带两份）。
//
// 其余条目一律并入 otherState：原始顺序、原始内容，不重排、不去重。
// 没有 '=' 的片段不构成条目，直接丢弃。
//
// aborted 为 true 表示回调报告了解析失败，扫描随即终止；
// 此时 otherState 只含失败前累积的部分，调用方应整体丢弃。
func (f *StateFormat) Parse(input string, onOwnEntry OwnEntryFunc) (otherState string, aborted bool) {
	var other []byte
	matched := false

	pos := 0
	for pos < len(input) {
		entryEnd := strings.IndexByte(input[pos:], ',')
		if entryEnd < 0 {
			entryEnd = len(input)
		} else {
			entryEnd += pos
		}

		keyBegin, keyEnd, valBegin, valEnd, ok := splitEntry(input, pos, entryEnd)
		pos = entryEnd + 1
		if !ok {
			continue
		}

		if strings.HasPrefix(input[keyBegin:keyEnd], f.name) {
			// 首个出现才是权威的；之后的同名条目既不上报，
			// 也不混入保留片段（折回时不能出现两份本系统条目）。
			if !matched {
				matched = true
				if !onOwnEntry(valBegin, valEnd) {
					return string(other), true
				}
			}
			continue
		}

		if len(other) > 0 {
			other = append(other, ',')
		}
		other = append(other, input[keyBegin:keyEnd]...)
		other = append(other, '=')
		other = append(other, input[valBegin:valEnd]...)
	}
	return string(other), false
}

// splitEntry 在 input[begin:end) 中定位 key 与 value 的区间，
// 去除 '=' 和 ',' 周围的空格。没有 '=' 或 key 为空时 ok 为 false。
func splitEntry(input string, begin, end int) (keyBegin, keyEnd, valBegin, valEnd int, ok bool) {
	eq := strings.IndexByte(input[begin:end], '=')
	if eq < 0 {
		return 0, 0, 0, 0, false
	}
	eq += begin
	keyBegin, keyEnd = trimSpaces(input, begin, eq)
	if keyBegin == keyEnd {
		return 0, 0, 0, 0, false
	}
	valBegin, valEnd = trimSpaces(input, eq+1, end)
	return keyBegin, keyEnd, valBegin, valEnd, true
}

// trimSpaces 收缩区间两端的空格字符（只处理 ' '，线上格式不含其他空白）。
func trimSpaces(input string, begin, end int) (int, int) {
	for begin < end && input[begin] == ' ' {
		begin++
	}
	for end > begin && input[end-1] == ' ' {
		end--
	}
	return begin, end
}

// Write 写出 tracestate 列表。
//
// 先写本系统条目 "<name>=<ownValue>"，otherState 非空时追加 ',' 和
// 原样的其他厂商片段。本系统条目始终排最前：新值排在遗留厂商之前
// 是刻意策略，不可配置。
func (f *StateFormat) Write(ownValue, otherState string) string {
	if otherState == "" {
		return f.name + "=" + ownValue
	}
	var b strings.Builder
	b.Grow(len(f.name) + 1 + len(ownValue) + 1 + len(otherState))
	b.WriteString(f.name)
	b.WriteByte('=')
	b.WriteString(ownValue)
	b.WriteByte(',')
	b.WriteString(otherState)
	return b.String()
}
