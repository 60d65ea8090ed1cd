package xw3c_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillTong/brave/pkg/propagation/xw3c"
)

// =============================================================================
// 解析
// =============================================================================

func TestStateFormat_Parse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwn   string // 回调收到的值（区间子串），"" 表示回调不应被调用
		wantOther string
	}{
		{
			name:      "本系统条目夹在其他厂商之间",
			input:     "othervendor=abc,b3=" + testSampled + ",more=xyz",
			wantOwn:   testSampled,
			wantOther: "othervendor=abc,more=xyz",
		},
		{
			name:      "只有本系统条目",
			input:     "b3=" + testSampled,
			wantOwn:   testSampled,
			wantOther: "",
		},
		{
			name:      "没有本系统条目",
			input:     "congo=t61rcWkgMzE,rojo=00f067aa0ba902b7",
			wantOwn:   "",
			wantOther: "congo=t61rcWkgMzE,rojo=00f067aa0ba902b7",
		},
		{
			name:      "分隔符周围的空格被去除",
			input:     " othervendor = abc , b3 = " + testSampled + " , more = xyz ",
			wantOwn:   testSampled,
			wantOther: "othervendor=abc,more=xyz",
		},
		{
			name:      "没有等号的片段不构成条目",
			input:     "junk,a=1,alsojunk",
			wantOwn:   "",
			wantOther: "a=1",
		},
		{
			name:      "空条目被忽略",
			input:     ",,a=1,,b=2,",
			wantOwn:   "",
			wantOther: "a=1,b=2",
		},
		{
			name:      "值为空的条目保留",
			input:     "a=,b3=" + testSampled,
			wantOwn:   testSampled,
			wantOther: "a=",
		},
		{
			name:      "顺序与重复条目原样保留",
			input:     "z=1,a=2,z=3",
			wantOwn:   "",
			wantOther: "z=1,a=2,z=3",
		},
	}

	f := xw3c.NewStateFormat("b3")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			other, aborted := f.Parse(tt.input, func(begin, end int) bool {
				calls = append(calls, tt.input[begin:end])
				return true
			})

			require.False(t, aborted)
			assert.Equal(t, tt.wantOther, other)
			if tt.wantOwn == "" {
				assert.Empty(t, calls, "不应定位到本系统条目")
			} else {
				require.Len(t, calls, 1)
				assert.Equal(t, tt.wantOwn, calls[0])
			}
		})
	}
}

func TestStateFormat_Parse_firstOwnEntryWins(t *testing.T) {
	f := xw3c.NewStateFormat("b3")

	input := "b3=" + testSampled + ",other=1,b3=" + testUnsampled
	var calls []string
	other, aborted := f.Parse(input, func(begin, end int) bool {
		calls = append(calls, input[begin:end])
		return true
	})

	require.False(t, aborted)
	require.Len(t, calls, 1, "只有首个本系统条目是权威的")
	assert.Equal(t, testSampled, calls[0])
	// 后续同名条目既不再上报，也不混入其他厂商片段
	assert.Equal(t, "other=1", other)
}

// key 以配置的条目名开头即视为本系统条目（前缀匹配，与原始行为一致）。
func TestStateFormat_Parse_prefixMatch(t *testing.T) {
	f := xw3c.NewStateFormat("b3")

	input := "b3extra=" + testSampled
	var calls int
	_, aborted := f.Parse(input, func(begin, end int) bool {
		calls++
		return true
	})
	require.False(t, aborted)
	assert.Equal(t, 1, calls)
}

func TestStateFormat_Parse_abortOnCallbackFailure(t *testing.T) {
	f := xw3c.NewStateFormat("b3")

	input := "othervendor=abc,b3=corrupt,more=xyz"
	_, aborted := f.Parse(input, func(begin, end int) bool {
		assert.Equal(t, "corrupt", input[begin:end])
		return false
	})
	assert.True(t, aborted, "回调失败后扫描应立即终止")
}

func TestStateFormat_Parse_emptyInput(t *testing.T) {
	f := xw3c.NewStateFormat("b3")

	other, aborted := f.Parse("", func(begin, end int) bool {
		t.Fatal("空输入不应触发回调")
		return false
	})
	assert.False(t, aborted)
	assert.Empty(t, other)
}

// =============================================================================
// 写出
// =============================================================================

func TestStateFormat_Write(t *testing.T) {
	f := xw3c.NewStateFormat("b3")

	tests := []struct {
		name       string
		ownValue   string
		otherState string
		want       string
	}{
		{
			name:     "无其他厂商片段",
			ownValue: testSampled,
			want:     "b3=" + testSampled,
		},
		{
			name:       "本系统条目始终排最前",
			ownValue:   testSampled,
			otherState: "congo=t61rcWkgMzE,rojo=00f067aa0ba902b7",
			want:       "b3=" + testSampled + ",congo=t61rcWkgMzE,rojo=00f067aa0ba902b7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Write(tt.ownValue, tt.otherState))
		})
	}
}

// 其他厂商片段经一次写出再解析后保持不变。
func TestStateFormat_otherStateRoundTrip(t *testing.T) {
	f := xw3c.NewStateFormat("b3")

	others := []string{
		"congo=t61rcWkgMzE",
		"congo=t61rcWkgMzE,rojo=00f067aa0ba902b7",
		"a=,z=1",
	}
	for _, other := range others {
		out := f.Write(testSampled, other)

		var calls int
		got, aborted := f.Parse(out, func(begin, end int) bool {
			calls++
			assert.Equal(t, testSampled, out[begin:end])
			return true
		})
		require.False(t, aborted)
		assert.Equal(t, 1, calls)
		assert.Equal(t, other, got, "其他厂商片段必须逐字节保持")
	}
}

func TestNewStateFormat_emptyNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		xw3c.NewStateFormat("")
	})
}
