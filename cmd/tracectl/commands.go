package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/WillTong/brave/pkg/propagation/xprop"
	"github.com/WillTong/brave/pkg/propagation/xw3c"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示用户提供的参数不合法。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createParseCommand(),
		createStateCommand(),
		createNewCommand(),
	}
}

// createParseCommand 创建 parse 子命令。
func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析 traceparent 头部并打印各字段",
		ArgsUsage: "<traceparent>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "parse 命令需要且仅需要一个 traceparent 参数"}
			}
			return cmdParse(os.Stdout, os.Stderr, cmd.Args().First())
		},
	}
}

// createStateCommand 创建 state 子命令。
func createStateCommand() *cli.Command {
	return &cli.Command{
		Name:      "state",
		Aliases:   []string{"s"},
		Usage:     "拆分 tracestate 为本方条目与其他厂商片段",
		ArgsUsage: "<tracestate>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "state 命令需要且仅需要一个 tracestate 参数"}
			}
			return cmdState(os.Stdout, cmd.String("key"), cmd.Args().First())
		},
	}
}

// createNewCommand 创建 new 子命令。
func createNewCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "生成一个新的合法 traceparent 头部",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "unsampled",
				Usage: "生成未采样（flags=00）的头部",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 0 {
				return &usageError{msg: "new 命令不接受位置参数"}
			}
			return cmdNew(os.Stdout, cmd.Bool("unsampled"))
		},
	}
}

// collectDiag 收集最后一条解析诊断，供命令输出使用。
type collectDiag struct {
	msg    string
	offset int
}

func (d *collectDiag) Report(msg string, offset int, _ error) {
	d.msg = msg
	d.offset = offset
}

// cmdParse 解析 traceparent 并打印各字段。
// 输入不合法时将诊断写入 errOut，并通过 exitError 返回退出码 1。
func cmdParse(out, errOut io.Writer, header string) error {
	diag := &collectDiag{offset: xprop.NoOffset}
	c, ok := xw3c.NewParentFormat(diag).ParseString(header)
	if !ok {
		if diag.offset != xprop.NoOffset {
			fmt.Fprintf(errOut, "%s (偏移 %d)\n", diag.msg, diag.offset)
		} else {
			fmt.Fprintln(errOut, diag.msg)
		}
		return &exitError{code: 1}
	}

	fmt.Fprintf(out, "trace_id: %s\n", c.TraceIDHex())
	fmt.Fprintf(out, "span_id:  %s\n", c.SpanIDHex())
	fmt.Fprintf(out, "sampled:  %s\n", c.Sampling)
	return nil
}

// cmdState 拆分 tracestate，打印本方条目的值与其他厂商片段。
func cmdState(out io.Writer, key, header string) error {
	var ownValue string
	format := xw3c.NewStateFormat(key)
	other, _ := format.Parse(header, func(begin, end int) bool {
		ownValue = header[begin:end]
		return true
	})

	if ownValue != "" {
		fmt.Fprintf(out, "%s:    %s\n", format.Name(), ownValue)
	} else {
		fmt.Fprintf(out, "%s:    (无)\n", format.Name())
	}
	if other != "" {
		fmt.Fprintf(out, "other: %s\n", other)
	} else {
		fmt.Fprintln(out, "other: (无)")
	}
	return nil
}

// cmdNew 生成一个新的合法 traceparent 并打印。
func cmdNew(out io.Writer, unsampled bool) error {
	c := xprop.TraceContext{Sampling: xprop.SamplingAccept}
	if unsampled {
		c.Sampling = xprop.SamplingDeny
	}
	c.TraceIDHigh, c.TraceIDLow = randomTraceID()
	c.SpanID = randomSpanID()

	fmt.Fprintln(out, xw3c.NewParentFormat(xprop.NopDiagnostics{}).Write(c))
	return nil
}

// randomTraceID 生成一个非全零的随机 128 位 trace ID。
func randomTraceID() (high, low uint64) {
	for high == 0 && low == 0 {
		id := uuid.New()
		high = binary.BigEndian.Uint64(id[:8])
		low = binary.BigEndian.Uint64(id[8:])
	}
	return high, low
}

// randomSpanID 生成一个非零的随机 64 位 span ID。
func randomSpanID() (id uint64) {
	for id == 0 {
		u := uuid.New()
		id = binary.BigEndian.Uint64(u[:8])
	}
	return id
}
