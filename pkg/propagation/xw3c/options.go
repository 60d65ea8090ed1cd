package xw3c

import "github.com/WillTong/brave/pkg/propagation/xprop"

// Option 定义 Propagation 可选配置函数类型。
type Option func(*options)

type options struct {
	stateName string
	diag      xprop.Diagnostics
}

func defaultOptions() options {
	return options{
		stateName: DefaultStateName,
		diag:      xprop.NewSlogDiagnostics(nil),
	}
}

// WithStateName 设置本系统在 tracestate 中的条目名。
// 默认为 DefaultStateName。传入空串将被忽略，保持使用默认值。
func WithStateName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.stateName = name
		}
	}
}

// WithDiagnostics 设置畸形输入的诊断接收器。
// 默认落到 slog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithDiagnostics(diag xprop.Diagnostics) Option {
	return func(o *options) {
		if diag != nil {
			o.diag = diag
		}
	}
}
