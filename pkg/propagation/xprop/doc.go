// Package xprop 定义链路追踪传播层的共享模型。
//
// # 核心类型
//
//   - TraceContext: 一次调用的追踪标识（128 位 trace ID、64 位 span ID、三态采样决策）
//   - Sampling: 三态采样决策（未知 / 不采样 / 采样）
//   - Extraction: 提取结果的带标签变体（Empty / FlagsOnly / Context）
//   - Getter / Setter: 载体读写接口，由具体传输层适配（见 xcarrier 包）
//   - Diagnostics: 诊断接收器，记录被拒绝的畸形输入
//
// # 提取结果语义
//
// Extraction 用显式的变体区分三种互不等同的情况：
//
//   - KindContext: 本系统条目解码成功，携带 TraceContext 和其他厂商片段
//   - KindFlagsOnly: 没有本系统条目，但存在其他厂商的 tracestate 片段，
//     表示"该请求经过了使用本传播方案的系统，但条目已缺失"
//   - KindEmpty: 头部缺失或没有任何可用内容
//
// 调用方不得把"没有我们的条目"与"我们的条目损坏"混为一谈：
// 后者会丢弃已见到的全部状态并降级为 KindEmpty（损坏的本系统条目
// 使整个头部不再可信）。
//
// # 诊断而非错误
//
// 编解码入口对畸形输入一律返回"无结果"，同时向 Diagnostics 上报
// 一条消息模板和违规处的偏移量。两个效果相互独立、必须同时发生；
// 任何解析失败都不会以 error 形式沿调用栈向上传播。
//
// 设计决策: Diagnostics 作为接口注入而非直接依赖日志库，
// 编解码核心因此不关心诊断的存储与投递方式；默认实现落到 log/slog。
package xprop
