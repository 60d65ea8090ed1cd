// Package xotel 提供 TraceContext 与 OpenTelemetry trace.SpanContext 的互转。
//
// 两个模型并不完全对等：
//   - SpanContext 的 trace-flags 只有"已采样/未采样"两种取值，
//     无法表达三态里的"未知"——转换时未知按未采样处理；
//   - debug 标记没有对应位，按已采样处理（debug 至少等价于采样）；
//   - tracestate 的保留片段不经过本包，由调用方自行携带。
package xotel
