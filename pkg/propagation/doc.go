// Package propagation 提供链路追踪上下文跨进程传播相关的子包。
//
// 子包列表：
//   - xprop: 传播层共享模型（TraceContext、提取结果、载体与诊断接口）
//   - xw3c: W3C Trace Context 头部编解码（traceparent / tracestate）
//   - xcarrier: http.Header 与 gRPC metadata.MD 载体适配器
//   - xotel: 与 OpenTelemetry trace.SpanContext 的互转
//
// 设计原则：
//   - 编解码只处理字符序列与偏移量，不关心头部如何从具体载体读写
//   - 畸形输入一律返回"无结果"并上报诊断，绝不向调用栈抛错
//   - 其他厂商的 tracestate 条目逐字节保留，重新序列化不破坏别家数据
package propagation
