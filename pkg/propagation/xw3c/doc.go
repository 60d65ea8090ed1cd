// Package xw3c 实现 W3C Trace Context 两个头部的编解码与组合。
//
// # 线上格式
//
// traceparent 固定格式，version 00 下总长 55 字符：
//
//	00-{32 位小写十六进制 trace ID}-{16 位小写十六进制 span ID}-{2 位 flags}
//
// 写出端在采样决策未知时省略 flags 段（总长 52）；解析端只接受完整的
// 55 字符。字符集固定为 '-' 和小写十六进制，解析端不做大小写容错——
// 以本包写下的语法为准，不追随外部规范的后续放宽。
//
// tracestate 为逗号分隔的 key=value 列表，每个参与追踪的厂商一个条目。
// 本系统条目的值就是 traceparent 固定格式；其他厂商条目不做任何解释，
// 按原始顺序逐字节保留，下次写出时折回（本系统条目始终排最前，
// 新值排在遗留厂商之前是刻意策略，不可配置）。
//
// # 解析策略
//
// 解码是全有或全无的：任何一处语法违规都使整次解析返回"无结果"，
// 同时向 Diagnostics 上报消息模板和违规偏移量，绝不抛错、绝不尽力
// 恢复部分字段。本系统条目损坏时，整次提取降级为 Empty，已见到的
// 其他厂商片段一并丢弃——条目损坏意味着整个头部不再可信。
//
// 设计决策: traceparent 解析先做一遍廉价的字符集预扫描（只放行 '-' 和
// 小写十六进制），之后的逐字段检查只会看到格式良好的字符，
// 从而能给出更精确的诊断和偏移量。
//
// # 并发
//
// 所有操作同步、无 I/O、线性时间。解析是输入区间上的纯函数；
// 写出通过 sync.Pool 租借定长缓冲，借还都在本次调用内完成，
// 不存在跨调用共享的可变缓冲。多 goroutine 可无协调地并发调用。
package xw3c
