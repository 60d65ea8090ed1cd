// Package xcarrier 提供常见传输层载体的 Getter / Setter 适配器。
//
// 编解码核心只消费普通字符序列；头部如何从具体载体读写由本包适配：
//   - HeaderCarrier: net/http 的 http.Header
//   - MetadataCarrier: gRPC 的 metadata.MD
//
// 适配器均为无状态空结构体，可直接以零值使用、并发共享。
package xcarrier
