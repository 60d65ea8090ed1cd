package xcarrier

import (
	"google.golang.org/grpc/metadata"

	"github.com/WillTong/brave/pkg/propagation/xprop"
)

// MetadataCarrier 适配 gRPC 的 metadata.MD。
// key 按 gRPC 惯例小写处理，同名多值时取第一个。
type MetadataCarrier struct{}

var (
	_ xprop.Getter[metadata.MD] = MetadataCarrier{}
	_ xprop.Setter[metadata.MD] = MetadataCarrier{}
)

// Get 实现 xprop.Getter。
func (MetadataCarrier) Get(md metadata.MD, key string) (string, bool) {
	values := md.Get(key)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Set 实现 xprop.Setter，覆盖同名旧值。md 为 nil 时不做任何事
// （nil map 无法写入，调用方应先用 metadata.MD{} 初始化）。
func (MetadataCarrier) Set(md metadata.MD, key, value string) {
	if md == nil {
		return
	}
	md.Set(key, value)
}
