package xcarrier

import (
	"net/http"

	"github.com/WillTong/brave/pkg/propagation/xprop"
)

// HeaderCarrier 适配 http.Header。
// Get 对 key 大小写不敏感（http.Header 的规范化语义），
// 同名多值时取第一个。
type HeaderCarrier struct{}

var (
	_ xprop.Getter[http.Header] = HeaderCarrier{}
	_ xprop.Setter[http.Header] = HeaderCarrier{}
)

// Get 实现 xprop.Getter。
func (HeaderCarrier) Get(h http.Header, key string) (string, bool) {
	if h == nil {
		return "", false
	}
	values := h.Values(key)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Set 实现 xprop.Setter，覆盖同名旧值。h 为 nil 时不做任何事。
func (HeaderCarrier) Set(h http.Header, key, value string) {
	if h == nil {
		return
	}
	h.Set(key, value)
}
