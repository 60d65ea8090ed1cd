package xprop

// =============================================================================
// 载体读写接口
// =============================================================================

// Getter 从载体按 key 读取头部值。
// 载体类型 C 由具体传输层决定（http.Header、metadata.MD 等，见 xcarrier 包）。
// 值不存在时 ok 为 false。
type Getter[C any] interface {
	Get(carrier C, key string) (value string, ok bool)
}

// Setter 向载体按 key 写入头部值，覆盖同名旧值。
type Setter[C any] interface {
	Set(carrier C, key, value string)
}

// GetterFunc 函数形式的 Getter 适配器。
type GetterFunc[C any] func(carrier C, key string) (string, bool)

// Get 实现 Getter。
func (f GetterFunc[C]) Get(carrier C, key string) (string, bool) {
	return f(carrier, key)
}

// SetterFunc 函数形式的 Setter 适配器。
type SetterFunc[C any] func(carrier C, key, value string)

// Set 实现 Setter。
func (f SetterFunc[C]) Set(carrier C, key, value string) {
	f(carrier, key, value)
}
