package ioc

import "github.com/gotomicro/ego/core/econf"

// unmarshalOptional 配置项不存在时保持零值
func unmarshalOptional(key string, v any) {
	if econf.Get(key) == nil {
		return
	}
	if err := econf.UnmarshalKey(key, v); err != nil {
		panic(err)
	}
}
