package config

import "errors"

// ErrInvalidConfig 配置内容不合法
// 所有 Validate() 返回的错误都包装了它，调用方可以用 errors.Is 判断
var ErrInvalidConfig = errors.New("invalid config")
