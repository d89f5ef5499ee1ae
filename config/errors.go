package config

import "errors"

// ErrInvalidConfig indicates a configuration that cannot be decoded or
// fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")
