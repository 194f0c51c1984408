package datapacks

import "errors"

var ErrInvalidName = errors.New("invalid datapack name")
