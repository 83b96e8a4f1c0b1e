package types

import (
	"cosmossdk.io/errors"
)

const ModuleName = "g25-averager"

// Averager errors
var (
	ErrUsage        = errors.Register(ModuleName, 2, "invalid usage")
	ErrInputFile    = errors.Register(ModuleName, 3, "failed to read input file")
	ErrParse        = errors.Register(ModuleName, 4, "malformed coordinate line")
	ErrEmptyInput   = errors.Register(ModuleName, 5, "no valid samples")
	ErrOutputWrite  = errors.Register(ModuleName, 6, "failed to write output")
	ErrInvalidLabel = errors.Register(ModuleName, 7, "invalid output label")
	ErrConfig       = errors.Register(ModuleName, 8, "invalid configuration")
)
