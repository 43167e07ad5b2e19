package river

import (
	_ "embed"
	"fmt"
)

//go:embed default.design
var defaultDesignRaw []byte

// DefaultDesign returns the built-in scene design.
// The embedded file is part of the binary; failing to parse it is a
// programming error, not a runtime condition.
func DefaultDesign() []DesignLine {
	lines, err := ParseDesign(defaultDesignRaw)
	if err != nil {
		panic(fmt.Sprintf("river: embedded default design is invalid: %v", err))
	}
	return lines
}
