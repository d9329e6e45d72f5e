package dbg

import (
	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Deep dump of any value, including unexported fields such as a triangle's
// derived circumcircle.
func Dump(values ...interface{}) string {
	return dumpConfig.Sdump(values...)
}
