// SPDX-License-Identifier: MIT

package builder

import "fmt"

// Method tags used in error context.
const (
	methodChain         = "Chain"
	methodRandomSystem  = "RandomSystem"
	methodRandomSystems = "RandomSystems"
)

// builderErrorf returns an error of the form "<method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
