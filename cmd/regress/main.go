// Command regress fits ordinary least squares regressions to CSV data,
// either once over the whole file or over rolling windows.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
