// Command catalogctl maintains the database behind the configurator: schema, starter catalog and admin accounts.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
