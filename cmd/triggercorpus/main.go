// Command triggercorpus builds paired clean and triggered text corpora.
package main

import (
	"os"

	"github.com/custodia-labs/triggercorpus/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
