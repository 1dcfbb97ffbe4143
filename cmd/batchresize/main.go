package main

import (
	"os"

	"github.com/mavolk/reviewkit/internal/cli"
)

func main() {
	os.Exit(cli.RunBatchResize())
}
