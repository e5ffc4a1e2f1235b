package main

import (
	"os"

	"github.com/reviewdesk/admitctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
