package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr, newSDKCatalog).Run(os.Args); err != nil {
		os.Exit(1)
	}
}
