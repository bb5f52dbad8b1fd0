//go:build cli
// +build cli

package main

import (
	"bundle-inventory.GO/cmd"
	"bundle-inventory.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
