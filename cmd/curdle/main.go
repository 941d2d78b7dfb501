/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/curdle/cmd/curdle/cmd"
)

func main() {
	cmd.Execute()
}
