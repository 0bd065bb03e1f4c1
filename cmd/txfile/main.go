/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ypay/txfile/cmd/txfile/cmd"

func main() {
	cmd.Execute()
}
