package main

import "seolink/cmd/seolink-cli/cmd"

func main() {
	cmd.Execute()
}
