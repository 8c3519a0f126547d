package main

import "github.com/vietdv277/credpaste/cmd"

func main() {
	cmd.Execute()
}
