package main

import "github.com/mvp-joe/splitcs/internal/cli"

func main() {
	cli.Execute()
}
