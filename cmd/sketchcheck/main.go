package main

import "github.com/cowboydaniel/sketchcheck/internal/cli"

func main() {
	cli.Execute()
}
