package main

import "github.com/tablewise/tablewise/cmd"

func main() {
	cmd.Execute()
}
