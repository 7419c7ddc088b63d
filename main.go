package main

import "github.com/MitraDarja/minimiser/cmd"

func main() {
	cmd.Execute()
}
