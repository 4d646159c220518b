package main

import "github.com/depsolve/vercompat/cmd"

func main() {
	cmd.Execute()
}
