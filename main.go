package main

import "bistro-boss/cmd"

func main() {
	cmd.Execute()
}
