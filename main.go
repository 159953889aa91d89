package main

import "github.com/chrisdamba/menuengine/cmd"

func main() {
	cmd.Execute()
}
