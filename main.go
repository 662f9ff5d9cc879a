package main

import "github.com/kparal/dh-open/cmd"

func main() {
	cmd.Execute()
}
