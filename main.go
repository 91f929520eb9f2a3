package main

import "github.com/notargets/objnorm/cmd"

func main() {
	cmd.Execute()
}
