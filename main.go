package main

import "github.com/mad4j/rustedbytes-pages/cmd"

func main() {
	cmd.Execute()
}
