package main

import "github.com/andribas404/aho-corasick/cmd"

func main() {
	cmd.Execute()
}
