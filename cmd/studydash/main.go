package main

import "studydash/cmd/studydash/root"

func main() {
	root.Execute()
}
