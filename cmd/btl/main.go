package main

import "github.com/INTERPOLALERT/back-to-life/cmd/btl/root"

func main() {
	root.Execute()
}
