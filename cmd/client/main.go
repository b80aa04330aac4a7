package main

import "todosync/cmd/client/cmd"

func main() {
	cmd.Execute()
}
