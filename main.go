// Copyright © 2026 The ringlisp authors

package main

import "github.com/luthersystems/ringlisp/cmd"

func main() {
	cmd.Execute()
}
