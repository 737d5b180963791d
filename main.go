package main

import (
	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/cli"
)

func main() {
	cli.Execute()
}
