package main

import "github.com/yoockh/jobboard/internal/cli"

func main() {
	cli.Execute()
}
