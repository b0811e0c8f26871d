package main

import (
	"github.com/NVIDIA/podinfo/pkg/cli"
)

func main() {
	cli.Execute()
}
