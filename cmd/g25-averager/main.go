package main

import (
	"context"
	"os"

	"github.com/g25-tools/g25-averager/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
