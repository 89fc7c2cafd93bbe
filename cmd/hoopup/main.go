package main

import (
	"github.com/abdisalam/hoopup-cli/internal/cli"
	"github.com/abdisalam/hoopup-cli/internal/common/logtrace"
)

func init() {
	logtrace.InitLogger()
}

func main() {
	cli.Execute()
}
