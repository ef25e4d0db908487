package main

import (
	"context"
	"fmt"
	"os"

	"github.com/uyouii/spc-algorithms/cmd/spcchart/app"
	"github.com/uyouii/spc-algorithms/utils"
)

func main() {
	defer utils.GetLogger(context.Background()).Sync()

	if err := app.NewSpcChartCommand().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
