// Package main provides the kisslint CLI tool for checking KISS package recipes.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

var errorLabel = color.New(color.FgRed, color.Bold)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errViolations) {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel.Sprint("ERROR"), err)
		}
		os.Exit(1)
	}
}
