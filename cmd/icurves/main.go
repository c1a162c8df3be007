// Command icurves lays out Euler diagrams from informal descriptions.
//
//	icurves render "a b c ab ac bc abc" --out venn3.svg
//	icurves render --example Venn-4 --format png --out venn4.png
//	icurves render --watch diagram.txt --out diagram.svg
//	icurves plan "a b ab"
//	icurves examples
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
