package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hayeah/nirw"
)

func main() {
	app, cleanup, err := nirw.InitApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nirw: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = app.Run(ctx)
	stop()
	cleanup()

	if err != nil {
		fmt.Fprintf(os.Stderr, "nirw: %v\n", err)
		os.Exit(1)
	}
}
