package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/PolarWolf314/titan/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, cmd.ErrReported) {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
