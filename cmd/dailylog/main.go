package main

import (
	"context"

	"github.com/faizmokh/dailylog/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
