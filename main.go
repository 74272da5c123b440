package main

import (
	"log/slog"

	"github.com/mistweaverco/skeleton/cmd/skeleton"
	"github.com/mistweaverco/skeleton/internal/lib/log"
)

func main() {
	slog.SetDefault(log.NewLogger())
	skeleton.Execute()
}
