// Пакет main является точкой входа для утилиты frontkit.
// Вся логика команд находится в internal/cmd.
package main

import (
	"fmt"
	"os"

	"web/frontkit/internal/cmd"
)

// Информация о версии задается через ldflags при сборке.
// Пример: go build -ldflags="-X main.version=1.0.0 -X main.commit=abc123 -X main.buildDate=2026-10-19"
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}
