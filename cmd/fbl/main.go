package main

import (
	"fmt"
	"os"

	"github.com/feedbacklab/feedbacklab/internal/command"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
