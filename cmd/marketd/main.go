package main

import (
	"github.com/DuckMart/marketplace-engine/internal/daemon"
)

func main() {
	daemon.Execute()
}
