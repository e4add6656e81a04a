package main

import (
	"fmt"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	// Register the DecodeLines function.
	_ "numcore.dev/ncd"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := funcframework.Start(port); err != nil {
		fmt.Println("Error starting function host:", err)
		os.Exit(1)
	}
}
