// cmd/cardstack-raylib/main.go
package main

import "github.com/waozixyz/cardstack/internal/app"

func main() {
	app.Run()
}
