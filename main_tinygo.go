//go:build tinygo && baremetal

package main

import (
	"oledkb/app"
	"oledkb/hal"
)

func main() {
	app.Run(hal.New())
}
