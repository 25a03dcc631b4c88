//go:build !(tinygo && bootdebug)

package app

import "oledkb/hal"

func bootDiagStart(hal.HAL)      {}
func bootScreen(hal.HAL, string) {}
