package main

import (
	"fmt"
	"strings"

	"github.com/hexaflex/c8/devices/keypad"
)

// keypadRows is the arrangement of the hexadecimal keypad.
var keypadRows = [4][4]int{
	{0x1, 0x2, 0x3, 0xc},
	{0x4, 0x5, 0x6, 0xd},
	{0x7, 0x8, 0x9, 0xe},
	{0xa, 0x0, 0xb, 0xf},
}

// keypadHelp describes which physical keys the layout binds.
func keypadHelp(layout keypad.Layout) string {
	var sb strings.Builder
	sb.WriteString("keypad:\n")

	for _, row := range keypadRows {
		sb.WriteString(" ")
		for _, k := range row {
			fmt.Fprintf(&sb, " %X", k)
		}
		sb.WriteString("  ->")
		for _, k := range row {
			code := layout[k]
			if code == 0 {
				code = '-'
			}
			fmt.Fprintf(&sb, " %c", code)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
