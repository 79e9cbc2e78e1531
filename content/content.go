// Package content supplies the cell labels: built-in emoji and number
// sets, plus Starlark scripts for anything custom.
package content

import "strconv"

var emoji = []string{
	"😀", "😎", "🤖", "👻", "🦊", "🐙", "🐸", "🦉",
	"🌵", "🍄", "🌈", "⚡", "🔥", "❄️", "🌊", "🌙",
	"🍉", "🍋", "🍇", "🍩", "🍜", "🍕", "☕", "🧊",
	"🎈", "🎲", "🎧", "🎨", "🚀", "⚓", "🗝️", "💎",
	"🧭", "🔭", "🪐", "🌻", "🐝", "🦋", "🐚", "🪁",
}

// Emoji returns n labels cycling through the built-in emoji set.
func Emoji(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = emoji[i%len(emoji)]
	}
	return out
}

// Labels returns the decimal labels "0" through n-1.
func Labels(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
