package registry

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// String renders every category as a block, separated by an empty line.
func (r *Registry) String() string {
	var b strings.Builder
	for i := range r.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		r.Categories[i].writeTo(&b)
	}
	return b.String()
}

// String renders the category header followed by each key with its value
// indented beneath it.
func (c *Category) String() string {
	var b strings.Builder
	c.writeTo(&b)
	return b.String()
}

func (c *Category) writeTo(b *strings.Builder) {
	b.WriteString("┌─ Category: " + c.Name + "\n")
	b.WriteString("| \n")

	for i, v := range c.Variables {
		width := runewidth.StringWidth(v.Key)
		if i == len(c.Variables)-1 {
			b.WriteString("└─ " + v.Key + "\n")
			b.WriteString(strings.Repeat(" ", width+2))
		} else {
			b.WriteString("├─ " + v.Key + "\n")
			b.WriteString("| " + strings.Repeat(" ", width))
		}
		b.WriteString("└─ " + v.Value + "\n")
	}
}
