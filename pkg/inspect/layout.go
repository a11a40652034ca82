package inspect

import (
	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/script"
)

// Block is one repeatable layout unit, usually one card template
type Block struct {
	// Visual holds the tiling stride of the block
	Visual script.Visual

	// Start is the index of the VISUAL command in the sequence
	Start int

	// End is the index of the closing ENDVISUAL, -1 when the block is never closed
	End int

	// Elements are the IMAGE and TEXTFONT commands of the block, in order.
	// Order is the layering order: later elements are drawn on top.
	Elements []script.Command
}

// Closed reports whether the block has its ENDVISUAL
func (b Block) Closed() bool {
	return b.End >= 0
}

// Images returns the images of the block
func (b Block) Images() []script.Image {
	var images []script.Image
	for _, el := range b.Elements {
		if img, ok := el.(script.ImageCmd); ok {
			images = append(images, img.Image)
		}
	}
	return images
}

// Texts returns the text fields of the block
func (b Block) Texts() []script.TextFont {
	var texts []script.TextFont
	for _, el := range b.Elements {
		if tf, ok := el.(script.TextFontCmd); ok {
			texts = append(texts, tf.TextFont)
		}
	}
	return texts
}

// Problem is a structural issue found by Group
type Problem struct {
	// Index of the offending command
	Index   int
	Message string
}

// Layout is a script grouped for rendering. Document settings keep the last
// value seen, the way later lines override earlier ones.
type Layout struct {
	Unit    script.Unit
	HasUnit bool
	Page    *script.Page
	Border  *script.Border

	Links      []script.Link
	LinkMultis []string

	Blocks []Block

	// Loose are elements found outside any block
	Loose []script.Command

	Problems []Problem
}

// Group sorts commands into document settings and visual blocks. It never
// fails; structural issues end up in Layout.Problems.
func Group(commands []script.Command) Layout {
	var (
		layout  Layout
		current *Block
	)

	for i, cmd := range commands {
		switch c := cmd.(type) {
		case script.LinkMultiCmd:
			layout.LinkMultis = append(layout.LinkMultis, c.Key)
		case script.LinkCmd:
			layout.Links = append(layout.Links, c.Link)
		case script.UnitCmd:
			layout.Unit = c.Unit
			layout.HasUnit = true
		case script.PageCmd:
			page := c.Page
			layout.Page = &page
		case script.BorderCmd:
			border := c.Border
			layout.Border = &border
		case script.VisualCmd:
			if current != nil {
				layout.Problems = append(layout.Problems, Problem{
					Index:   i,
					Message: "VISUAL opened before the previous block was closed",
				})
				layout.Blocks = append(layout.Blocks, *current)
			}
			current = &Block{Visual: c.Visual, Start: i, End: -1}
		case script.ImageCmd, script.TextFontCmd:
			if current == nil {
				layout.Loose = append(layout.Loose, cmd)
				continue
			}
			current.Elements = append(current.Elements, cmd)
		case script.EndVisualCmd:
			if current == nil {
				layout.Problems = append(layout.Problems, Problem{
					Index:   i,
					Message: "ENDVISUAL without a matching VISUAL",
				})
				continue
			}
			current.End = i
			layout.Blocks = append(layout.Blocks, *current)
			current = nil
		}
	}

	if current != nil {
		layout.Problems = append(layout.Problems, Problem{
			Index:   current.Start,
			Message: "VISUAL is never closed by ENDVISUAL",
		})
		layout.Blocks = append(layout.Blocks, *current)
	}

	return layout
}

// Validate reports the first structural problem of commands as an
// UNBALANCED_VISUAL error
func Validate(commands []script.Command) error {
	layout := Group(commands)
	if len(layout.Problems) == 0 {
		return nil
	}
	p := layout.Problems[0]
	return errors.New(errors.ErrUnbalancedVisual, p.Message).
		WithDetail("index", p.Index).
		WithDetail("problems", len(layout.Problems))
}
