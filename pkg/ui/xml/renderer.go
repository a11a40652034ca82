// Package xml provides XML output built with etree
package xml

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/ui/display"
)

// Renderer writes each value as one indented XML document
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders one of the display view models
func (r *Renderer) RenderResult(result interface{}) error {
	doc := newDocument()
	switch v := result.(type) {
	case *display.ScriptResult:
		scriptElement(doc, v)
	case *display.CheckResult:
		checkElement(doc, v)
	case *display.StatsResult:
		statsElement(doc, v)
	default:
		return errors.Newf(errors.ErrRender, "xml output does not support %T", result)
	}
	return r.write(doc)
}

// RenderError renders an error element
func (r *Renderer) RenderError(err error) error {
	doc := newDocument()
	el := doc.CreateElement("error")
	if code := errors.GetErrorCode(err); code != "" {
		el.CreateAttr("code", string(code))
	}
	el.CreateElement("message").SetText(err.Error())
	addDetails(el, errors.GetErrorDetails(err))
	return r.write(doc)
}

// RenderMessage renders a message element
func (r *Renderer) RenderMessage(msg string) error {
	doc := newDocument()
	doc.CreateElement("message").SetText(msg)
	return r.write(doc)
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

func (r *Renderer) write(doc *etree.Document) error {
	doc.Indent(2)
	if _, err := doc.WriteTo(r.output); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write XML")
	}
	return nil
}

// scriptElement writes one <command> per entry, its fields as attributes
func scriptElement(doc *etree.Document, result *display.ScriptResult) {
	root := doc.CreateElement("script")
	root.CreateAttr("source", result.Source)
	root.CreateAttr("encoding", result.Encoding)
	for _, entry := range result.Commands {
		el := root.CreateElement("command")
		el.CreateAttr("directive", string(entry.Directive))
		for _, f := range entry.Fields() {
			el.CreateAttr(f.Name, f.Value)
		}
	}
}

func checkElement(doc *etree.Document, result *display.CheckResult) {
	root := doc.CreateElement("check")
	root.CreateAttr("strict", strconv.FormatBool(result.Strict))
	root.CreateAttr("failed", strconv.Itoa(result.Failed))
	for _, file := range result.Files {
		el := root.CreateElement("file")
		el.CreateAttr("path", file.Path)
		el.CreateAttr("ok", strconv.FormatBool(file.OK))
		if file.OK {
			continue
		}
		if file.Line > 0 {
			el.CreateAttr("line", strconv.Itoa(file.Line))
		}
		el.CreateAttr("code", string(file.Code))
		el.CreateElement("message").SetText(file.Message)
		addDetails(el, file.Details)
	}
}

func statsElement(doc *etree.Document, result *display.StatsResult) {
	root := doc.CreateElement("stats")
	root.CreateAttr("source", result.Source)
	for _, attr := range []struct {
		name  string
		value int
	}{
		{"commands", result.Commands},
		{"blocks", result.Blocks},
		{"images", result.Images},
		{"texts", result.Texts},
		{"word_wrap_texts", result.WordWrapTexts},
		{"loose_elements", result.LooseElements},
		{"problems", result.Problems},
	} {
		root.CreateAttr(attr.name, strconv.Itoa(attr.value))
	}
	for _, c := range result.Counts {
		el := root.CreateElement("count")
		el.CreateAttr("directive", string(c.Directive))
		el.SetText(strconv.Itoa(c.Count))
	}
}

// addDetails writes details sorted by name for stable output
func addDetails(parent *etree.Element, details map[string]interface{}) {
	names := make([]string, 0, len(details))
	for name := range details {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		el := parent.CreateElement("detail")
		el.CreateAttr("name", name)
		el.CreateAttr("value", fmt.Sprint(details[name]))
	}
}
