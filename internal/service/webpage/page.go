package webpage

import (
	"github.com/sandevgo/patterns/pkg/variant"
)

const BaseContent = "Basic Web Page"

type Page interface {
	Content() string
}

type basicPage struct{}

func (basicPage) Content() string {
	return BaseContent
}

func NewBasicPage() Page {
	return basicPage{}
}

type Style int

const (
	DarkMode Style = iota
	LightMode
	Border
	BackgroundImage
)

func (s Style) String() string {
	switch s {
	case DarkMode:
		return "DarkMode"
	case LightMode:
		return "LightMode"
	case Border:
		return "Border"
	case BackgroundImage:
		return "BackgroundImage"
	}
	return "Style(?)"
}

var Styles = variant.NewSet(DarkMode, LightMode, Border, BackgroundImage)

func (s Style) suffix() string {
	switch s {
	case DarkMode:
		return " with Dark Mode Styling"
	case LightMode:
		return " with Light Mode Styling"
	case Border:
		return " with Border Styling"
	case BackgroundImage:
		return " with Background Image"
	}
	return ""
}

// decorated wraps another page and appends its style to the content.
type decorated struct {
	inner Page
	style Style
}

func (d *decorated) Content() string {
	return d.inner.Content() + d.style.suffix()
}

func Decorate(p Page, s Style) Page {
	return &decorated{inner: p, style: s}
}

// Editor holds the page currently being styled.
type Editor struct {
	current Page
}

func NewEditor() *Editor {
	return &Editor{current: NewBasicPage()}
}

func (e *Editor) Page() Page {
	return e.current
}

func (e *Editor) Apply(s Style) Page {
	e.current = Decorate(e.current, s)
	return e.current
}

func (e *Editor) Reset() {
	e.current = NewBasicPage()
}

// Undo peels the outermost style. It reports false on an unstyled page.
func (e *Editor) Undo() bool {
	d, ok := e.current.(*decorated)
	if !ok {
		return false
	}
	e.current = d.inner
	return true
}
