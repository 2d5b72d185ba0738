package document

import "strings"

// Document is the root of a parsed document.
type Document struct {
	Title    string     // Document title (from metadata or filename)
	Sections []*Section // Top-level sections
}

// Section is a recursive section in the document.
type Section struct {
	Heading  string     // Section heading (empty for leaf text)
	Text     string     // Body text (may be empty for container sections)
	Page     int        // Source page (0 if N/A)
	Children []*Section // Subsections
}

// Text flattens the document depth-first into the string that gets diffed:
// each heading and each body on its own block, blocks separated by a blank line.
func (d *Document) Text() string {
	var blocks []string
	var walk func([]*Section)
	walk = func(sections []*Section) {
		for _, s := range sections {
			if s.Heading != "" {
				blocks = append(blocks, s.Heading)
			}
			if s.Text != "" {
				blocks = append(blocks, s.Text)
			}
			walk(s.Children)
		}
	}
	walk(d.Sections)
	return strings.Join(blocks, "\n\n")
}

// Outline nests sections under headings by level. Level 0 is the implicit
// root; text added before any heading belongs to it.
type Outline struct {
	root    *Section
	stack   []outlineEntry
	pending strings.Builder
}

type outlineEntry struct {
	section *Section
	level   int
}

func NewOutline() *Outline {
	root := &Section{}
	return &Outline{root: root, stack: []outlineEntry{{section: root, level: 0}}}
}

// Heading closes the current text block and opens a section at level.
func (o *Outline) Heading(level int, heading string) {
	o.flush()
	s := &Section{Heading: heading}
	for len(o.stack) > 1 && o.stack[len(o.stack)-1].level >= level {
		o.stack = o.stack[:len(o.stack)-1]
	}
	parent := o.stack[len(o.stack)-1].section
	parent.Children = append(parent.Children, s)
	o.stack = append(o.stack, outlineEntry{section: s, level: level})
}

// Paragraph appends a block of body text to the current section.
func (o *Outline) Paragraph(text string) {
	if text == "" {
		return
	}
	if o.pending.Len() > 0 {
		o.pending.WriteString("\n\n")
	}
	o.pending.WriteString(text)
}

func (o *Outline) flush() {
	t := strings.TrimSpace(o.pending.String())
	o.pending.Reset()
	if t == "" {
		return
	}
	top := o.stack[len(o.stack)-1].section
	if top.Text != "" {
		top.Text += "\n\n" + t
	} else {
		top.Text = t
	}
}

// Sections returns the top-level sections. Without any headings, all text
// ends up in a single section.
func (o *Outline) Sections() []*Section {
	o.flush()
	if len(o.root.Children) == 0 && o.root.Text != "" {
		return []*Section{{Text: o.root.Text}}
	}
	if o.root.Text != "" {
		// Text before the first heading.
		return append([]*Section{{Text: o.root.Text}}, o.root.Children...)
	}
	return o.root.Children
}
