// Package markdown converts between the recruitment entities and the plain
// markdown interchange format. Import is a lossy best-effort intake path and
// export is a clean outbound path; serialize then parse does not rebuild the
// typed entity.
package markdown

import "strings"

// TitleFallback is the title of a document with no usable first line.
const TitleFallback = "Imported Document"

// Section is one heading and the body text accumulated under it.
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
	Level   int    `json:"level"`
}

// Document is the structured view of an imported markdown file.
type Document struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	// Preamble is the body text that appeared before the first section.
	Preamble string `json:"preamble,omitempty"`
	// Raw is the input exactly as given.
	Raw string `json:"rawContent"`
}

// Section returns the first section whose heading contains any of the
// keywords, compared case-insensitively.
func (d Document) Section(keywords ...string) (Section, bool) {
	for _, s := range d.Sections {
		h := strings.ToLower(s.Heading)
		for _, k := range keywords {
			if strings.Contains(h, k) {
				return s, true
			}
		}
	}
	return Section{}, false
}

// Parse scans text line by line. "# ", "## " and "### " lines open a
// section of level 1 to 3; deeper headings, lists, fences and inline markup
// are body text. The first level-1 heading is the title rather than a
// section. Without one, the first non-blank line before any section is the
// title, and failing that TitleFallback.
func Parse(text string) Document {
	doc := Document{Raw: text, Sections: []Section{}}

	body := strings.ReplaceAll(text, "\r\n", "\n")
	body = strings.TrimSuffix(body, "\n")

	var (
		heading  string
		inferred string
		current  *Section
		preamble strings.Builder
	)
	push := func() {
		if current != nil {
			doc.Sections = append(doc.Sections, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		level, h, ok := headingOf(line)
		switch {
		case ok && level == 1 && heading == "":
			push()
			heading = h
		case ok:
			push()
			current = &Section{Heading: h, Level: level}
		case current != nil:
			current.Content += line + "\n"
		default:
			if inferred == "" && strings.TrimSpace(line) != "" {
				inferred = strings.TrimSpace(line)
			}
			preamble.WriteString(line + "\n")
		}
	}
	push()

	switch {
	case heading != "":
		doc.Title = heading
	case inferred != "":
		doc.Title = inferred
	default:
		doc.Title = TitleFallback
	}
	doc.Preamble = strings.TrimSpace(preamble.String())
	return doc
}

// headingOf matches "#{1,3} text" with a non-empty remainder.
func headingOf(line string) (int, string, bool) {
	for level, prefix := range []string{"# ", "## ", "### "} {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			h := strings.TrimSpace(rest)
			if h == "" {
				return 0, "", false
			}
			return level + 1, h, true
		}
	}
	return 0, "", false
}
