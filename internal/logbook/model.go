package logbook

// Entry represents one journaling submission split git-commit style: the
// first non-blank line becomes the title, content after the first blank line
// becomes the body. Only its rendered form is persisted.
type Entry struct {
	// Title is the trimmed first line. Empty means the input had no title,
	// in which case Body carries the raw input verbatim.
	Title string
	// Body is the remaining content, trimmed of surrounding whitespace.
	Body string
}

// HasTitle reports whether the entry carries a title line.
func (e Entry) HasTitle() bool {
	return e.Title != ""
}
