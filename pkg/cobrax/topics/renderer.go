package topics

// Renderer formats topic content for the terminal. format is the topic
// file's extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, _ string) string {
	return content
}
