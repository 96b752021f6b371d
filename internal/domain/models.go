package domain

import "strings"

// Tag is a display string shown as a removable chip
type Tag string

// Tags converts plain strings into tags
func Tags(values []string) []Tag {
	out := make([]Tag, len(values))
	for i, v := range values {
		out[i] = Tag(v)
	}
	return out
}

// Strings converts tags back into plain strings
func Strings(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

// Query is what the host searches for: every tag must match, text is free
type Query struct {
	Tags []Tag
	Text string
}

// IsEmpty reports whether the query has neither tags nor text
func (q Query) IsEmpty() bool {
	return len(q.Tags) == 0 && strings.TrimSpace(q.Text) == ""
}

// Document is one searchable entry of the demo corpus
type Document struct {
	ID    int
	Title string
	Body  string
}
