// Package book assembles hydrated posts into a single self-contained
// document: a cover page, a table of contents, and one section per
// post, ordered newest first. The HTML output embeds a print
// stylesheet so a browser's print-to-PDF produces a readable book.
package book

import (
	"html/template"
	"strings"
	"time"

	"github.com/fwojciec/blogdoc"
)

const displayDateLayout = "January 2, 2006"

// formatDate renders a post date for display. Undated posts are
// labeled explicitly rather than omitted.
func formatDate(date *time.Time) string {
	if date == nil {
		return "No date"
	}
	return date.Format(displayDateLayout)
}

type tocEntry struct {
	Index int
	Title string
	Date  string
}

type postSection struct {
	Index   int
	Title   string
	Date    string
	Author  string
	Content template.HTML
}

type documentData struct {
	Title     string
	PostCount int
	Generated string
	Styles    template.CSS
	TOC       []tocEntry
	Posts     []postSection
}

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>{{.Styles}}</style>
</head>
<body>
<div class="cover">
<h1>{{.Title}}</h1>
<p class="subtitle">{{.PostCount}} articles</p>
<p class="generated">Generated on {{.Generated}}</p>
</div>
<div class="toc">
<h2>Table of Contents</h2>
<ul class="toc-list">
{{range .TOC}}<li><a href="#post-{{.Index}}"><span class="title">{{.Title}}</span></a> <span class="date">({{.Date}})</span></li>
{{end}}</ul>
</div>
{{range .Posts}}<section class="post" id="post-{{.Index}}">
<div class="post-header">
<h2>{{.Title}}</h2>
<div class="post-meta">{{.Date}}{{if .Author}} - {{.Author}}{{end}}</div>
</div>
<div class="post-content">
{{.Content}}
</div>
</section>
{{end}}</body>
</html>
`

// BuildHTML assembles hydrated posts into a complete HTML document.
// Posts are reordered newest first regardless of input order. Post
// content is inserted as-is: it is trusted output of the cleaning
// pipeline, already normalized and with relative URLs resolved.
func BuildHTML(posts []*blogdoc.Post, blogTitle string) (string, error) {
	if len(posts) == 0 {
		return "", blogdoc.Errorf(blogdoc.EINVALID, "no posts to assemble")
	}
	if blogTitle == "" {
		blogTitle = blogdoc.DefaultBlogTitle
	}

	sorted := make([]*blogdoc.Post, len(posts))
	copy(sorted, posts)
	blogdoc.SortPosts(sorted)

	data := documentData{
		Title:     blogTitle,
		PostCount: len(sorted),
		Generated: time.Now().Format(displayDateLayout),
		Styles:    template.CSS(Stylesheet),
		TOC:       make([]tocEntry, 0, len(sorted)),
		Posts:     make([]postSection, 0, len(sorted)),
	}
	for i, post := range sorted {
		date := formatDate(post.Date)
		data.TOC = append(data.TOC, tocEntry{Index: i, Title: post.Title, Date: date})
		data.Posts = append(data.Posts, postSection{
			Index:   i,
			Title:   post.Title,
			Date:    date,
			Author:  post.Author,
			Content: template.HTML(post.Content),
		})
	}

	var b strings.Builder
	if err := documentTmpl.Execute(&b, data); err != nil {
		return "", blogdoc.Errorf(blogdoc.EINTERNAL, "assemble document: %v", err)
	}
	return b.String(), nil
}

// BuildMarkdown assembles hydrated posts into a single Markdown
// document: a title header, a linkless table of contents, and one
// second-level section per post converted from its cleaned HTML.
func BuildMarkdown(posts []*blogdoc.Post, blogTitle string, conv blogdoc.Converter) (string, error) {
	if len(posts) == 0 {
		return "", blogdoc.Errorf(blogdoc.EINVALID, "no posts to assemble")
	}
	if blogTitle == "" {
		blogTitle = blogdoc.DefaultBlogTitle
	}

	sorted := make([]*blogdoc.Post, len(posts))
	copy(sorted, posts)
	blogdoc.SortPosts(sorted)

	var b strings.Builder
	b.WriteString("# " + blogTitle + "\n\n")
	b.WriteString("## Table of Contents\n\n")
	for _, post := range sorted {
		b.WriteString("- " + post.Title + " (" + formatDate(post.Date) + ")\n")
	}

	for _, post := range sorted {
		md, err := conv.Convert(post.Content)
		if err != nil {
			return "", blogdoc.Errorf(blogdoc.EINTERNAL, "convert %q: %v", post.Title, err)
		}
		b.WriteString("\n---\n\n## " + post.Title + "\n\n")
		meta := formatDate(post.Date)
		if post.Author != "" {
			meta += " - " + post.Author
		}
		b.WriteString("*" + meta + "*\n\n")
		b.WriteString(strings.TrimSpace(md) + "\n")
	}
	return b.String(), nil
}
