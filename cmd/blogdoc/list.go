package main

import (
	"fmt"

	"github.com/fwojciec/blogdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	blogs, err := deps.Blogs.FindBlogs(deps.Ctx, blogdoc.BlogFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}

	if len(blogs) == 0 {
		fmt.Fprintln(deps.Stdout, "No blogs archived. Use 'blogdoc build' to archive one.")
		return nil
	}

	for _, b := range blogs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", b.ID, b.Name, b.SourceURL)
	}

	return nil
}
