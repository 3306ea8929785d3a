package main

import (
	"fmt"

	"github.com/fwojciec/blogdoc"
)

// Run executes the export command: re-assemble a document from
// archived posts without touching the network.
func (c *ExportCmd) Run(deps *Dependencies) error {
	blogs, err := deps.Blogs.FindBlogs(deps.Ctx, blogdoc.BlogFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}

	if len(blogs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: blog %q not found. Use 'blogdoc list' to see archived blogs.\n", c.Name)
		return blogdoc.Errorf(blogdoc.ENOTFOUND, "blog %q not found", c.Name)
	}

	blog := blogs[0]
	posts, err := deps.Posts.FindPosts(deps.Ctx, blogdoc.PostFilter{BlogID: &blog.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintf(deps.Stderr, "error: blog %q has no posts. To re-archive, run 'blogdoc delete %s --force', then 'blogdoc build %s <url>'.\n", c.Name, c.Name, c.Name)
		return blogdoc.Errorf(blogdoc.ENOTFOUND, "blog %q has no posts", c.Name)
	}

	output := c.Output
	if output == "" {
		output = defaultOutputName(blog.SourceURL, c.Format)
	}
	if err := writeDocument(posts, blog.Title, c.Format, output, deps.Converter); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (%d posts)\n", output, len(posts))
	return nil
}
