package main

import (
	"fmt"

	"github.com/fwojciec/blogdoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return blogdoc.Errorf(blogdoc.EINVALID, "use --force to confirm deletion")
	}

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
	if err := deps.Blogs.DeleteBlog(deps.Ctx, blog.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted blog %q\n", blog.Name)
	return nil
}
