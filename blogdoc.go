// Package blogdoc turns an engineering blog into a single ordered,
// printable document. It discovers posts from a blog's index pages,
// follows pagination, extracts and cleans each post's article body,
// and normalizes the text for print.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, crawl/).
package blogdoc
