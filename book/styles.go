package book

// Stylesheet is the print stylesheet embedded in assembled HTML
// documents. It targets paged output (A4, running header and page
// numbers via @page rules) so printing the document to PDF yields a
// readable book; screen rendering degrades gracefully.
const Stylesheet = `
@page {
    size: A4;
    margin: 2cm;

    @top-center {
        content: string(blog-title);
        font-size: 10pt;
        color: #666;
    }

    @bottom-center {
        content: counter(page);
        font-size: 10pt;
        color: #666;
    }
}

@page :first {
    @top-center {
        content: none;
    }
}

* {
    box-sizing: border-box;
}

body {
    font-family: 'Georgia', 'Times New Roman', serif;
    font-size: 11pt;
    line-height: 1.6;
    color: #333;
    max-width: 100%;
}

h1 {
    string-set: blog-title content();
    font-size: 20pt;
    font-weight: bold;
    color: #1a1a1a;
    margin-bottom: 0.5em;
    text-align: center;
}

h2 {
    font-size: 14pt;
    font-weight: bold;
    color: #2a2a2a;
    margin-top: 1.5em;
    margin-bottom: 0.5em;
    page-break-after: avoid;
}

h3 {
    font-size: 12pt;
    font-weight: bold;
    color: #3a3a3a;
    margin-top: 1em;
    margin-bottom: 0.5em;
    page-break-after: avoid;
}

h4, h5, h6 {
    font-size: 11pt;
    font-weight: bold;
    color: #3a3a3a;
    margin-top: 0.8em;
    margin-bottom: 0.4em;
    page-break-after: avoid;
}

p {
    margin-bottom: 1em;
    text-align: justify;
    orphans: 3;
    widows: 3;
}

a {
    color: #0066cc;
    text-decoration: none;
}

code {
    font-family: 'Courier New', Courier, monospace;
    font-size: 9pt;
    background-color: #f5f5f5;
    padding: 0.2em 0.4em;
    border-radius: 3px;
    word-break: break-all;
    overflow-wrap: break-word;
}

pre {
    font-family: 'Courier New', Courier, monospace;
    font-size: 8pt;
    background-color: #f5f5f5;
    padding: 1em;
    border-radius: 5px;
    overflow-x: hidden;
    white-space: pre-wrap;
    word-wrap: break-word;
    word-break: break-all;
    page-break-inside: avoid;
    max-width: 100%;
}

pre code {
    background: none;
    padding: 0;
    font-size: 8pt;
    word-break: break-all;
}

img {
    max-width: 100%;
    max-height: 12cm;
    width: auto;
    height: auto;
    display: block;
    margin: 1em auto;
    object-fit: contain;
}

blockquote {
    border-left: 3px solid #ddd;
    margin-left: 0;
    padding-left: 1em;
    color: #666;
    font-style: italic;
}

table {
    width: auto;
    max-width: 100%;
    border-collapse: collapse;
    margin: 1em 0;
    page-break-inside: avoid;
    font-size: 9pt;
}

th, td {
    border: 1px solid #ddd;
    padding: 0.3em 0.5em;
    text-align: left;
    white-space: nowrap;
}

td:last-child, th:last-child {
    white-space: normal;
}

th {
    background-color: #f5f5f5;
    font-weight: bold;
}

sup, sub {
    font-size: 0.75em;
    line-height: 0;
    position: relative;
    vertical-align: baseline;
}

sup {
    top: -0.5em;
}

sub {
    bottom: -0.25em;
}

ul, ol {
    margin-bottom: 1em;
    padding-left: 2em;
}

li {
    margin-bottom: 0.3em;
}

hr {
    border: none;
    border-top: 1px solid #ddd;
    margin: 2em 0;
}

.footnotes {
    font-size: 9pt;
    margin-top: 2em;
}

.footnotes hr {
    margin: 1em 0;
}

.footnotes ol {
    margin-bottom: 0;
    padding-left: 1.5em;
}

.footnotes li {
    margin-bottom: 0.5em;
}

.footnotes li p {
    margin-bottom: 0;
    display: inline;
}

.footnotes .footnote-backref {
    margin-left: 0.3em;
    text-decoration: none;
}

.cover {
    text-align: center;
    padding-top: 30%;
    page-break-after: always;
}

.cover h1 {
    font-size: 24pt;
    margin-bottom: 0.5em;
}

.cover .subtitle {
    font-size: 12pt;
    color: #666;
    margin-bottom: 2em;
}

.cover .generated {
    font-size: 11pt;
    color: #888;
}

.toc {
    page-break-after: always;
}

.toc h2 {
    text-align: center;
    margin-bottom: 1em;
    font-size: 16pt;
}

.toc-list {
    list-style-type: disc;
    padding-left: 2em;
}

.toc-list li {
    margin-bottom: 0.6em;
    line-height: 1.4;
}

.toc-list .title {
    font-weight: normal;
}

.toc-list .date {
    color: #666;
    margin-left: 0.5em;
}

.toc-list a {
    color: inherit;
    text-decoration: none;
}

.post {
    page-break-before: always;
}

.post:first-of-type {
    page-break-before: auto;
}

.post-header {
    margin-bottom: 1.5em;
    border-bottom: 2px solid #333;
    padding-bottom: 0.5em;
}

.post-header h2 {
    margin-top: 0;
    margin-bottom: 0.25em;
    font-size: 16pt;
}

.post-meta {
    color: #666;
    font-size: 10pt;
}

.post-content {
    overflow-wrap: break-word;
    word-wrap: break-word;
    max-width: 100%;
}

.post-content * {
    max-width: 100%;
    overflow-wrap: break-word;
}

.post-content nav,
.post-content .navigation,
.post-content .comments,
.post-content .share-buttons,
.post-content .related-posts,
.post-content .read-more,
.post-content .editor,
.post-content .playground,
.post-content .toolbar,
.post-content .action-bar,
.post-content footer,
.post-content button,
.post-content input,
.post-content form,
.post-content iframe {
    display: none !important;
}
`
