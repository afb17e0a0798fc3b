// Package document decodes files into analyzable plain text.
//
// Supported inputs: DOCX (Office Open XML), legacy DOC (best-effort
// printable-text extraction), PDF, Markdown, and plain text in UTF-8, GBK,
// GB18030, or UTF-16. The analysis engine treats the decoded string as
// opaque text; all encoding logic lives here.
package document
