// Package docmirror mirrors documentation websites into a local Markdown
// corpus. It fetches configured page sets, extracts the documentation body
// from each page, converts it to Markdown with downloaded image assets, and
// generates a table-of-contents index per source.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, http/).
package docmirror
