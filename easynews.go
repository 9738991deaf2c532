// Package easynews downloads NHK News Web Easy articles into a local archive.
// It fetches the news index, selects a window of publication dates, extracts
// each article body from its page, re-renders it as a normalized HTML document
// and stores it next to the article's dictionary file.
//
// This package contains domain types, pure functions and interfaces following
// Ben Johnson's Standard Package Layout. Implementations live in subdirectories
// named after their primary dependency (e.g., goquery/, sqlite/, http/).
package easynews
