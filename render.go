package easynews

import (
	"strconv"
	"strings"
)

// RenderArticle renders an article and its body fragments as a standalone
// HTML document. The output depends only on its inputs.
//
// The title is written verbatim since it carries ruby markup. Fragments that
// are empty after trimming produce no list item.
func RenderArticle(a *Article, fragments []string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n\t<head>\n")
	b.WriteString("\t\t<meta http-equiv=\"Content-Type\" content=\"text/html; charset=utf-8\">\n")
	b.WriteString("\t\t<title>" + a.TitleWithRuby + "</title>\n")
	b.WriteString("\t</head>\n\t<body>\n")
	b.WriteString("\t\t<ul>\n")
	b.WriteString("\t\t\t<li>Title: " + a.TitleWithRuby + "</li>\n")
	b.WriteString("\t\t\t<li>Priority: " + strconv.Itoa(a.Priority) + "</li>\n")
	b.WriteString("\t\t\t<li>Date: " + a.PrearrangedTime + "</li>\n")
	b.WriteString("\t\t\t<li>Id: " + a.ID + "</li>\n")
	b.WriteString("\t\t</ul>\n")
	b.WriteString("\t\t<ol>\n")
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		b.WriteString("\t\t\t<li>" + f + "</li>\n")
	}
	b.WriteString("\t\t</ol>\n")
	b.WriteString("\t</body>\n</html>")
	return b.String()
}
