package dom

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

const (
	rolePrefix  = "aria-landmark-"
	labelPrefix = "aria-label-"
)

// DefaultLandmarkRoles возвращает список разрешенных по умолчанию значений role.
func DefaultLandmarkRoles() []string {
	return []string{
		"banner",
		"complementary",
		"contentinfo",
		"form",
		"main",
		"navigation",
		"region",
		"search",
		"alert",
		"log",
		"marquee",
		"status",
		"timer",
	}
}

// AddLandmarks проставляет атрибуты role и aria-label элементам, в атрибуте class
// которых встречается "aria-landmark-". Класс aria-landmark-<role> задает role,
// если он есть в allowed (nil - DefaultLandmarkRoles). Класс aria-label-<text>
// задает aria-label, где '-' и '_' заменяются пробелами.
// Существующие атрибуты не перезаписываются. Возвращает число записанных атрибутов.
func AddLandmarks(root *html.Node, allowed []string) int {
	if allowed == nil {
		allowed = DefaultLandmarkRoles()
	}

	written := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			written += tagElement(n, allowed)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return written
}

func tagElement(n *html.Node, allowed []string) int {
	class, ok := attr(n, "class")
	if !ok || !strings.Contains(class, rolePrefix) {
		return 0
	}

	written := 0
	for _, item := range strings.FieldsFunc(class, isASCIISpace) {
		if role, isRole := strings.CutPrefix(item, rolePrefix); isRole {
			if _, has := attr(n, "role"); !has && slices.Contains(allowed, role) {
				setAttr(n, "role", role)
				written++
			}
		}
		if label, isLabel := strings.CutPrefix(item, labelPrefix); isLabel {
			if _, has := attr(n, "aria-label"); !has {
				setAttr(n, "aria-label", strings.NewReplacer("-", " ", "_", " ").Replace(label))
				written++
			}
		}
	}
	return written
}

// isASCIISpace совпадает с разделителями классов в HTML: пробел, \t, \n, \f, \r.
// Неразрывный пробел и другие пробелы Unicode частью разделителя не считаются.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// TagLandmarks разбирает HTML из r, вызывает AddLandmarks и записывает результат в w.
func TagLandmarks(r io.Reader, w io.Writer, allowed []string) (int, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("parse html: %w", err)
	}
	written := AddLandmarks(doc, allowed)
	if err := html.Render(w, doc); err != nil {
		return written, fmt.Errorf("render html: %w", err)
	}
	return written, nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
