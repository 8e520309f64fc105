// Package dom содержит вспомогательные функции для HTML-документа:
// предзагрузку изображений и расстановку ARIA-ориентиров по классам.
package dom

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PreloadImages создает по одному элементу <img> на каждый путь из paths,
// в том же порядке. Ошибки загрузки - забота клиента, который отрисует элементы.
func PreloadImages(paths []string) []*html.Node {
	images := make([]*html.Node, 0, len(paths))
	for _, path := range paths {
		images = append(images, &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Img,
			Data:     "img",
			Attr:     []html.Attribute{{Key: "src", Val: path}},
		})
	}
	return images
}

// RenderNodes записывает узлы в w, по одному на строку.
func RenderNodes(w io.Writer, nodes []*html.Node) error {
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("render %s: %w", n.Data, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
