// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package page

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Netcracker/qubership-reviews-showcase/view"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	ReviewsSectionId = "reviews-1672"
	CardGroupClass   = "cs-card-group"
	ItemClass        = "cs-item"
)

// RefreshButtonId is the button the page script binds to /reviews/fragment.
const RefreshButtonId = "js-refresh-reviews"

// Template is the raw page markup. Every render works on a freshly parsed Document.
type Template struct {
	markup []byte
}

func NewTemplate(markup []byte) *Template {
	return &Template{markup: markup}
}

func LoadTemplate(path string) (*Template, error) {
	markup, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewTemplate(markup), nil
}

func (t *Template) NewDocument() (*Document, error) {
	return Parse(bytes.NewReader(t.markup))
}

type Document struct {
	root *html.Node
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Document{root: root}, nil
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// RenderElement writes the outer markup of the element with the given id.
func (d *Document) RenderElement(w io.Writer, id string) (bool, error) {
	n := d.ElementById(id)
	if n == nil {
		return false, nil
	}
	return true, html.Render(w, n)
}

func (d *Document) ElementById(id string) *html.Node {
	return findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && getAttr(n, "id") == id
	})
}

// CardGroups returns the list containers of the reviews section in document order.
func (d *Document) CardGroups() []*html.Node {
	section := d.ElementById(ReviewsSectionId)
	if section == nil {
		return nil
	}
	var groups []*html.Node
	walk(section, func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, CardGroupClass) {
			groups = append(groups, n)
		}
	})
	return groups
}

// ApplyReviews replaces the content of the card groups with items and returns how many items were placed.
// Items addressed to a missing container are skipped.
func (d *Document) ApplyReviews(items []view.RenderItem) int {
	groups := d.CardGroups()
	if len(groups) == 0 {
		return 0
	}
	for _, g := range groups {
		clearChildren(g)
	}
	placed := 0
	for _, item := range items {
		if item.Container < 0 || item.Container >= len(groups) {
			continue
		}
		groups[item.Container].AppendChild(newItemNode(item))
		placed++
	}
	return placed
}

func newItemNode(item view.RenderItem) *html.Node {
	li := newElement(atom.Li, html.Attribute{Key: "class", Val: ItemClass})

	wrapper := newElement(atom.Div, html.Attribute{Key: "class", Val: "wrapper"})
	review := newElement(atom.P, html.Attribute{Key: "class", Val: "cs-review"})
	appendMarkup(review, item.Comment)
	wrapper.AppendChild(review)
	wrapper.AppendChild(newImage("cs-item-stars", item.StarsImage, "stars", "96", "16"))
	li.AppendChild(wrapper)

	flexGroup := newElement(atom.Div, html.Attribute{Key: "class", Val: "cs-flex-group"})
	flexGroup.AppendChild(&html.Node{Type: html.TextNode, Data: "— "})
	name := newElement(atom.Span, html.Attribute{Key: "class", Val: "cs-name"})
	appendMarkup(name, item.ReviewerName)
	flexGroup.AppendChild(name)
	li.AppendChild(flexGroup)

	li.AppendChild(newImage("cs-quote", item.QuoteImage, "quote icon", "120", "99"))
	return li
}

func newImage(class, src, alt, width, height string) *html.Node {
	return newElement(atom.Img,
		html.Attribute{Key: "class", Val: class},
		html.Attribute{Key: "src", Val: src},
		html.Attribute{Key: "alt", Val: alt},
		html.Attribute{Key: "width", Val: width},
		html.Attribute{Key: "height", Val: height},
		html.Attribute{Key: "aria-hidden", Val: "true"},
		html.Attribute{Key: "loading", Val: "lazy"},
		html.Attribute{Key: "decoding", Val: "async"},
	)
}

func newElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

// appendMarkup inserts trusted markup as children of parent.
func appendMarkup(parent *html.Node, markup string) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: markup})
		return
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

func clearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
