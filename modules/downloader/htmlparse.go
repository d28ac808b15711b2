package downloader

import (
	"io"
	neturl "net/url"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// parsedPage is what one fetched document contributes to the index.
type parsedPage struct {
	Title    string
	Summary  string
	Icon     string
	Words    []string
	Outlinks []string
}

// parsePage tokenizes the document at base: the title, the meta
// description, the favicon, the lowercased purely-alphanumeric body words
// minus stop words, and the absolutized outgoing links.
func parsePage(base *neturl.URL, body io.Reader, stopWords map[string]struct{}) (parsedPage, error) {
	doc, err := html.Parse(body)
	if err != nil {
		return parsedPage{}, err
	}

	var (
		page  parsedPage
		words = make(map[string]struct{})
		links = make(map[string]struct{})
	)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if page.Title == "" {
					page.Title = strings.TrimSpace(textContent(n))
				}
			case "meta":
				if attr(n, "name") == "description" && page.Summary == "" {
					page.Summary = strings.TrimSpace(attr(n, "content"))
				}
			case "link":
				rel := strings.ToLower(attr(n, "rel"))
				if (rel == "icon" || rel == "shortcut icon") && page.Icon == "" {
					if u := resolve(base, attr(n, "href")); u != "" {
						page.Icon = u
					}
				}
			case "a":
				if u := resolve(base, attr(n, "href")); u != "" {
					links[u] = struct{}{}
				}
			}
		}
		if n.Type == html.TextNode {
			collectWords(n.Data, stopWords, words)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	page.Words = sortedKeys(words)
	page.Outlinks = sortedKeys(links)
	return page, nil
}

// collectWords keeps the lowercased, purely-alphanumeric,
// whitespace-separated tokens that are not stop words.
func collectWords(text string, stopWords map[string]struct{}, into map[string]struct{}) {
	for _, tok := range strings.Fields(text) {
		if !alphanumeric(tok) {
			continue
		}
		w := strings.ToLower(tok)
		if _, stop := stopWords[w]; stop {
			continue
		}
		into[w] = struct{}{}
	}
}

func alphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// resolve absolutizes href against base, dropping fragments and anything
// that is not http(s).
func resolve(base *neturl.URL, href string) string {
	if href == "" {
		return ""
	}
	ref, err := neturl.Parse(href)
	if err != nil {
		return ""
	}
	u := base.ResolveReference(ref)
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	u.Fragment = ""
	return u.String()
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
