// Package seo builds schema.org structured data and the URLs that feed it.
//
// Nodes are plain maps so that optional fields can be left out entirely
// rather than serialized as null, and so that callers can append nodes of
// any shape to a graph.
package seo

const (
	SchemaContext = "https://schema.org"

	TypePerson         = "Person"
	TypeWebSite        = "WebSite"
	TypeBreadcrumbList = "BreadcrumbList"
	TypeListItem       = "ListItem"
	TypeArticle        = "Article"
	TypeImageObject    = "ImageObject"
	TypeFAQPage        = "FAQPage"
	TypeQuestion       = "Question"
	TypeAnswer         = "Answer"
	TypeHowTo          = "HowTo"
	TypeHowToStep      = "HowToStep"
)

// Node is a single schema.org record keyed by JSON-LD property name.
type Node map[string]any

// Type returns the @type discriminator, or "" when absent.
func (n Node) Type() string {
	t, _ := n["@type"].(string)
	return t
}

// set stores value only when present is true.
func (n Node) set(key string, value any, present bool) {
	if present {
		n[key] = value
	}
}

func ref(id string) Node {
	return Node{"@id": id}
}

type Graph struct {
	Context string `json:"@context"`
	Nodes   []Node `json:"@graph"`
}
