package seo

type Identity struct {
	AuthorName        string   `json:"AuthorName" validate:"required"`
	AuthorJobTitle    string   `json:"AuthorJobTitle"`
	AuthorDescription string   `json:"AuthorDescription"`
	AuthorProfiles    []string `json:"AuthorProfiles" validate:"dive,url"`
	SiteName          string   `json:"SiteName" validate:"required"`
	SiteDescription   string   `json:"SiteDescription"`
}

// DefaultIdentity describes the author and the site the graph is published
// for.
var DefaultIdentity = Identity{
	AuthorName:        "Sid Gangal",
	AuthorJobTitle:    "Writer & Technologist",
	AuthorDescription: "Building, investing, and sharing what works.",
	AuthorProfiles: []string{
		"https://twitter.com/theusefulstack",
		"https://linkedin.com/in/sidgangal",
	},
	SiteName:        "The Useful Stack",
	SiteDescription: "Build, Invest, Thrive.",
}

func (id Identity) person(siteURL string) Node {
	return Node{
		"@type":       TypePerson,
		"@id":         authorID(siteURL),
		"name":        id.AuthorName,
		"url":         siteURL,
		"jobTitle":    id.AuthorJobTitle,
		"description": id.AuthorDescription,
		"sameAs":      append([]string(nil), id.AuthorProfiles...),
	}
}

func (id Identity) website(siteURL string) Node {
	return Node{
		"@type":       TypeWebSite,
		"@id":         siteURL + "#website",
		"url":         siteURL,
		"name":        id.SiteName,
		"description": id.SiteDescription,
		"publisher":   ref(authorID(siteURL)),
	}
}

// Graph assembles the page's JSON-LD document: Person, WebSite, then the
// breadcrumb, article and additional nodes that are not nil, in that order.
func (id Identity) Graph(siteURL string, breadcrumb, article Node, additional ...Node) Graph {
	nodes := []Node{id.person(siteURL), id.website(siteURL)}

	candidates := append([]Node{breadcrumb, article}, additional...)
	for _, node := range candidates {
		if node != nil {
			nodes = append(nodes, node)
		}
	}

	return Graph{Context: SchemaContext, Nodes: nodes}
}

// GenerateSchemaGraph assembles the graph for DefaultIdentity.
func GenerateSchemaGraph(siteURL string, breadcrumb, article Node, additional ...Node) Graph {
	return DefaultIdentity.Graph(siteURL, breadcrumb, article, additional...)
}
