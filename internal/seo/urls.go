package seo

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

func withTrailingSlash(siteURL string) string {
	return strings.TrimRight(siteURL, "/") + "/"
}

// ResolveOgImage picks the social preview image: an explicit image wins,
// then the generated per-post image when both pillar and slug are known,
// then the site default. Empty arguments count as absent.
func ResolveOgImage(siteURL, customImage, pillar, slug string) string {
	base := withTrailingSlash(siteURL)
	if customImage != "" {
		return customImage
	}
	if pillar != "" && slug != "" {
		return base + "og/" + pillar + "/" + slug + ".png"
	}
	return base + "og-default.png"
}

func pathSegments(pathname string) []string {
	var segments []string
	for _, s := range strings.Split(pathname, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func segmentName(segment string) string {
	r, size := utf8.DecodeRuneInString(segment)
	return string(unicode.ToUpper(r)) + strings.ReplaceAll(segment[size:], "-", " ")
}

// GenerateBreadcrumbs returns the trail from the home page to pathname.
func GenerateBreadcrumbs(pathname, siteURL string) []ListItem {
	siteURL = withTrailingSlash(siteURL)
	segments := pathSegments(pathname)

	items := make([]ListItem, 0, len(segments)+1)
	items = append(items, ListItem{Type: TypeListItem, Position: 1, Name: "Home", Item: siteURL})
	for i, segment := range segments {
		items = append(items, ListItem{
			Type:     TypeListItem,
			Position: i + 2,
			Name:     segmentName(segment),
			Item:     siteURL + strings.Join(segments[:i+1], "/") + "/",
		})
	}
	return items
}

// GenerateBreadcrumbSchema returns nil for the site root.
func GenerateBreadcrumbSchema(pathname, siteURL string) Node {
	if len(pathSegments(pathname)) == 0 {
		return nil
	}
	return Node{
		"@type":           TypeBreadcrumbList,
		"itemListElement": GenerateBreadcrumbs(pathname, siteURL),
	}
}

// FormatKeywords joins keywords for a meta tag. ok is false when there are
// none.
func FormatKeywords(keywords []string) (formatted string, ok bool) {
	if len(keywords) == 0 {
		return "", false
	}
	return strings.Join(keywords, ", "), true
}
