package models

import "strings"

// Page is the tagged set of form pages a session can be on.
type Page string

const (
	PageLogin      Page = "Login"
	PageClassifier Page = "Classifier"
	PageFeedback   Page = "Feedback"
	PageRegister   Page = "Register"
)

// Pages lists every page in sidebar order.
var Pages = []Page{PageLogin, PageClassifier, PageFeedback, PageRegister}

// ParsePage matches name against the known pages, ignoring case.
func ParsePage(name string) (Page, bool) {
	for _, p := range Pages {
		if strings.EqualFold(string(p), name) {
			return p, true
		}
	}
	return "", false
}

// PostingImage describes an image fetched from a posting reference link.
type PostingImage struct {
	SourceURL   string `json:"source_url"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}
