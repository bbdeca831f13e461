package models

import (
	"alfredoptarigan/job-posting-classifier/internal/classifier"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RetypePassword string `json:"retype_password"`
}

type FeedbackRequest struct {
	CompanyName   string `json:"company_name"`
	ReferenceLink string `json:"reference_link"`
	IsRealPosting string `json:"is_real_posting"`
}

// ClassifierRequest is the classifier page submission: a posting source
// plus the eight questionnaire answers.
type ClassifierRequest struct {
	Source string `json:"source"`
	classifier.Input
}

type ClassifyResponse struct {
	Result        classifier.Result `json:"result"`
	NegativeCount int               `json:"negative_count"`
}

type PageResponse struct {
	Page          Page              `json:"page"`
	NextPage      Page              `json:"next_page"`
	Message       string            `json:"message"`
	Result        classifier.Result `json:"result,omitempty"`
	NegativeCount *int              `json:"negative_count,omitempty"`
	Image         *PostingImage     `json:"image,omitempty"`
}

type QuestionnaireResponse struct {
	Questions []classifier.Question `json:"questions"`
	Threshold int                   `json:"threshold"`
}
