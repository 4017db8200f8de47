package dto

type CreatePostRequest struct {
	Content string `json:"content"`
}

type CreateReportRequest struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	Reason      string `json:"reason"`
}

type ActionReportRequest struct {
	Status    string `json:"status"`
	AdminNote string `json:"admin_note"`
}
