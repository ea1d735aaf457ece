package transport

type UploadResponse struct {
	ImageURL string `json:"image_url"`
	FileSize string `json:"file_size"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

type StatsResponse struct {
	TotalProducts int64 `json:"total_products"`
	TotalAdmins   int64 `json:"total_admins"`
}
