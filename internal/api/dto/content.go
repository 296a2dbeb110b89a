package dto

// ProjectDTO 项目
type ProjectDTO struct {
	Title       string   `json:"title" mapstructure:"title"`
	Description string   `json:"description" mapstructure:"description"`
	Link        string   `json:"link" mapstructure:"link"`
	Image       string   `json:"image" mapstructure:"image"`
	Tags        []string `json:"tags" mapstructure:"tags"`
}

// TimelineItemDTO 履历条目，Type 为 work 或 education
type TimelineItemDTO struct {
	Title        string   `json:"title" mapstructure:"title"`
	Organization string   `json:"organization" mapstructure:"organization"`
	Period       string   `json:"period" mapstructure:"period"`
	Description  []string `json:"description" mapstructure:"description"`
	Type         string   `json:"type" mapstructure:"type"`
	Logo         string   `json:"logo,omitempty" mapstructure:"logo"`
}

// CertificationDTO 证书
type CertificationDTO struct {
	Name          string `json:"name" mapstructure:"name"`
	Issuer        string `json:"issuer" mapstructure:"issuer"`
	IssueDate     string `json:"issue_date" mapstructure:"issue_date"`
	Logo          string `json:"logo" mapstructure:"logo"`
	CredentialURL string `json:"credential_url" mapstructure:"credential_url"`
}
