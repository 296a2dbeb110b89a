package dto

// ContactDTO 联系表单
type ContactDTO struct {
	Name    string `json:"name" binding:"required" validate:"min=1,max=100"`
	Email   string `json:"email" binding:"required" validate:"email"`
	Message string `json:"message" binding:"required" validate:"min=1,max=2000"`
}
