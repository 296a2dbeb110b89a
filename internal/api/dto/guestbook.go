package dto

// GuestbookEntryDTO 留言
type GuestbookEntryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Likes     int    `json:"likes"`
	Avatar    string `json:"avatar"` // 派生字段：由名字首字符决定的头像颜色
	Liked     bool   `json:"liked"`  // 当前访客是否已点赞
	CreatedAt string `json:"created_at"`
}

// GuestbookListDTO 留言列表返回包装
type GuestbookListDTO struct {
	Entries []*GuestbookEntryDTO `json:"entries"`
	Ready   bool                 `json:"ready"`
}

// SignGuestbookDTO 留言提交
type SignGuestbookDTO struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
