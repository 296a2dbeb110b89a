package dto

// PostDTO 博客文章
type PostDTO struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
	Views      int      `json:"views"`
	CreatedAt  string   `json:"created_at"`
	ReadTime   int      `json:"read_time"` // 派生字段：ceil(词数/200) 分钟
}

// PostListDTO 文章列表返回包装
type PostListDTO struct {
	Posts []*PostDTO `json:"posts"`
	Tags  []string   `json:"tags"`
	Ready bool       `json:"ready"`
}
