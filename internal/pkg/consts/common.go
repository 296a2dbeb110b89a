package consts

const (
	// TableBlogPosts 博客文章表
	TableBlogPosts = "blog_posts"
	// TableGuestbook 留言板表
	TableGuestbook = "guestbook_entries"
	// TableAnalytics 页面访问统计表
	TableAnalytics = "page_analytics"
)

const (
	// GuestbookNameMaxLen 留言人名字字符数上限
	GuestbookNameMaxLen = 50
	// GuestbookMessageMaxLen 留言内容字符数上限
	GuestbookMessageMaxLen = 280
)

// ReadTimeWordsPerMinute 阅读时长估算：每分钟阅读词数
const ReadTimeWordsPerMinute = 200
