package consts

const (
	// GuestbookLikedKey 访客点赞集合，后接 visitor_id
	GuestbookLikedKey = "guestbook:liked:"
	// ChangeChannelKey 表变更通知频道，后接表名
	ChangeChannelKey = "change:"
)
