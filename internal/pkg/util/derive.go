package util

import (
	"Showcase/internal/pkg/consts"
	"strings"
)

// avatarColors 头像颜色盘，顺序不可变，否则同名访客颜色会漂移
var avatarColors = []string{
	"bg-red-500",
	"bg-blue-500",
	"bg-green-500",
	"bg-yellow-500",
	"bg-purple-500",
	"bg-pink-500",
}

// ReadTime 阅读时长估算，向上取整到分钟
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	return (words + consts.ReadTimeWordsPerMinute - 1) / consts.ReadTimeWordsPerMinute
}

// AvatarColor 由名字首字符确定的头像颜色，同名恒定
func AvatarColor(name string) string {
	if name == "" {
		return avatarColors[0]
	}
	return avatarColors[int(name[0])%len(avatarColors)]
}
