package dto

// AnalyticsDTO 访问统计
type AnalyticsDTO struct {
	TotalViews int  `json:"total_views"`
	TodayViews int  `json:"today_views"`
	Loading    bool `json:"loading"`
}
