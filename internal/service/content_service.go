package service

import (
	"Showcase/internal/api/config"
	"Showcase/internal/api/dto"
	"fmt"
	log "log/slog"

	"github.com/spf13/viper"
)

// ContentService 静态内容目录：项目、履历、证书。
// 内容在带外维护，启动时一次性读入，接口只读
type ContentService interface {
	Projects() []*dto.ProjectDTO
	Timeline() []*dto.TimelineItemDTO
	Certifications() []*dto.CertificationDTO
}

type contentServiceImpl struct {
	projects       []*dto.ProjectDTO
	timeline       []*dto.TimelineItemDTO
	certifications []*dto.CertificationDTO
}

func NewContentService(cfg config.ContentConfig) (ContentService, error) {
	v := viper.New()
	if cfg.Path != "" {
		v.SetConfigFile(cfg.Path)
	} else {
		v.SetConfigName("content")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
	}

	s := &contentServiceImpl{}
	if err := v.ReadInConfig(); err != nil {
		// 内容目录缺失不致命，接口返回空列表
		log.Warn("content catalog not found, serving empty catalog", "err", err)
		return s, nil
	}

	if err := v.UnmarshalKey("projects", &s.projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}
	if err := v.UnmarshalKey("timeline", &s.timeline); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timeline: %w", err)
	}
	if err := v.UnmarshalKey("certifications", &s.certifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal certifications: %w", err)
	}

	log.Info("content catalog loaded",
		"projects", len(s.projects),
		"timeline", len(s.timeline),
		"certifications", len(s.certifications))
	return s, nil
}

func (s *contentServiceImpl) Projects() []*dto.ProjectDTO {
	return s.projects
}

func (s *contentServiceImpl) Timeline() []*dto.TimelineItemDTO {
	return s.timeline
}

func (s *contentServiceImpl) Certifications() []*dto.CertificationDTO {
	return s.certifications
}
