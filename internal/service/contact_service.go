package service

import (
	"Showcase/internal/api/config"
	"Showcase/internal/api/dto"
	"context"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// ContactService 联系表单外发。调用 EmailJS 兼容的事务邮件接口，
// 结果只用于一条一次性的用户提示
type ContactService interface {
	Send(ctx context.Context, form *dto.ContactDTO) error
}

type contactServiceImpl struct {
	client *resty.Client
	cfg    config.EmailConfig
}

func NewContactService(cfg config.EmailConfig) ContactService {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(1)
	return &contactServiceImpl{client: client, cfg: cfg}
}

func (s *contactServiceImpl) Send(ctx context.Context, form *dto.ContactDTO) error {
	if s.cfg.Endpoint == "" || s.cfg.PublicKey == "" {
		return ErrMailNotConfigured
	}

	body := map[string]any{
		"service_id":  s.cfg.ServiceID,
		"template_id": s.cfg.TemplateID,
		"user_id":     s.cfg.PublicKey,
		"template_params": map[string]string{
			"name":    form.Name,
			"email":   form.Email,
			"message": form.Message,
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(s.cfg.Endpoint)
	if err != nil {
		log.ErrorContext(ctx, "send contact mail failed", "err", err)
		return ErrMailSendFailed
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "send contact mail failed",
			"status", resp.StatusCode(), "body", resp.String())
		return ErrMailSendFailed
	}

	log.InfoContext(ctx, "contact mail sent", "from", form.Email)
	return nil
}
