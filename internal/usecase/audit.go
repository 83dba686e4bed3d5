package usecase

import (
	"context"
	"encoding/json"

	"goodwill/internal/domain/model"
	"goodwill/internal/repository"
)

// 監査ログを1件残す。before/afterはJSONにして保存
func writeAudit(
	ctx context.Context,
	auditRepo repository.AuditLogRepository,
	clock Clock,
	actor string,
	action model.AuditAction,
	resourceType model.AuditResourceType,
	resourceID string,
	before interface{},
	after interface{},
) error {
	log := model.AuditLog{
		ActorEmail:   actor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		BeforeJSON:   toJSON(before),
		AfterJSON:    toJSON(after),
		CreatedAt:    clock.Now(),
	}
	if err := auditRepo.Create(ctx, log); err != nil {
		return storeErr(err)
	}
	return nil
}

func toJSON(v interface{}) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// GET /audit-logs
type AuditLogUsecase struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(auditRepo repository.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditRepo: auditRepo}
}

func (u *AuditLogUsecase) List(ctx context.Context, f repository.AuditLogFilter) ([]model.AuditLog, error) {
	logs, err := u.auditRepo.List(ctx, f)
	if err != nil {
		return nil, storeErr(err)
	}
	return logs, nil
}
