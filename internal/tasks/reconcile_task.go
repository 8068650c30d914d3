package tasks

import (
	"context"
	"log"

	"portalchat/internal/services"

	"github.com/hibiken/asynq"
)

const TypeReconcileConversations = "conversations:reconcile"

func NewReconcileTask() *asynq.Task {
	return asynq.NewTask(TypeReconcileConversations, nil)
}

type ReconcileTaskHandler struct {
	reconcileService *services.ReconcileService
}

func NewReconcileTaskHandler(reconcileService *services.ReconcileService) *ReconcileTaskHandler {
	return &ReconcileTaskHandler{
		reconcileService: reconcileService,
	}
}

func (h *ReconcileTaskHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	report, err := h.reconcileService.Reconcile(ctx)
	if err != nil {
		return err
	}
	log.Printf("Reconcile task done: scanned=%d rewritten=%d merged=%d", report.Scanned, report.Rewritten, report.Merged)
	return nil
}
