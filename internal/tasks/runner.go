package tasks

import (
	"fmt"
	"log"

	"github.com/hibiken/asynq"
)

const maintenanceQueue = "maintenance"

// Runner owns the background task machinery: an asynq worker consuming
// the maintenance queue and a scheduler that enqueues the periodic
// reconcile pass. Messaging requests never wait on any of this.
type Runner struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

func NewRunner(redisAddr string, intervalMinutes, concurrency int, handler *ReconcileTaskHandler) *Runner {
	redisOpt := asynq.RedisClientOpt{Addr: redisAddr}

	if intervalMinutes < 1 {
		intervalMinutes = 60
	}
	if concurrency < 1 {
		concurrency = 1
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{maintenanceQueue: 1},
	})

	mux := asynq.NewServeMux()
	mux.Handle(TypeReconcileConversations, handler)

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register(
		fmt.Sprintf("@every %dm", intervalMinutes),
		NewReconcileTask(),
		asynq.Queue(maintenanceQueue),
	); err != nil {
		log.Fatalf("Failed to register reconcile schedule: %v", err)
	}

	return &Runner{
		server:    server,
		scheduler: scheduler,
		mux:       mux,
	}
}

func (r *Runner) Start() error {
	if err := r.server.Start(r.mux); err != nil {
		return err
	}
	if err := r.scheduler.Start(); err != nil {
		r.server.Shutdown()
		return err
	}
	return nil
}

func (r *Runner) Shutdown() {
	r.scheduler.Shutdown()
	r.server.Shutdown()
}
