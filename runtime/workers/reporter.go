package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-rooms/contract"
)

// ReporterWorker logs a periodic snapshot of room occupancy. Empty rooms are
// reported too: they persist on purpose once created.
type ReporterWorker struct {
	log      *slog.Logger
	rooms    contract.IRoomRegistry
	interval time.Duration
}

func NewReporterWorker(log *slog.Logger, rooms contract.IRoomRegistry, interval time.Duration) *ReporterWorker {
	return &ReporterWorker{log: log, rooms: rooms, interval: interval}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *ReporterWorker) report() {
	snapshot := w.rooms.Occupancy()
	total := 0
	for _, count := range snapshot {
		total += count
	}
	w.log.Info("Room occupancy", "rooms", len(snapshot), "members", total)
	for name, count := range snapshot {
		w.log.Debug("Room", "name", name, "members", count)
	}
}
