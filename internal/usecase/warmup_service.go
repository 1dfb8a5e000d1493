package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
)

const (
	warmupStatusSuccess = "success"
	warmupStatusFailed  = "failed"

	defaultWarmupWorkers = 4
)

// WarmupTask loads one cached tab.
type WarmupTask struct {
	Name string
	Load func(ctx context.Context) error
}

type WarmupTaskResult struct {
	Name       string
	Status     string
	Message    string
	DurationMs int64
}

type WarmupResult struct {
	Tasks        []WarmupTaskResult
	SuccessCount int
	FailedCount  int
}

type WarmupService struct {
	tasks   []WarmupTask
	workers int
	logger  *logging.Logger
}

func NewWarmupService(tasks []WarmupTask, workers int, logger *logging.Logger) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = defaultWarmupWorkers
	}
	return &WarmupService{tasks: tasks, workers: workers, logger: logger}
}

// Run executes every task on a bounded worker pool. Task failures are
// reported in the result, not returned.
func (s *WarmupService) Run(ctx context.Context) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Run")
	defer span.End()

	if len(s.tasks) == 0 {
		return WarmupResult{}, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(s.tasks)))
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan WarmupTaskResult, len(s.tasks))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, task := range s.tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WarmupTaskResult{Name: task.Name, Status: warmupStatusSuccess}
			if loadErr := task.Load(ctx); loadErr != nil {
				row.Status = warmupStatusFailed
				row.Message = loadErr.Error()
				failedCount.Add(1)
			} else {
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			return WarmupResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := WarmupResult{Tasks: make([]WarmupTaskResult, 0, len(s.tasks))}
	for row := range results {
		out.Tasks = append(out.Tasks, row)
	}
	sort.SliceStable(out.Tasks, func(i, j int) bool { return out.Tasks[i].Name < out.Tasks[j].Name })
	out.SuccessCount = int(successCount.Load())
	out.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "cache warmup finished",
		"success", out.SuccessCount,
		"failed", out.FailedCount,
	)
	return out, nil
}
