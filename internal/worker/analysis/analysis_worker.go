package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/domain/repository"
	"github.com/vastu-microservice/internal/usecase"
	"github.com/vastu-microservice/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// AnalysisWorker обрабатывает события пересчета анализа проектов
type AnalysisWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	analysisUC   *usecase.AnalysisUseCase
	consumerName string
}

// NewAnalysisWorker создает новый AnalysisWorker
func NewAnalysisWorker(
	streamRepo repository.StreamRepository,
	analysisUC *usecase.AnalysisUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *AnalysisWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &AnalysisWorker{
		BaseWorker:   worker.NewBaseWorker("analysis-recompute", consumerGroup, logger),
		streamRepo:   streamRepo,
		analysisUC:   analysisUC,
		consumerName: consumerName,
	}
}

// Start запускает воркер
func (w *AnalysisWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AnalysisWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAnalysisRequested, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Если ничего не обработали - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений
// Возвращает количество прочитанных сообщений
func (w *AnalysisWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamAnalysisRequested,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing batch",
		zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamAnalysisRequested, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.analysisUC.RunAllForProject(ctx, event.ProjectID, event.Modules); err != nil {
			logger.Error("Failed to recompute analysis",
				zap.String("project_id", event.ProjectID.String()),
				zap.String("reason", event.Reason),
				zap.Error(err))
			// Не ACK'аем - сообщение будет переобработано
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamAnalysisRequested, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}

		logger.Info("Analysis recomputed",
			zap.String("project_id", event.ProjectID.String()),
			zap.String("reason", event.Reason))
	}

	return len(messages), nil
}

// parseMessage парсит сообщение из стрима в AnalysisRequestedEvent
func (w *AnalysisWorker) parseMessage(msg domain.StreamMessage) (*domain.AnalysisRequestedEvent, error) {
	data, ok := msg.Payload()
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'payload' field")
	}

	var event domain.AnalysisRequestedEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
