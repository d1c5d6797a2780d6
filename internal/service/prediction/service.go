package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you-humble/shape-shop/internal/metrics"
	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/platform/logger"
)

type Classifier interface {
	Classify(ctx context.Context, m model.Measurements) (model.Shape, error)
}

type PredictionRepository interface {
	Create(ctx context.Context, p *model.Prediction) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Prediction, error)
	List(ctx context.Context) ([]model.Prediction, error)
}

type service struct {
	classifier      Classifier
	repo            PredictionRepository
	classifyTimeout time.Duration
	readDBTimeout   time.Duration
	writeDBTimeout  time.Duration
}

func NewPredictionService(
	classifier Classifier,
	repository PredictionRepository,
	classifyTimeout time.Duration,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		classifier:      classifier,
		repo:            repository,
		classifyTimeout: classifyTimeout,
		readDBTimeout:   readDBTimeout,
		writeDBTimeout:  writeDBTimeout,
	}
}

// Predict parses the measurements, classifies them and stores the result.
// Storing is best effort: a failed write is logged and the shape is still
// returned with Saved=false.
func (svc *service) Predict(
	ctx context.Context,
	userID int64,
	in model.MeasurementsInput,
) (*model.PredictResult, error) {
	const op string = "prediction.service.Predict"
	log := logger.With(logger.Int64("user_id", userID))

	if userID <= 0 {
		log.Error(ctx, "missing user id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	m, err := in.Parse()
	if err != nil {
		log.Warn(ctx, "invalid measurements", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	shape, err := svc.classify(ctx, m)
	if err != nil {
		metrics.ClassificationFailures.Inc()
		log.Error(ctx, "classify", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.Predictions.WithLabelValues(shape.String()).Inc()
	log = log.With(logger.String("shape", shape.String()))

	res := &model.PredictResult{Shape: shape}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	id, err := svc.repo.Create(wdbCtx, &model.Prediction{
		UserID:       userID,
		Measurements: m,
		Shape:        shape,
	})
	if err != nil {
		metrics.PredictionPersistFailures.Inc()
		log.Error(ctx, "repository create prediction",
			logger.ErrorF(fmt.Errorf("%w: %w", model.ErrPersistence, err)),
		)
		return res, nil
	}

	log.Info(ctx, "prediction saved", logger.Int64("prediction_id", id))

	res.PredictionID = id
	res.Saved = true
	return res, nil
}

func (svc *service) classify(ctx context.Context, m model.Measurements) (model.Shape, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.classifyTimeout)
	defer cancel()

	start := time.Now()
	shape, err := svc.classifier.Classify(ctx, m)
	metrics.ClassifyDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, model.ErrClassification) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", model.ErrClassification, err)
	}
	if !shape.Valid() {
		return 0, fmt.Errorf("%w: classifier returned %s", model.ErrClassification, shape)
	}

	return shape, nil
}

func (svc *service) History(ctx context.Context, userID int64) ([]model.Prediction, error) {
	const op string = "prediction.service.History"
	log := logger.With(logger.Int64("user_id", userID))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Error(ctx, "repository list predictions by user", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (svc *service) All(ctx context.Context) ([]model.Prediction, error) {
	const op string = "prediction.service.All"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list predictions", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
