package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/internal/service/mocks"
)

func validInput() model.MeasurementsInput {
	return model.MeasurementsInput{
		DressSize: "38",
		Breasts:   "92",
		Waist:     "64",
		Hips:      "95",
		Shoe:      "39",
		Height:    "168",
		Weight:    "60",
	}
}

func TestServicePredict(t *testing.T) {
	t.Parallel()

	type deps struct {
		classifier *mocks.MockClassifier
		repository *mocks.MockPredictionRepository
	}

	newSvc := func(d deps) *service {
		return NewPredictionService(d.classifier, d.repository, 50*time.Millisecond, time.Second, time.Second)
	}

	userID := int64(gofakeit.IntRange(1, 1_000_000))
	predictionID := int64(gofakeit.IntRange(1, 10_000))

	type testCase struct {
		name   string
		userID int64
		input  model.MeasurementsInput
		setup  func(d deps)
		assert func(t *testing.T, res *model.PredictResult, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "success: hourglass saved",
			userID: userID,
			input:  validInput(),
			setup: func(d deps) {
				d.classifier.
					On("Classify", mock.Anything, mock.MatchedBy(func(m model.Measurements) bool {
						return m.DressSize == 38 && m.Weight == 60
					})).
					Return(model.ShapeHourglass, nil).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(p *model.Prediction) bool {
						return p.UserID == userID && p.Shape == model.ShapeHourglass && p.Measurements.Height == 168
					})).
					Return(predictionID, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.PredictResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, model.ShapeHourglass, res.Shape)
				assert.Equal(t, "Hourglass", res.Shape.String())
				assert.True(t, res.Saved)
				assert.Equal(t, predictionID, res.PredictionID)
			},
		},
		{
			name:   "save failure still returns shape",
			userID: userID,
			input:  validInput(),
			setup: func(d deps) {
				d.classifier.
					On("Classify", mock.Anything, mock.Anything).
					Return(model.ShapeRectangle, nil).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.Anything).
					Return(int64(0), errors.New("connection reset")).
					Once()
			},
			assert: func(t *testing.T, res *model.PredictResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, model.ShapeRectangle, res.Shape)
				assert.False(t, res.Saved)
				assert.Zero(t, res.PredictionID)
			},
		},
		{
			name:   "invalid input: missing field",
			userID: userID,
			input: func() model.MeasurementsInput {
				in := validInput()
				in.Waist = ""
				return in
			}(),
			assert: func(t *testing.T, res *model.PredictResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				assert.Contains(t, err.Error(), "Waist is required")
				assert.Nil(t, res)
				d.classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "invalid input: non numeric",
			userID: userID,
			input: func() model.MeasurementsInput {
				in := validInput()
				in.Height = "tall"
				return in
			}(),
			assert: func(t *testing.T, res *model.PredictResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				assert.Nil(t, res)
			},
		},
		{
			name:   "classifier out of range index",
			userID: userID,
			input:  validInput(),
			setup: func(d deps) {
				d.classifier.
					On("Classify", mock.Anything, mock.Anything).
					Return(model.Shape(7), nil).
					Once()
			},
			assert: func(t *testing.T, res *model.PredictResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrClassification)
				assert.Nil(t, res)
				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "classifier timeout",
			userID: userID,
			input:  validInput(),
			setup: func(d deps) {
				d.classifier.
					On("Classify", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						<-args.Get(0).(context.Context).Done()
					}).
					Return(model.Shape(0), context.DeadlineExceeded).
					Once()
			},
			assert: func(t *testing.T, res *model.PredictResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrClassification)
				assert.ErrorIs(t, err, context.DeadlineExceeded)
				assert.Nil(t, res)
			},
		},
		{
			name:   "unauthenticated",
			userID: 0,
			input:  validInput(),
			assert: func(t *testing.T, res *model.PredictResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnauthorized)
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				classifier: mocks.NewMockClassifier(t),
				repository: mocks.NewMockPredictionRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			res, err := svc.Predict(ctx, tt.userID, tt.input)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceHistory(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockPredictionRepository(t)
	svc := NewPredictionService(mocks.NewMockClassifier(t), repo, time.Second, time.Second, time.Second)

	want := []model.Prediction{
		{ID: 1, UserID: 5, Shape: model.ShapeBanana},
		{ID: 2, UserID: 5, Shape: model.ShapeApple},
	}
	repo.On("ListByUser", mock.Anything, int64(5)).Return(want, nil).Once()
	repo.On("List", mock.Anything).Return(nil, errors.New("boom")).Once()

	got, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.All(context.Background())
	require.Error(t, err)
}
