package onnx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/you-humble/shape-shop/internal/model"
)

type Config struct {
	ModelPath    string
	MetadataPath string
	// LibraryPath points at libonnxruntime; empty uses the platform default.
	LibraryPath string
}

type Classifier struct {
	mu sync.Mutex

	session   *ort.AdvancedSession
	meta      Metadata
	input     *ort.Tensor[float32]
	labelOut  *ort.Tensor[int64]
	scoresOut *ort.Tensor[float32]
}

func New(cfg Config) (*Classifier, error) {
	meta, err := LoadMetadata(cfg.MetadataPath)
	if err != nil {
		return nil, err
	}

	if cfg.LibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.LibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
		}
	}

	c := &Classifier{meta: meta}

	c.input, err = ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(model.FeatureOrder))))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	var output ort.ArbitraryTensor
	switch meta.OutputKind {
	case OutputKindLabel:
		c.labelOut, err = ort.NewEmptyTensor[int64](ort.NewShape(1))
		output = c.labelOut
	default:
		c.scoresOut, err = ort.NewEmptyTensor[float32](ort.NewShape(1, int64(model.ShapeCount)))
		output = c.scoresOut
	}
	if err != nil {
		c.destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	c.session, err = ort.NewAdvancedSession(cfg.ModelPath,
		[]string{meta.InputName}, []string{meta.OutputName},
		[]ort.ArbitraryTensor{c.input}, []ort.ArbitraryTensor{output},
		nil)
	if err != nil {
		c.destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return c, nil
}

// Classify runs one inference. The session's tensors are shared, so runs
// are serialized; a caller whose context expires stops waiting but the run
// already in flight still completes under the lock.
func (c *Classifier) Classify(ctx context.Context, m model.Measurements) (model.Shape, error) {
	type result struct {
		shape model.Shape
		err   error
	}

	done := make(chan result, 1)
	go func() {
		shape, err := c.run(m.Vector())
		done <- result{shape: shape, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: %w", model.ErrClassification, ctx.Err())
	case res := <-done:
		return res.shape, res.err
	}
}

func (c *Classifier) run(features []float32) (model.Shape, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return 0, fmt.Errorf("%w: classifier is closed", model.ErrClassification)
	}

	copy(c.input.GetData(), features)

	if err := c.session.Run(); err != nil {
		return 0, fmt.Errorf("%w: inference failed: %w", model.ErrClassification, err)
	}

	if c.labelOut != nil {
		return decodeLabel(c.labelOut.GetData())
	}
	return decodeScores(c.scoresOut.GetData())
}

func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.destroy()
	return errors.Join(err, ort.DestroyEnvironment())
}

func (c *Classifier) destroy() error {
	var errs []error
	if c.session != nil {
		errs = append(errs, c.session.Destroy())
		c.session = nil
	}
	if c.input != nil {
		errs = append(errs, c.input.Destroy())
		c.input = nil
	}
	if c.labelOut != nil {
		errs = append(errs, c.labelOut.Destroy())
		c.labelOut = nil
	}
	if c.scoresOut != nil {
		errs = append(errs, c.scoresOut.Destroy())
		c.scoresOut = nil
	}
	return errors.Join(errs...)
}
