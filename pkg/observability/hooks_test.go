package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnGenerateStart(ctx, 8, 8, true)
	p.OnGenerateComplete(ctx, 8, 8, 63, true, time.Second, nil)
	p.OnSolveStart(ctx, 8, 8)
	p.OnSolveComplete(ctx, true, 15, time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// Optimizer hooks
	o := NoopOptimizerHooks{}
	o.OnAnchorStart(ctx, 0, 64)
	o.OnImprove(ctx, 0, 22)
	o.OnComplete(ctx, 22, time.Second)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "maze")
	c.OnCacheMiss(ctx, "solution")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Optimizer().(NoopOptimizerHooks); !ok {
		t.Error("Optimizer() should return NoopOptimizerHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customOptimizer := &testOptimizerHooks{}
	SetOptimizerHooks(customOptimizer)
	if Optimizer() != customOptimizer {
		t.Error("SetOptimizerHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep previous hooks")
	}

	customOpt := &testOptimizerHooks{}
	SetOptimizerHooks(customOpt)
	SetOptimizerHooks(nil)
	if Optimizer() != customOpt {
		t.Error("SetOptimizerHooks(nil) should keep previous hooks")
	}

	Reset()
}

func TestHookInvocationRecordsEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testOptimizerHooks{}
	SetOptimizerHooks(h)

	ctx := context.Background()
	Optimizer().OnAnchorStart(ctx, 3, 16)
	Optimizer().OnImprove(ctx, 3, 9)
	Optimizer().OnComplete(ctx, 9, time.Millisecond)

	if h.anchors != 1 || h.improvements != 1 || h.completes != 1 {
		t.Errorf("recorded anchors=%d improvements=%d completes=%d, want 1 each",
			h.anchors, h.improvements, h.completes)
	}
	if h.lastLength != 9 {
		t.Errorf("lastLength = %d, want 9", h.lastLength)
	}
}

// Test hook implementations.

type testPipelineHooks struct{ NoopPipelineHooks }

type testCacheHooks struct{ NoopCacheHooks }

type testOptimizerHooks struct {
	anchors      int
	improvements int
	completes    int
	lastLength   int
}

func (h *testOptimizerHooks) OnAnchorStart(_ context.Context, _, _ int) { h.anchors++ }
func (h *testOptimizerHooks) OnImprove(_ context.Context, _, length int) {
	h.improvements++
	h.lastLength = length
}
func (h *testOptimizerHooks) OnComplete(_ context.Context, length int, _ time.Duration) {
	h.completes++
	h.lastLength = length
}
