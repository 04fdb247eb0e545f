package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hashicorp/golang-lru/v2"
)

type PipelineConfig interface {
	comparable

	// Specialize creates a specialized pipeline for the
	// current PipelineConfig
	Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error)
}

type PipelineCache[C PipelineConfig] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, *wgpu.RenderPipeline]
}

func NewPipelineCache[C PipelineConfig](device *wgpu.Device, size int) *PipelineCache[C] {
	if size <= 0 {
		size = 16
	}

	cache, _ := lru.NewWithEvict[C, *wgpu.RenderPipeline](size, releasePipelineOnEviction[C])

	return &PipelineCache[C]{
		device: device,
		cache:  cache,
	}
}

func (p *PipelineCache[C]) Get(conf C) (*wgpu.RenderPipeline, error) {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached, nil
	}

	pipeline, err := conf.Specialize(p.device)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	p.cache.Add(conf, pipeline)

	return pipeline, nil
}

func (p *PipelineCache[C]) Len() int {
	return p.cache.Len()
}

// Release releases all cached pipelines.
func (p *PipelineCache[C]) Release() {
	p.cache.Purge()
}

func releasePipelineOnEviction[C any](_config C, pipe *wgpu.RenderPipeline) {
	if pipe != nil {
		pipe.Release()
	}
}
