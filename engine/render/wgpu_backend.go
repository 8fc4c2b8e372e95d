package render

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// gpuMesh holds the GPU-side buffers registered for one item.
type gpuMesh struct {
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
}

// gpuBackend is the implementation of the GPUBackend interface.
type gpuBackend struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter

	colorTextureView *wgpu.TextureView
	depthTextureView *wgpu.TextureView
	clearPassDesc    *wgpu.RenderPassDescriptor
	loadPassDesc     *wgpu.RenderPassDescriptor

	pipelines map[string]*wgpu.RenderPipeline
	meshes    map[scene.ItemID]gpuMesh

	frameEncoder  *wgpu.CommandEncoder
	framePass     *wgpu.RenderPassEncoder
	boundPipeline string
}

// GPUBackend is the wgpu-backed Backend: it records the pipeline's
// submissions into a command encoder against an offscreen color/depth
// target and submits the commands to the device queue at frame end. It is
// headless; no window or surface is involved, which makes it usable for
// draw-call recording, compute-style workloads, and readback harnesses.
//
// Pipelines and per-item mesh buffers are registered by the application
// before items referencing them are drawn; a Draw against an unregistered
// pipeline or mesh returns an error rather than panicking, and the calling
// stage reports it on the frame.
type GPUBackend interface {
	Backend

	// RegisterPipeline registers a compiled render pipeline under a key
	// items reference through their PipelineKey.
	//
	// Parameters:
	//   - key: the pipeline key
	//   - p: the compiled pipeline
	RegisterPipeline(key string, p *wgpu.RenderPipeline)

	// RegisterMesh uploads vertex and index data for one item and keeps the
	// resulting buffers for its draws.
	//
	// Parameters:
	//   - id: the item's ID
	//   - vertexData: the raw vertex buffer contents
	//   - indexData: the raw uint32 index buffer contents
	//   - indexCount: the number of indices to draw
	//
	// Returns:
	//   - error: an error if buffer creation fails
	RegisterMesh(id scene.ItemID, vertexData, indexData []byte, indexCount int) error

	// UnregisterMesh releases the buffers registered for an item. Unknown
	// IDs are a no-op.
	//
	// Parameters:
	//   - id: the item's ID
	UnregisterMesh(id scene.ItemID)

	// Device returns the wgpu device, for pipeline and shader creation.
	//
	// Returns:
	//   - *wgpu.Device: the device
	Device() *wgpu.Device

	// Queue returns the device queue.
	//
	// Returns:
	//   - *wgpu.Queue: the queue
	Queue() *wgpu.Queue
}

var _ GPUBackend = &gpuBackend{}

// NewGPUBackend creates a headless wgpu backend rendering into an
// offscreen target of the given size.
//
// Parameters:
//   - width: the render target width in pixels
//   - height: the render target height in pixels
//   - options: functional options to further configure the backend
//
// Returns:
//   - GPUBackend: the new backend
//   - error: an error if no adapter or device is available
func NewGPUBackend(width, height int, options ...GPUBackendBuilderOption) (GPUBackend, error) {
	runtime.LockOSThread()
	b := &gpuBackend{
		mu:        &sync.Mutex{},
		instance:  wgpu.CreateInstance(nil),
		pipelines: make(map[string]*wgpu.RenderPipeline),
		meshes:    make(map[scene.ItemID]gpuMesh),
	}

	cfg := &gpuBackendConfig{}
	for _, option := range options {
		option(cfg)
	}

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: cfg.forceFallbackAdapter,
	})
	if err != nil {
		return nil, fmt.Errorf("render: no wgpu adapter: %w", err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Lumen Device",
	})
	if err != nil {
		return nil, fmt.Errorf("render: no wgpu device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()

	if err := b.configureTarget(width, height); err != nil {
		return nil, err
	}
	return b, nil
}

// configureTarget builds the offscreen color and depth attachments and the
// two cached render pass descriptors: a clearing pass for frame start and
// a loading pass used after a mid-frame state reset.
func (b *gpuBackend) configureTarget(width, height int) error {
	colorTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Offscreen Color Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatBGRA8Unorm,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
	})
	if err != nil {
		return err
	}
	b.colorTextureView, err = colorTexture.CreateView(nil)
	if err != nil {
		return err
	}

	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return err
	}
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		return err
	}

	// Both attachments are stored at pass end so a frame can span several
	// passes when ResetState splits it.
	b.clearPassDesc = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    b.colorTextureView,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: 0.1, G: 0.1, B: 0.1, A: 1.0,
				},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	}
	b.loadPassDesc = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    b.colorTextureView,
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpLoad,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	}
	return nil
}

func (b *gpuBackend) RegisterPipeline(key string, p *wgpu.RenderPipeline) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pipelines[key] = p
}

func (b *gpuBackend) RegisterMesh(id scene.ItemID, vertexData, indexData []byte, indexCount int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	mesh := gpuMesh{indexCount: uint32(indexCount)}
	if len(vertexData) > 0 {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            fmt.Sprintf("Item %d Vertex Buffer", id),
			Size:             uint64(len(vertexData)),
			Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return err
		}
		b.queue.WriteBuffer(buf, 0, vertexData)
		mesh.vertexBuffer = buf
	}
	if len(indexData) > 0 {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            fmt.Sprintf("Item %d Index Buffer", id),
			Size:             uint64(len(indexData)),
			Usage:            wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return err
		}
		b.queue.WriteBuffer(buf, 0, indexData)
		mesh.indexBuffer = buf
	}

	if old, ok := b.meshes[id]; ok {
		releaseMesh(old)
	}
	b.meshes[id] = mesh
	return nil
}

func (b *gpuBackend) UnregisterMesh(id scene.ItemID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if mesh, ok := b.meshes[id]; ok {
		releaseMesh(mesh)
		delete(b.meshes, id)
	}
}

func releaseMesh(m gpuMesh) {
	if m.vertexBuffer != nil {
		m.vertexBuffer.Release()
	}
	if m.indexBuffer != nil {
		m.indexBuffer.Release()
	}
}

func (b *gpuBackend) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameEncoder != nil {
		return fmt.Errorf("render: BeginFrame called with a frame already open")
	}
	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	b.frameEncoder = encoder
	b.framePass = encoder.BeginRenderPass(b.clearPassDesc)
	b.boundPipeline = ""
	return nil
}

func (b *gpuBackend) Draw(_ *RenderContext, it scene.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return fmt.Errorf("render: Draw called outside an open frame")
	}

	mesh, ok := b.meshes[it.ID()]
	if !ok {
		return fmt.Errorf("render: item %d has no registered mesh", it.ID())
	}
	key := it.PipelineKey()
	pipeline, ok := b.pipelines[key]
	if !ok {
		return fmt.Errorf("render: item %d references unknown pipeline %q", it.ID(), key)
	}

	// Redundant pipeline binds are skipped; material sorting makes runs of
	// same-pipeline items the common case.
	if key != b.boundPipeline {
		b.framePass.SetPipeline(pipeline)
		b.boundPipeline = key
	}
	if mesh.vertexBuffer != nil {
		b.framePass.SetVertexBuffer(0, mesh.vertexBuffer, 0, wgpu.WholeSize)
	}
	if mesh.indexBuffer != nil {
		b.framePass.SetIndexBuffer(mesh.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	}
	b.framePass.DrawIndexed(mesh.indexCount, 1, 0, 0, 0)
	return nil
}

func (b *gpuBackend) ResetState() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameEncoder == nil || b.framePass == nil {
		return
	}
	// End the current pass and open a fresh one over the same attachments.
	// The new pass starts with no pipeline or buffers bound.
	b.framePass.End()
	b.framePass = b.frameEncoder.BeginRenderPass(b.loadPassDesc)
	b.boundPipeline = ""
}

func (b *gpuBackend) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameEncoder == nil {
		return
	}
	if b.framePass != nil {
		b.framePass.End()
		b.framePass = nil
	}

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameEncoder = nil
		return
	}
	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.boundPipeline = ""
}

func (b *gpuBackend) Device() *wgpu.Device {
	return b.device
}

func (b *gpuBackend) Queue() *wgpu.Queue {
	return b.queue
}
