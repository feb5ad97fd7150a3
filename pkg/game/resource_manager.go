package game

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 字体名称
const (
	// FontArial 常规字体
	FontArial = "Arial"
	// FontArialBold 粗体
	FontArialBold = "ArialBold"
)

// fontData 内置字体数据（Go 字体作为 Arial 的替代）
var fontData = map[string][]byte{
	FontArial:     goregular.TTF,
	FontArialBold: gobold.TTF,
}

// ResourceManager manages font sources and the font faces derived from them.
// Font sources are parsed once (LoadFonts); faces are cached per name and size.
//
// LoadFonts may run on a background goroutine during startup, so the caches
// are guarded by a mutex.
type ResourceManager struct {
	mu        sync.Mutex
	sources   map[string]*text.GoTextFaceSource
	faceCache map[string]*text.GoTextFace
	loadOnce  sync.Once
	loadErr   error
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		sources:   make(map[string]*text.GoTextFaceSource),
		faceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadFonts 解析所有内置字体
//
// 只会真正执行一次，重复调用返回第一次的结果。
// ctx 在开始解析前被检查，解析过程本身不可中断。
func (rm *ResourceManager) LoadFonts(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rm.loadOnce.Do(func() {
		log.Printf("[ResourceManager] Loading fonts...")
		for name, data := range fontData {
			src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
			if err != nil {
				rm.loadErr = fmt.Errorf("failed to create font source %s: %w", name, err)
				return
			}
			rm.mu.Lock()
			rm.sources[name] = src
			rm.mu.Unlock()
		}
		log.Printf("[ResourceManager] Loaded %d fonts", len(fontData))
	})
	return rm.loadErr
}

// Font 返回指定名称和字号的字体
//
// 字体尚未加载时会同步加载；加载失败或名称未知时返回 nil。
func (rm *ResourceManager) Font(name string, size float64) *text.GoTextFace {
	if err := rm.LoadFonts(context.Background()); err != nil {
		log.Printf("[ResourceManager] Font %s unavailable: %v", name, err)
		return nil
	}

	cacheKey := fmt.Sprintf("%s:%.1f", name, size)

	rm.mu.Lock()
	defer rm.mu.Unlock()

	if face, ok := rm.faceCache[cacheKey]; ok {
		return face
	}

	src, ok := rm.sources[name]
	if !ok {
		return nil
	}

	face := &text.GoTextFace{
		Source:    src,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.faceCache[cacheKey] = face
	return face
}

// Arial 返回常规字体
func (rm *ResourceManager) Arial(size float64) *text.GoTextFace {
	return rm.Font(FontArial, size)
}

// ArialBold 返回粗体
func (rm *ResourceManager) ArialBold(size float64) *text.GoTextFace {
	return rm.Font(FontArialBold, size)
}
