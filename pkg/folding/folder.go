// Package folding 管理 RNA 折叠引擎
//
// 折叠引擎在应用启动时异步初始化并注册到 Manager，
// 初始化失败不会中断启动（界面仍可使用，只是无法折叠）。
package folding

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// ErrEngineNotFound 请求的折叠引擎未注册
var ErrEngineNotFound = errors.New("folding engine not found")

// Folder 折叠引擎接口
type Folder interface {
	// Name 引擎名称（注册键）
	Name() string
	// Version 引擎版本
	Version() string
	// CanPseudoknot 是否支持假结
	CanPseudoknot() bool
	// PairEnergy 返回碱基对的堆叠自由能
	PairEnergy(pair string) (float64, bool)
}

// Manager 折叠引擎注册表
// 启动阶段在后台 goroutine 中注册，之后由界面读取，因此加锁
type Manager struct {
	mu      sync.RWMutex
	folders map[string]Folder
	order   []string
}

// NewManager 创建空的引擎注册表
func NewManager() *Manager {
	return &Manager{
		folders: make(map[string]Folder),
	}
}

// AddFolder 注册折叠引擎
// 同名引擎会被替换
func (m *Manager) AddFolder(f Folder) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := f.Name()
	if _, exists := m.folders[name]; !exists {
		m.order = append(m.order, name)
	}
	m.folders[name] = f
	log.Printf("[FolderManager] Registered folding engine %s (%s)", name, f.Version())
}

// GetFolder 按名称获取折叠引擎
func (m *Manager) GetFolder(name string) (Folder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.folders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEngineNotFound, name)
	}
	return f, nil
}

// Folders 按注册顺序返回引擎名称
func (m *Manager) Folders() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len 返回已注册引擎数量
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.folders)
}
