// Package signals 提供类型安全的观察者（信号/槽）机制
//
// 组件通过 Signal 对外广播事件（如"调色板目标被点击"），
// 监听者通过 Connect 注册回调，返回的 Connection 可随时断开。
// 所有回调在 Emit 的调用方 goroutine 中同步执行。
package signals

// Signal 携带 T 类型参数的信号
type Signal[T any] struct {
	slots  []slot[T]
	nextID uint32
}

type slot[T any] struct {
	id   uint32
	fn   func(T)
	once bool
}

// Connection 信号连接句柄
type Connection interface {
	// Close 断开连接，重复调用无副作用
	Close()
}

type connection[T any] struct {
	sig *Signal[T]
	id  uint32
}

// New 创建信号
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Connect 注册回调，返回连接句柄
func (s *Signal[T]) Connect(fn func(T)) Connection {
	return s.connect(fn, false)
}

// ConnectOnce 注册只触发一次的回调，触发后自动断开
func (s *Signal[T]) ConnectOnce(fn func(T)) Connection {
	return s.connect(fn, true)
}

func (s *Signal[T]) connect(fn func(T), once bool) Connection {
	s.nextID++
	s.slots = append(s.slots, slot[T]{id: s.nextID, fn: fn, once: once})
	return connection[T]{sig: s, id: s.nextID}
}

// Emit 按注册顺序同步调用所有回调
//
// 回调中新注册的监听者不会收到本次事件；
// 回调中断开的监听者如果尚未被调用则不再调用。
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}

	// 复制快照，允许回调中修改连接列表
	snapshot := make([]slot[T], len(s.slots))
	copy(snapshot, s.slots)

	for _, sl := range snapshot {
		if !s.has(sl.id) {
			continue
		}
		if sl.once {
			s.remove(sl.id)
		}
		sl.fn(v)
	}
}

// NumConnections 返回当前连接数量
func (s *Signal[T]) NumConnections() int {
	return len(s.slots)
}

// DisconnectAll 断开所有连接
func (s *Signal[T]) DisconnectAll() {
	s.slots = s.slots[:0]
}

func (s *Signal[T]) has(id uint32) bool {
	for i := range s.slots {
		if s.slots[i].id == id {
			return true
		}
	}
	return false
}

func (s *Signal[T]) remove(id uint32) {
	for i := range s.slots {
		if s.slots[i].id == id {
			copy(s.slots[i:], s.slots[i+1:])
			s.slots[len(s.slots)-1] = slot[T]{}
			s.slots = s.slots[:len(s.slots)-1]
			return
		}
	}
}

func (c connection[T]) Close() {
	if c.sig == nil {
		return
	}
	c.sig.remove(c.id)
}

// Registrations 一组连接的集合
// 组件销毁时调用 Close 统一断开
type Registrations struct {
	conns []Connection
}

// Add 加入连接
func (r *Registrations) Add(c Connection) {
	r.conns = append(r.conns, c)
}

// Len 返回集合中的连接数
func (r *Registrations) Len() int {
	return len(r.conns)
}

// Close 断开集合中所有连接
func (r *Registrations) Close() {
	for _, c := range r.conns {
		c.Close()
	}
	r.conns = nil
}
