package game

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Track 平台轨道：无限程序生成平台带上的固定长度滑动窗口
//
// 内部是容量固定的环形缓冲区，逻辑索引 0 永远是领头平台（小球下一个要落上的平台）。
// 不变量：
//   - 长度恒为 cfg.TrackLength
//   - 深度沿索引严格递减，相邻间隔恰好为 cfg.SpawnInterval
type Track struct {
	slots []*components.PlatformComponent
	head  int // 领头平台所在的物理槽位
	count int

	offset         float64 // 整条轨道的水平偏移（指针拖动）
	nextSpawnDepth float64

	interval    float64
	offsetRange config.Range
	halfExtents mgl64.Vec3

	rng      *rand.Rand
	listener Listener
}

// NewTrack 创建初始轨道
//
// 领头平台位于深度 0、水平偏移 0，正好在小球初始位置下方；
// 其余平台每隔 SpawnInterval 向前排列，水平偏移随机。
//
// 参数:
//   - cfg: 玩法配置
//   - rng: 随机源（测试中传入固定种子）
//   - listener: 平台生成/退出事件接收者，可为 nil
func NewTrack(cfg *config.GameplayConfig, rng *rand.Rand, listener Listener) *Track {
	if listener == nil {
		listener = NopListener{}
	}

	t := &Track{
		slots:       make([]*components.PlatformComponent, cfg.TrackLength),
		interval:    cfg.SpawnInterval,
		offsetRange: cfg.OffsetRange,
		halfExtents: mgl64.Vec3{cfg.Platform.Width / 2, cfg.Platform.Height / 2, cfg.Platform.Depth / 2},
		rng:         rng,
		listener:    listener,
	}

	lead := &components.PlatformComponent{LocalX: 0, Depth: 0}
	t.place(lead)

	for i := 1; i < cfg.TrackLength; i++ {
		t.spawnAt(-float64(i) * t.interval)
	}
	t.nextSpawnDepth = -float64(cfg.TrackLength) * t.interval

	return t
}

// spawnAt 在指定深度生成新平台并追加到轨道尾部
func (t *Track) spawnAt(depth float64) *components.PlatformComponent {
	p := &components.PlatformComponent{
		LocalX: t.offsetRange.Min + t.rng.Float64()*(t.offsetRange.Max-t.offsetRange.Min),
		Depth:  depth,
	}
	t.place(p)
	return p
}

func (t *Track) place(p *components.PlatformComponent) {
	if t.count == len(t.slots) {
		// 只有 Advance 腾出槽位后才会追加，走到这里说明调用顺序错误
		panic("track: spawn into full window")
	}
	p.RefreshBounds(t.offset, t.halfExtents)
	t.slots[(t.head+t.count)%len(t.slots)] = p
	t.count++
	t.listener.PlatformSpawned(p)
}

// Advance 移除领头平台，其余平台整体前移一位，并在尾部生成新平台
//
// 新平台位于 nextSpawnDepth，之后游标再向前推进一个间隔。
// 环形缓冲区只移动头指针，不存在越界读取。
func (t *Track) Advance() {
	retired := t.slots[t.head]
	t.slots[t.head] = nil
	t.head = (t.head + 1) % len(t.slots)
	t.count--
	t.listener.PlatformRetired(retired)

	p := t.spawnAt(t.nextSpawnDepth)
	t.nextSpawnDepth -= t.interval

	log.Printf("[Track] Advance: lead depth=%.1f, spawned depth=%.1f x=%.2f", t.Lead().Depth, p.Depth, p.LocalX)
}

// Shift 水平移动整条轨道（不是单个平台）
func (t *Track) Shift(dx float64) {
	t.offset += dx
}

// RefreshBounds 根据当前变换重算所有平台的包围盒
//
// 平台在两次生成之间是静止的，只有轨道被拖动时才真正需要重算；
// 每帧调用一次，保持与小球相同的节奏。
func (t *Track) RefreshBounds() {
	for i := 0; i < t.count; i++ {
		t.At(i).RefreshBounds(t.offset, t.halfExtents)
	}
}

// Lead 返回领头平台（逻辑索引 0）
func (t *Track) Lead() *components.PlatformComponent {
	return t.At(0)
}

// At 返回逻辑索引 i 处的平台，越界返回 nil
func (t *Track) At(i int) *components.PlatformComponent {
	if i < 0 || i >= t.count {
		return nil
	}
	return t.slots[(t.head+i)%len(t.slots)]
}

// Len 返回轨道中平台数量
func (t *Track) Len() int {
	return t.count
}

// Platforms 按逻辑顺序返回平台列表的副本
func (t *Track) Platforms() []*components.PlatformComponent {
	out := make([]*components.PlatformComponent, t.count)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Offset 返回轨道当前水平偏移
func (t *Track) Offset() float64 {
	return t.offset
}

// NextSpawnDepth 返回下一个平台的生成深度
func (t *Track) NextSpawnDepth() float64 {
	return t.nextSpawnDepth
}
