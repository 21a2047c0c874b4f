// Package ecs 提供渲染端使用的最小实体-组件存储
//
// 核心玩法逻辑不依赖本包；场景在平台生成时为其分配实体（可视句柄），
// 平台滑出轨道窗口时销毁对应实体。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// InvalidEntity 表示未分配的可视句柄
const InvalidEntity EntityID = 0

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID列表，在帧末统一清理
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回实际删除的数量
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for _, id := range em.entitiesToDestroy {
		if _, ok := em.components[id]; ok {
			delete(em.components, id)
			removed++
		}
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	return removed
}

// EntityCount 返回当前存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// AddComponent 为实体添加组件，同类型组件会被覆盖
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, ok := em.components[id]; ok {
		compMap[reflect.TypeFor[T]()] = component
	}
}

// GetComponent 获取实体的特定类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, ok := em.components[id]
	if !ok {
		return zero, false
	}
	comp, ok := compMap[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	return comp.(T), true
}

// GetEntitiesWith1 查询拥有组件 A 的所有实体，按ID升序返回
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[A]())
}

func (em *EntityManager) query(ct reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, found := compMap[ct]; found {
			result = append(result, id)
		}
	}
	// map 遍历顺序不确定，排序保证渲染与测试可复现
	slices.Sort(result)
	return result
}
