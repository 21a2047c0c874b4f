package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScoreRecord 持久化的成绩记录
type ScoreRecord struct {
	BestScore   int `yaml:"bestScore"`
	LastScore   int `yaml:"lastScore"`
	GamesPlayed int `yaml:"gamesPlayed"`
}

// ScoreManager 最高分记录
//
// 作为会话监听者挂在循环驱动器上：每局失败时记录一次成绩并立即保存。
// gdata 不可用时退化为仅内存记录。
type ScoreManager struct {
	NopListener

	gdataManager *gdata.Manager
	record       ScoreRecord
}

const (
	scoresObject   = "scores"
	scoresProperty = "record"
)

// NewScoreManager 创建成绩管理器并加载已有记录
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[ScoreManager] Warning: %v (starting from empty record)", err)
	}
	return sm
}

// Load 从 gdata 加载成绩记录
func (sm *ScoreManager) Load() error {
	sm.record = ScoreRecord{}
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load score record: %w", err)
	}

	var record ScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal score record: %w", err)
	}
	if record.BestScore < 0 || record.LastScore < 0 || record.GamesPlayed < 0 {
		return fmt.Errorf("corrupted score record: %+v", record)
	}

	sm.record = record
	return nil
}

// Save 保存成绩记录，降级模式下直接返回 nil
func (sm *ScoreManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&sm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save score record: %w", err)
	}
	return nil
}

// RecordGame 记录一局成绩
//
// 返回:
//   - bool: 是否刷新了最高分
func (sm *ScoreManager) RecordGame(score int) bool {
	if score < 0 {
		score = 0
	}

	sm.record.GamesPlayed++
	sm.record.LastScore = score
	newBest := score > sm.record.BestScore
	if newBest {
		sm.record.BestScore = score
		log.Printf("[ScoreManager] New best score: %d", score)
	}

	if err := sm.Save(); err != nil {
		log.Printf("[ScoreManager] Warning: %v", err)
	}
	return newBest
}

// SessionFailed 实现 Listener，每局结束时记录成绩
func (sm *ScoreManager) SessionFailed(finalScore int) {
	sm.RecordGame(finalScore)
}

// Best 返回最高分
func (sm *ScoreManager) Best() int {
	return sm.record.BestScore
}

// Record 返回当前记录的副本
func (sm *ScoreManager) Record() ScoreRecord {
	return sm.record
}
