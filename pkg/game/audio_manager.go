package game

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效ID
const (
	SoundBounce = "bounce"
	SoundScore  = "score"
	SoundFail   = "fail"
)

// tonePreset 合成音效参数：频率从 startHz 线性滑到 endHz
type tonePreset struct {
	startHz  float64
	endHz    float64
	duration time.Duration
}

var tonePresets = map[string]tonePreset{
	SoundBounce: {startHz: 330, endHz: 440, duration: 60 * time.Millisecond},
	SoundScore:  {startHz: 660, endHz: 990, duration: 90 * time.Millisecond},
	SoundFail:   {startHz: 330, endHz: 110, duration: 400 * time.Millisecond},
}

// AudioManager 音效管理器
//
// 游戏没有音频资源文件，所有音效在启动时合成为 PCM 并缓存播放器。
// 作为会话监听者挂在循环驱动器上：弹起、得分、失败各播放一个音效。
type AudioManager struct {
	NopListener

	context         *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - ctx: 音频上下文，为 nil 时所有播放请求静默忽略（无界面模拟、测试）
//   - sm: 设置管理器（读取开关与音量），可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
	if ctx == nil {
		return am
	}

	for id, preset := range tonePresets {
		pcm := synthesizeTone(ctx.SampleRate(), preset.startHz, preset.endHz, preset.duration, 0.3)
		am.soundPlayers[id] = ctx.NewPlayerFromBytes(pcm)
	}
	log.Printf("[AudioManager] Synthesized %d sounds at %d Hz", len(am.soundPlayers), ctx.SampleRate())
	return am
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player, ok := am.soundPlayers[soundID]
	if !ok {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

func (am *AudioManager) Bounced() {
	am.PlaySound(SoundBounce)
}

func (am *AudioManager) ScoreChanged(int) {
	am.PlaySound(SoundScore)
}

func (am *AudioManager) SessionFailed(int) {
	am.PlaySound(SoundFail)
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8
}

// synthesizeTone 生成 16 位小端立体声 PCM（Ebitengine 默认格式）
//
// 频率线性滑动，振幅线性衰减到 0，避免结尾爆音。
func synthesizeTone(sampleRate int, startHz, endHz float64, duration time.Duration, amplitude float64) []byte {
	samples := int(float64(sampleRate) * duration.Seconds())
	buf := make([]byte, samples*4)

	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := startHz + (endHz-startHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := int16(math.Sin(phase) * amplitude * (1 - t) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
