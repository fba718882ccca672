package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效ID
const (
	SoundSlideStart = "slide_start" // 开始拖动
	SoundConfirm    = "confirm"     // 到达终点
	SoundReset      = "reset"       // 回到起点
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// toneSpec 合成音效参数：依次播放的频率（Hz）和总时长（秒）
type toneSpec struct {
	freqs    []float64
	duration float64
}

var soundTones = map[string]toneSpec{
	SoundSlideStart: {freqs: []float64{880}, duration: 0.04},
	SoundConfirm:    {freqs: []float64{660, 990}, duration: 0.2},
	SoundReset:      {freqs: []float64{520}, duration: 0.06},
}

// AudioManager 音频管理器
// 职责：
//   - 播放滑动按钮的反馈音效（音效在内存中合成，不依赖资源文件）
//   - 从 SettingsManager 读取开关和音量
//
// 音频上下文在第一次播放时才创建，测试和无声卡环境下不播放就不会初始化音频设备。
type AudioManager struct {
	settingsManager *SettingsManager         // 可为 nil（始终按默认偏好播放）
	context         *audio.Context           // 延迟创建
	soundPlayers    map[string]*audio.Player // 音效ID -> 播放器
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - sm: SettingsManager 实例（读取音效开关和音量，可为 nil）
func NewAudioManager(sm *SettingsManager) *AudioManager {
	return &AudioManager{
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// Enabled 当前偏好是否允许播放音效
func (am *AudioManager) Enabled() bool {
	if am == nil {
		return false
	}
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetPreferences().SoundEnabled
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效ID（SoundSlideStart 等）
//
// 返回：
//   - bool: 是否成功播放；音效关闭或ID未知时返回 false
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.Enabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	tone, ok := soundTones[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	pcm := SynthesizeTone(tone.freqs, tone.duration, AudioSampleRate)
	player := am.audioContext().NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	log.Printf("[AudioManager] Synthesized sound %s (%d bytes)", soundID, len(pcm))
	return player
}

func (am *AudioManager) audioContext() *audio.Context {
	if am.context == nil {
		// 一个进程只能有一个音频上下文
		if ctx := audio.CurrentContext(); ctx != nil {
			am.context = ctx
		} else {
			am.context = audio.NewContext(AudioSampleRate)
		}
	}
	return am.context
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSoundVolume
	}
	return am.settingsManager.GetPreferences().SoundVolume
}

// Close 停止并释放所有播放器
func (am *AudioManager) Close() {
	for id, player := range am.soundPlayers {
		if err := player.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close sound %s: %v", id, err)
		}
	}
	am.soundPlayers = make(map[string]*audio.Player)
}

// SynthesizeTone 合成一段正弦提示音
//
// 频率依次等分总时长，每段带线性淡入淡出避免爆音。
// 输出为 ebiten/audio 要求的 16 位小端立体声 PCM。
func SynthesizeTone(freqs []float64, duration float64, sampleRate int) []byte {
	if len(freqs) == 0 || duration <= 0 || sampleRate <= 0 {
		return nil
	}

	total := int(duration * float64(sampleRate))
	segment := total / len(freqs)
	if segment == 0 {
		return nil
	}
	fade := segment / 8

	buf := make([]byte, 0, segment*len(freqs)*4)
	for _, freq := range freqs {
		for i := 0; i < segment; i++ {
			gain := 0.5
			if fade > 0 {
				switch {
				case i < fade:
					gain *= float64(i) / float64(fade)
				case i >= segment-fade:
					gain *= float64(segment-1-i) / float64(fade)
				}
			}
			v := gain * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
			sample := uint16(int16(v * math.MaxInt16))
			buf = binary.LittleEndian.AppendUint16(buf, sample)
			buf = binary.LittleEndian.AppendUint16(buf, sample)
		}
	}
	return buf
}
