package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundInvalid
	SoundGameEnd
)

const sampleRate = 44100

// AudioManager plays short procedurally generated sound effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		volume:  0.5,
	}
	am.sounds = map[SoundType][]byte{
		SoundMove:    synth(0.08, 0.3, click(440)),
		SoundCapture: synth(0.12, 0.5, click(330)),
		SoundCheck:   synth(0.15, 0.4, tone(880)),
		SoundInvalid: synth(0.10, 0.15, tone(150)),
		SoundGameEnd: synth(0.40, 0.5, chord(261.63, 329.63, 392.00)),
	}
	return am
}

// wave returns a sample in [-1, 1] at time t for a sound of the given
// progress (0 to 1).
type wave func(t, progress float64) float64

func click(freq float64) wave {
	return func(t, _ float64) float64 {
		return math.Sin(2*math.Pi*freq*t) * math.Exp(-t*30)
	}
}

func tone(freq float64) wave {
	return func(t, progress float64) float64 {
		return math.Sin(2*math.Pi*freq*t) * envelope(progress)
	}
}

func chord(freqs ...float64) wave {
	return func(t, progress float64) float64 {
		sum := 0.0
		for _, f := range freqs {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		return sum / float64(len(freqs)) * envelope(progress)
	}
}

// envelope fades in over the first tenth and out over the rest.
func envelope(progress float64) float64 {
	if progress < 0.1 {
		return progress / 0.1
	}
	return 1.0 - (progress-0.1)/0.9
}

// synth renders w as 16-bit stereo PCM.
func synth(duration, amplitude float64, w wave) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		val := int16(w(t, t/duration) * amplitude * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}
