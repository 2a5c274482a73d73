//go:build !audio_stub

// Package audio plays short procedural clicks when touches begin and end.
package audio

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const ChannelCount = 2

// maxVoices limits overlapping clicks when many fingers land at once.
const maxVoices = 4

type system struct {
	ctx   *oto.Context
	ready chan struct{}
}

var (
	global      *system
	voices      int32
	volumeBits  atomic.Uint64
	initialized atomic.Bool
)

func init() {
	volumeBits.Store(math.Float64bits(0.6))
}

// Init opens the audio device. Sounds are dropped until it is ready.
func Init() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return err
	}
	global = &system{ctx: ctx, ready: ready}
	initialized.Store(true)
	return nil
}

func SetVolume(vol float64) {
	volumeBits.Store(math.Float64bits(clampF(vol, 0, 1)))
}

func volume() float64 { return math.Float64frombits(volumeBits.Load()) }

// Play plays kind asynchronously. It never blocks the frame loop.
func Play(kind SoundKind) {
	if !initialized.Load() {
		return
	}
	select {
	case <-global.ready:
	default:
		return
	}
	if atomic.AddInt32(&voices, 1) > maxVoices {
		atomic.AddInt32(&voices, -1)
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		atomic.AddInt32(&voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&voices, -1)
		reader := &soundReader{data: samples}
		player := global.ctx.NewPlayer(reader)
		player.SetVolume(volume())
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
