package audio

import (
	"math"
	"sync/atomic"
)

const SampleRate = 44100

var noiseSeeds uint64

type SoundKind int

const (
	SoundTouchBegin SoundKind = iota
	SoundTouchEnd
	SoundTouchCancel
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < 2; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundTouchBegin:
		return genClick(1400, 700, 65)
	case SoundTouchEnd:
		return genClick(900, -300, 50)
	case SoundTouchCancel:
		return genCancel()
	}
	return nil
}

// genClick: short FM blip sweeping from freq by sweep Hz over ms milliseconds.
func genClick(freq, sweep float64, ms int) []byte {
	n := SampleRate * ms / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		f := freq - sweep*p
		s := fm(t, f, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCancel: filtered noise burst.
func genCancel() []byte {
	n := SampleRate * 80 / 1000
	buf := makeBuf(n)
	seed := atomic.AddUint64(&noiseSeeds, 1)*0x9E3779B97F4A7C15 + 1
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.3, 0.2, 0.4)
		lp += (lcg(&seed) - lp) * 0.25
		putStereoF32(buf, i, softSat(lp*env*0.5))
	}
	return buf
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
