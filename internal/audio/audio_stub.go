//go:build audio_stub

package audio

func Init() error           { return nil }
func SetVolume(vol float64) {}
func Play(kind SoundKind)   {}
