// ==============================================================================================
// FILE: capability/audio.go
// ==============================================================================================
package capability

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"os/exec"
	"runtime"
)

// osAudioPlayer plays sound by handing a WAV file to the platform's own
// command-line player. No audio-playback library is grounded anywhere in
// the pack (the Rust original links against `rodio`), so `play-sound`
// synthesizes a small 16-bit PCM mono WAV in memory with encoding/binary
// and hands it, like `play-file`, to the OS player — real playback
// without a fabricated dependency.
type osAudioPlayer struct{}

// NewAudioPlayer returns the default platform AudioPlayer used by
// `play-sound`/`play-file`.
func NewAudioPlayer() AudioPlayer { return osAudioPlayer{} }

const sampleRate = 44100

func (osAudioPlayer) PlaySound(frequencyHz, durationSecs float64) error {
	data := synthesizeTone(frequencyHz, durationSecs)

	tmp, err := os.CreateTemp("", "stack-tone-*.wav")
	if err != nil {
		return err
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return playFile(path)
}

func (osAudioPlayer) PlayFile(path string) error {
	return playFile(path)
}

func playFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("afplay", path)
	case "windows":
		cmd = exec.Command("powershell", "-c", "(New-Object Media.SoundPlayer '"+path+"').PlaySync();")
	default:
		if _, err := exec.LookPath("paplay"); err == nil {
			cmd = exec.Command("paplay", path)
		} else {
			cmd = exec.Command("aplay", path)
		}
	}
	return cmd.Run()
}

// synthesizeTone renders a single sine wave as a mono 16-bit PCM WAV.
func synthesizeTone(frequencyHz, durationSecs float64) []byte {
	if durationSecs <= 0 {
		durationSecs = 0.25
	}
	numSamples := int(durationSecs * sampleRate)
	samples := make([]int16, numSamples)
	for i := range samples {
		t := float64(i) / sampleRate
		samples[i] = int16(math.Sin(2*math.Pi*frequencyHz*t) * 32767 * 0.5)
	}

	var buf bytes.Buffer
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // PCM chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
