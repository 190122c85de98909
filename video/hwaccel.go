package video

import (
	"os/exec"
	"runtime"
	"slices"
	"strings"
	"sync"
)

type HWAccelType string

const (
	HWAccelNone         HWAccelType = ""
	HWAccelVideoToolbox HWAccelType = "videotoolbox" // macOS
	HWAccelVAAPI        HWAccelType = "vaapi"        // Linux
	HWAccelCUDA         HWAccelType = "cuda"         // NVIDIA
	HWAccelDXVA2        HWAccelType = "dxva2"        // Windows
)

type HWAccelConfig struct {
	Type      HWAccelType
	Available bool
}

var (
	hwAccelOnce   sync.Once
	hwAccelConfig HWAccelConfig
)

// DetectHWAccel asks ffmpeg once which decoders are available and picks the
// preferred one for this platform.
func DetectHWAccel() HWAccelConfig {
	hwAccelOnce.Do(func() {
		hwAccelConfig = pickHWAccel(runtime.GOOS, getAvailableHWAccels())
	})
	return hwAccelConfig
}

func pickHWAccel(goos string, available []string) HWAccelConfig {
	var preferred []HWAccelType
	switch goos {
	case "darwin":
		preferred = []HWAccelType{HWAccelVideoToolbox}
	case "linux":
		// CUDA first, usually faster
		preferred = []HWAccelType{HWAccelCUDA, HWAccelVAAPI}
	case "windows":
		preferred = []HWAccelType{HWAccelDXVA2, HWAccelCUDA}
	}

	for _, accel := range preferred {
		if slices.Contains(available, string(accel)) {
			return HWAccelConfig{Type: accel, Available: true}
		}
	}
	return HWAccelConfig{Type: HWAccelNone, Available: false}
}

func getAvailableHWAccels() []string {
	output, err := exec.Command("ffmpeg", "-hide_banner", "-hwaccels").Output()
	if err != nil {
		return nil
	}
	return parseHWAccels(string(output))
}

func parseHWAccels(output string) []string {
	var accels []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && line != "Hardware acceleration methods:" {
			accels = append(accels, line)
		}
	}
	return accels
}

// HWAccelStatus returns a human-readable description of the decode path.
func HWAccelStatus(enabled bool) string {
	if !enabled {
		return "Software decoding"
	}
	switch DetectHWAccel().Type {
	case HWAccelVideoToolbox:
		return "VideoToolbox (macOS)"
	case HWAccelVAAPI:
		return "VAAPI (Linux)"
	case HWAccelCUDA:
		return "CUDA (NVIDIA)"
	case HWAccelDXVA2:
		return "DXVA2 (Windows)"
	default:
		return "Software decoding"
	}
}
