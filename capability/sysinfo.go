// ==============================================================================================
// FILE: capability/sysinfo.go
// ==============================================================================================
package capability

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// osSysInfo answers `sys-info` probes from the stdlib runtime/os packages
// and a handful of platform utilities (uname, sw_vers, sysctl, ver). No
// system-info library is grounded anywhere in the pack (the Rust original
// pulls in the `sys-info` crate), so every probe here is a best-effort
// stdlib/os-exec shim: a probe that cannot be answered on the current
// platform returns an error, which the dispatcher maps to the documented
// error code rather than a fabricated value.
type osSysInfo struct{}

// NewSysInfo returns the default platform SysInfo used by `sys-info`.
func NewSysInfo() SysInfo { return osSysInfo{} }

func (osSysInfo) OSRelease() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		out, err := exec.Command("sw_vers", "-productVersion").Output()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(out)), nil
	case "linux":
		out, err := exec.Command("uname", "-r").Output()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(out)), nil
	case "windows":
		out, err := exec.Command("cmd", "/c", "ver").Output()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(out)), nil
	default:
		return "", fmt.Errorf("os release not available on %s", runtime.GOOS)
	}
}

func (osSysInfo) OSType() (string, error) {
	return runtime.GOOS, nil
}

func (osSysInfo) CPUNum() (float64, error) {
	return float64(runtime.NumCPU()), nil
}

func (osSysInfo) CPUSpeed() (float64, error) {
	switch runtime.GOOS {
	case "darwin":
		out, err := exec.Command("sysctl", "-n", "hw.cpufrequency_max").Output()
		if err == nil {
			if hz, perr := strconv.ParseFloat(strings.TrimSpace(string(out)), 64); perr == nil {
				return hz / 1e6, nil
			}
		}
		return 0, fmt.Errorf("cpu speed not available")
	case "linux":
		data, err := os.ReadFile("/proc/cpuinfo")
		if err != nil {
			return 0, err
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(line, "cpu MHz") {
				parts := strings.SplitN(line, ":", 2)
				if len(parts) == 2 {
					if mhz, perr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); perr == nil {
						return mhz, nil
					}
				}
			}
		}
		return 0, fmt.Errorf("cpu speed not found in /proc/cpuinfo")
	default:
		return 0, fmt.Errorf("cpu speed not available on %s", runtime.GOOS)
	}
}

func (osSysInfo) HostName() (string, error) {
	return os.Hostname()
}

func (osSysInfo) MemSize() (float64, error) {
	total, _, err := memTotals()
	return total, err
}

func (osSysInfo) MemUsed() (float64, error) {
	if runtime.GOOS != "linux" {
		return 0, fmt.Errorf("memory used not available on %s", runtime.GOOS)
	}
	total, free, err := memTotals()
	if err != nil {
		return 0, err
	}
	return total - free, nil
}

// memTotals returns (total KB, free KB) from /proc/meminfo on Linux. On
// Darwin it reads only the total via sysctl and reports free as 0; other
// platforms return an error. It is intentionally coarse: spec.md only
// promises a KB-scale figure, not live accounting precision.
func memTotals() (float64, float64, error) {
	switch runtime.GOOS {
	case "linux":
		data, err := os.ReadFile("/proc/meminfo")
		if err != nil {
			return 0, 0, err
		}
		var total, free float64
		for _, line := range strings.Split(string(data), "\n") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			val, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				continue
			}
			switch fields[0] {
			case "MemTotal:":
				total = val
			case "MemAvailable:":
				free = val
			}
		}
		if total == 0 {
			return 0, 0, fmt.Errorf("MemTotal not found in /proc/meminfo")
		}
		return total, free, nil
	case "darwin":
		out, err := exec.Command("sysctl", "-n", "hw.memsize").Output()
		if err != nil {
			return 0, 0, err
		}
		bytes, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
		if err != nil {
			return 0, 0, err
		}
		return bytes / 1024, 0, nil
	default:
		return 0, 0, fmt.Errorf("memory info not available on %s", runtime.GOOS)
	}
}
