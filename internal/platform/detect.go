package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// kernelArch is a test seam for host.KernelArch.
var kernelArch = host.KernelArch

// platformInformation is a test seam for host.PlatformInformationWithContext.
var platformInformation = host.PlatformInformationWithContext

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs platform detection and returns platform information.
// The OS comes from runtime.GOOS. The machine name comes from the kernel via
// gopsutil, so a launcher built for one architecture reports what the host
// actually runs; runtime.GOARCH is used when the kernel cannot be asked.
//
// On Linux, if gopsutil fails to detect the distribution, the distro fields
// stay empty and detection still succeeds.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:      runtime.GOOS,
		Machine: detectMachine(),
	}

	// Distribution details only matter on Linux
	if runtime.GOOS == string(Linux) {
		platform, family, version, err := platformInformation(ctx)
		if err != nil {
			// Check if context was cancelled - this is a hard failure
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			return info, nil
		}

		platform = normalizeName(platform)
		if platform != "" {
			info.Platform = platform
			info.Family = mapFamily(family)
			info.Version = normalizeName(version)
		}
	}

	return info, nil
}

// detectMachine returns the lower-cased kernel machine name.
func detectMachine() string {
	machine, err := kernelArch()
	if err != nil || normalizeName(machine) == "" {
		return runtime.GOARCH
	}
	return normalizeName(machine)
}
