// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle is the GPU device the host application owns and lends to the
// renderer that consumes this module's Workload, mirroring the
// "gg RECEIVES the device from the host" pattern of the teacher's
// render.DeviceHandle — n64hle never creates a gpucontext.Device itself.
type DeviceHandle = gpucontext.DeviceProvider

// FrameDescriptor names the scanout target a completed Workload is
// eventually drawn into: a width/height/format triple the (out-of-scope) VI
// emulator resolves against the N64's actual video-interface registers
// (resolution, AA mode, gamma), not something this module computes.
type FrameDescriptor struct {
	Width, Height uint32
	Format        gputypes.TextureFormat
}

// Output is implemented by the host application's VI scanout consumer. The
// interpreter and workload packages never call it directly — it exists so
// a cmd/n64hledemo-style harness has a documented seam to hand workloads
// across, matching spec.md §1's "named only at their interfaces" carve-out
// for window/surface management and the VI emulator.
type Output interface {
	// FrameDescriptor reports the current scanout target shape.
	FrameDescriptor() FrameDescriptor
}

// NullOutput is a zero-value Output for tests and the demo harness, the
// same role render.NullDeviceHandle plays for DeviceHandle.
type NullOutput struct{}

// FrameDescriptor returns a zeroed descriptor.
func (NullOutput) FrameDescriptor() FrameDescriptor { return FrameDescriptor{} }
