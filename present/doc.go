// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package present names, at the narrowest possible interface, the VI
// (video interface) scanout consumer spec.md §1 lists as out of scope: the
// core never owns a surface, a swapchain or a device. It only hands a
// finished gputypes-shaped texture descriptor to whatever the host
// application wired up.
//
// # Key Principle
//
// Mirrors render.DeviceHandle's "gg RECEIVES the device from the host, it
// does NOT create one" rule: Output is implemented by the host, not by this
// module. n64hle never calls a constructor for it.
//
// # Thread Safety
//
// Output's methods are called from the render thread described in spec.md
// §5; implementations must serialize their own access if shared across more
// than one caller.
package present
