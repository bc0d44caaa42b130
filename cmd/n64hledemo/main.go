// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command n64hledemo feeds a small, hand-built display list through
// interp.Run and prints a summary of the resulting workload.Workload, the
// way a renderer's integration test would exercise this module without
// owning any GPU device itself (present.Output is named but never
// constructed here — see present/doc.go).
package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/n64hle/interp"
	"github.com/gogpu/n64hle/internal/diag"
	"github.com/gogpu/n64hle/rdram"
)

// F3DEX2 opcode bytes this demo's canned display list uses, matching
// gbi.F3DEX2Table's own assignment (see gbi/opcode.go).
const (
	opVtx       = 0x01
	opTri1      = 0x05
	opEndDL     = 0xDF
	opSetFillClr = 0xF7
	opFillRect  = 0xF6
	opSetCImg   = 0xFF
)

// dlBuilder appends 8-byte display-list commands to an RDRAM buffer at
// sequential addresses, the way a compiled microcode display list is laid
// out in memory.
type dlBuilder struct {
	mem  *rdram.Memory
	next uint32
}

func (b *dlBuilder) emit(w0, w1 uint32) {
	b.mem.WriteU32(b.next, w0)
	b.mem.WriteU32(b.next+4, w1)
	b.next += 8
}

// writeVertex packs one 16-byte N64 vertex struct matching
// rsp.DecodeVertex's field order (Y, X, flag, Z, T, S, then RGBA color).
func writeVertex(mem *rdram.Memory, addr uint32, x, y, z int16, r, g, bcol, a uint8) {
	var buf [16]byte
	binary.BigEndian.PutUint16(buf[0:2], uint16(y))
	binary.BigEndian.PutUint16(buf[2:4], uint16(x))
	binary.BigEndian.PutUint16(buf[6:8], uint16(z))
	buf[12], buf[13], buf[14], buf[15] = r, g, bcol, a
	mem.WriteRaw(addr, buf[:])
}

func main() {
	mem := rdram.New(1 << 20)
	mem.SetSegment(0, 0)

	const (
		frameWidth, frameHeight = 320, 240
		colorImageAddr          = 0x00010000
		vertexDataAddr          = 0x00020000
		dlAddr                  = 0x00000000
	)

	dl := &dlBuilder{mem: mem, next: dlAddr}

	// setColorImage(RGBA, 16b, width=320, addr)
	dl.emit(opSetCImg<<24|2<<19|frameWidth, colorImageAddr)

	// setFillColor + fillRect: clear the frame to opaque black.
	dl.emit(opSetFillClr<<24, 0x000000FF)
	dl.emit(opFillRect<<24|frameWidth<<12|frameHeight, 0)

	// One flat-shaded triangle covering the frame's upper-left corner.
	writeVertex(mem, vertexDataAddr+0, 10, 10, 0, 255, 0, 0, 255)
	writeVertex(mem, vertexDataAddr+16, 100, 10, 0, 0, 255, 0, 255)
	writeVertex(mem, vertexDataAddr+32, 10, 100, 0, 0, 0, 255, 255)
	dl.emit(opVtx<<24|3<<16|0, vertexDataAddr)
	dl.emit(opTri1<<24|0<<16|1<<8|2, 0)

	dl.emit(opEndDL<<24, 0)

	i := interp.New(mem, interp.WithLogger(diag.StdLogger{L: log.New(os.Stderr, "n64hle: ", 0)}))
	wl, err := i.Run(dlAddr)
	if err != nil {
		log.Fatalf("display list aborted: %v", err)
	}

	fmt.Printf("framebuffer pairs: %d\n", len(wl.Pairs))
	for n, pair := range wl.Pairs {
		calls := 0
		for _, proj := range pair.Projections {
			calls += len(proj.Calls)
		}
		fmt.Printf("  pair %d: color=%#x %dx%d, projections=%d, draw calls=%d, rect=%v\n",
			n, pair.ColorImage.Address, pair.ColorImage.Width, frameHeight,
			len(pair.Projections), calls, pair.DrawColorRect)
	}
	fmt.Printf("vertices: %d\n", wl.Data.Len())
	fmt.Printf("faces: %d\n", len(wl.Data.Faces)/3)
	fmt.Printf("load operations: %d\n", len(wl.LoadOperations))
	fmt.Printf("warnings: %d\n", len(wl.Warnings))
}
