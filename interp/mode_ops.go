package interp

import (
	"github.com/gogpu/n64hle/drawattr"
	"github.com/gogpu/n64hle/gbi"
	"github.com/gogpu/n64hle/rsp"
)

// opSetGeometryMode executes setGeometryMode(mask): ORs mask into the RSP
// geometry mode bitfield, flagging checkDrawState's shared dirty bitset
// since rsp.State does not itself depend on drawattr (spec.md §4.2).
func (i *Interpreter) opSetGeometryMode(cmd gbi.Command) {
	i.RSP.SetGeometryModeBits(rsp.GeometryMode(cmd.W1))
	i.RDP.Dirty.Mark(drawattr.GeometryMode)
}

// opClearGeometryMode executes clearGeometryMode(mask).
func (i *Interpreter) opClearGeometryMode(cmd gbi.Command) {
	i.RSP.ClearGeometryModeBits(rsp.GeometryMode(cmd.W1))
	i.RDP.Dirty.Mark(drawattr.GeometryMode)
}

// opSetOtherModeH installs the high word of the other-mode register,
// leaving the low word untouched.
func (i *Interpreter) opSetOtherModeH(cmd gbi.Command) {
	i.RDP.SetOtherMode(cmd.W1, i.RDP.OtherMode.Low)
}

// opSetOtherModeL installs the low word, leaving the high word untouched.
func (i *Interpreter) opSetOtherModeL(cmd gbi.Command) {
	i.RDP.SetOtherMode(i.RDP.OtherMode.High, cmd.W1)
}

// opSetOtherModeBoth executes the RDP-native rdpSetOtherMode(high, low),
// installing both halves in a single command.
func (i *Interpreter) opSetOtherModeBoth(cmd gbi.Command) {
	i.RDP.SetOtherMode(uint32(cmd.W0&0xFFFFFF), cmd.W1)
}

// opSetCombine executes setCombine: installs the two-cycle combiner
// pattern packed across both command words.
func (i *Interpreter) opSetCombine(cmd gbi.Command) {
	raw := uint64(cmd.W0&0x00FFFFFF)<<32 | uint64(cmd.W1)
	i.RDP.SetCombine(raw)
}

// opTexture executes texture(tile, levels, on, sc, tc): installs the RSP's
// texture-scroll binding used to derive the active tile and texcoord
// scale for subsequent vertex loads.
func (i *Interpreter) opTexture(cmd gbi.Command) {
	levels := u8(cmd.W0, 16)
	tile := u8(cmd.W0, 8)
	on := u8(cmd.W0, 0) != 0
	sc := u16(cmd.W1, 16)
	tc := u16(cmd.W1, 0)
	i.RSP.SetTexture(tile, levels, on, sc, tc)
}
