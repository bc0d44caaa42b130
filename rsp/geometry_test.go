package rsp

import "testing"

func TestCullBothRequiresBothBits(t *testing.T) {
	if (GeomCullFront).CullBoth() {
		t.Fatal("single cull bit should not report CullBoth")
	}
	if !(GeomCullFront | GeomCullBack).CullBoth() {
		t.Fatal("both cull bits should report CullBoth")
	}
}

func TestCullFrontOnly(t *testing.T) {
	if !(GeomCullFront).CullFrontOnly() {
		t.Fatal("expected front-only cull")
	}
	if (GeomCullFront | GeomCullBack).CullFrontOnly() {
		t.Fatal("both bits set should not report front-only")
	}
	if (GeomCullBack).CullFrontOnly() {
		t.Fatal("back-only cull should not report front-only")
	}
}

func TestCullingEnabled(t *testing.T) {
	if GeometryMode(0).CullingEnabled() {
		t.Fatal("expected no culling with zero geometry mode")
	}
	if !(GeomCullBack).CullingEnabled() {
		t.Fatal("expected culling enabled with back-cull bit")
	}
}
