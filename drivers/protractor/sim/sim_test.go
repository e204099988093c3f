package sim

import (
	"testing"

	"protractor-go/drivers/protractor"
)

func scene() ([]Target, []Target) {
	objects := []Target{
		{AngleRaw: 0x00, Visibility: 0xFF},
		{AngleRaw: 0xFF, Visibility: 0xC0},
	}
	paths := []Target{
		{AngleRaw: 0x80, Visibility: 0x40},
	}
	return objects, paths
}

func TestSerialScan(t *testing.T) {
	p := New()
	p.SetScene(scene())

	d := protractor.New(p)
	if !d.ReadN(2) {
		t.Fatal("scan over simulated serial failed")
	}
	if got := d.ObjectCount(); got != 2 {
		t.Fatalf("ObjectCount = %d, want 2", got)
	}
	if got := d.ObjectAngle(0); got != 0 {
		t.Errorf("ObjectAngle(0) = %d, want 0", got)
	}
	if got := d.ObjectAngle(1); got != 180 {
		t.Errorf("ObjectAngle(1) = %d, want 180", got)
	}
	if got := d.PathAngle(0); got != 90 {
		t.Errorf("PathAngle(0) = %d, want 90", got)
	}
	if got := d.PathVisibility(0); got != 0x40 {
		t.Errorf("PathVisibility(0) = %d, want 64", got)
	}
}

func TestTwoWireScan(t *testing.T) {
	p := New()
	p.SetScene(scene())

	d := protractor.NewI2C(p, 0) // factory address
	if !d.Read() {
		t.Fatal("scan over simulated two-wire failed")
	}
	if got, want := d.ObjectVisibility(0), 0xFF; got != want {
		t.Errorf("ObjectVisibility(0) = %d, want %d", got, want)
	}
	if got := d.PathCount(); got != 1 {
		t.Errorf("PathCount = %d, want 1", got)
	}
}

func TestTwoWireWrongAddress(t *testing.T) {
	p := New()
	d := protractor.NewI2C(p, 0x22)
	if d.Read() {
		t.Fatal("scan succeeded against a non-acking address")
	}
}

func TestConfigurationPersists(t *testing.T) {
	p := New()
	d := protractor.New(p)

	d.SetScanTime(100)
	if got := p.ScanMillis(); got != 100 {
		t.Errorf("ScanMillis = %d, want 100", got)
	}

	// Sub-minimum periods arrive as the short clamped frame.
	d.SetScanTime(5)
	if got := p.ScanMillis(); got != protractor.MinScanMillis {
		t.Errorf("ScanMillis = %d, want clamped %d", got, protractor.MinScanMillis)
	}

	// Out-of-range values never reach the peripheral.
	d.SetScanTime(-3)
	if got := p.ScanMillis(); got != protractor.MinScanMillis {
		t.Errorf("ScanMillis = %d after dropped command, want %d", got, protractor.MinScanMillis)
	}

	d.SetBaudRate(115200)
	if got := p.Baud(); got != 115200 {
		t.Errorf("Baud = %d, want 115200", got)
	}

	d.LEDShowPaths()
	if got := p.LEDMode(); got != protractor.LEDModePaths {
		t.Errorf("LEDMode = %#x, want %#x", got, protractor.LEDModePaths)
	}
}

func TestAddressChangeTakesEffect(t *testing.T) {
	p := New()
	d := protractor.NewI2C(p, 0)
	d.SetI2CAddress(0x10)
	if got := p.Addr(); got != 0x10 {
		t.Fatalf("Addr = %#x, want 0x10", got)
	}

	// The old attachment no longer acks; a new one at the stored address does.
	if d.Read() {
		t.Error("scan at the factory address succeeded after the address change")
	}
	d2 := protractor.NewI2C(p, 0x10)
	p.SetScene(scene())
	if !d2.Read() {
		t.Error("scan at the new address failed")
	}
}

func TestRequestBudgetTruncatesResponse(t *testing.T) {
	p := New()
	objects := []Target{
		{AngleRaw: 10, Visibility: 1},
		{AngleRaw: 20, Visibility: 2},
		{AngleRaw: 30, Visibility: 3},
	}
	p.SetScene(objects, nil)

	d := protractor.New(p)
	if !d.ReadN(1) {
		t.Fatal("ReadN(1) failed")
	}
	// The header still reports the scene's three objects, but only the
	// first record fits the requested budget.
	if got := d.ObjectCount(); got != 3 {
		t.Fatalf("ObjectCount = %d, want 3", got)
	}
	if got := d.ObjectVisibility(0); got != 1 {
		t.Errorf("ObjectVisibility(0) = %d, want 1", got)
	}
	if got := d.ObjectAngle(1); got != -1 {
		t.Errorf("ObjectAngle(1) = %d, want -1 beyond the budget", got)
	}
}

func TestCommandSplitAcrossWrites(t *testing.T) {
	p := New()
	frame := []byte{protractor.CmdScanTime, 0x64, 0x00, protractor.FrameEnd}
	for _, b := range frame {
		if _, err := p.Write([]byte{b}); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if got := p.ScanMillis(); got != 100 {
		t.Errorf("ScanMillis = %d, want 100 after byte-wise frame", got)
	}
}
