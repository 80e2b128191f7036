package vu

import "testing"

func TestScanBlocksSkipsNoise(t *testing.T) {
	data := []byte{0xFF, 0xFF, trepMagic, 0x99, 0xAA, trepMagic, byte(TREPGen1Overview), 0x01, 0x02, 0x03}
	blocks := ScanBlocks(data)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	if blocks[0].ID != TREPGen1Overview {
		t.Fatalf("ID = %v, want TREPGen1Overview", blocks[0].ID)
	}
	if string(blocks[0].Payload) != string([]byte{0x01, 0x02, 0x03}) {
		t.Fatalf("Payload = %v, want [1 2 3]", blocks[0].Payload)
	}
}

func TestScanBlocksSplitsConsecutiveMarkers(t *testing.T) {
	data := []byte{
		trepMagic, byte(TREPGen1Overview), 0xAA, 0xBB,
		trepMagic, byte(TREPGen1Activities), 0xCC,
	}
	blocks := ScanBlocks(data)
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].ID != TREPGen1Overview || string(blocks[0].Payload) != string([]byte{0xAA, 0xBB}) {
		t.Fatalf("block 0 = %+v", blocks[0])
	}
	if blocks[1].ID != TREPGen1Activities || string(blocks[1].Payload) != string([]byte{0xCC}) {
		t.Fatalf("block 1 = %+v", blocks[1])
	}
}

func TestScanBlocksStopsAtOddballCrashDump(t *testing.T) {
	data := []byte{
		trepMagic, byte(TREPOddballCrashDump), 0xDE, 0xAD,
		trepMagic, byte(TREPGen1Overview), 0x01,
	}
	blocks := ScanBlocks(data)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	if blocks[0].ID != TREPOddballCrashDump {
		t.Fatalf("ID = %v, want TREPOddballCrashDump", blocks[0].ID)
	}
	if string(blocks[0].Payload) != string([]byte{0xDE, 0xAD, trepMagic, byte(TREPGen1Overview), 0x01}) {
		t.Fatalf("Payload = %v, want rest of stream absorbed", blocks[0].Payload)
	}
}

func TestTREPIDGenerationClassification(t *testing.T) {
	cases := []struct {
		id               TREPID
		gen1, gen2, gen2v2 bool
	}{
		{TREPGen1Overview, true, false, false},
		{TREPGen2Overview, false, true, false},
		{TREPGen2V2Overview, false, true, true},
		{TREPOddballCrashDump, false, false, false},
	}
	for _, c := range cases {
		if got := c.id.IsGen1(); got != c.gen1 {
			t.Errorf("id=%v IsGen1() = %v, want %v", c.id, got, c.gen1)
		}
		if got := c.id.IsGen2(); got != c.gen2 {
			t.Errorf("id=%v IsGen2() = %v, want %v", c.id, got, c.gen2)
		}
		if got := c.id.IsGen2V2(); got != c.gen2v2 {
			t.Errorf("id=%v IsGen2V2() = %v, want %v", c.id, got, c.gen2v2)
		}
	}
}
