package card

import (
	"errors"
	"testing"

	"github.com/fleetcodec/tachograph-go/internal/dd"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

func TestDecodeActivityChangeInfoBitLayout(t *testing.T) {
	// card inserted, time = 480 minutes.
	w := uint16(480)
	info := DecodeActivityChangeInfo(w, true)
	if info.TimeInMinutes != 480 {
		t.Fatalf("TimeInMinutes = %d, want 480", info.TimeInMinutes)
	}
	if info.CardStatus != dd.CardSlotInserted {
		t.Fatalf("CardStatus = %v, want Inserted", info.CardStatus)
	}
	if info.Source != dd.ActivitySourceAutomatic {
		t.Fatalf("Source = %v, want Automatic", info.Source)
	}
	if !info.CardSlotValid {
		t.Fatal("CardSlotValid should be true when card is inserted")
	}
}

func TestDecodeActivityChangeInfoAllTimes(t *testing.T) {
	for tm := uint16(0); tm <= 1439; tm++ {
		info := DecodeActivityChangeInfo(tm, false)
		if info.TimeInMinutes != tm {
			t.Fatalf("TimeInMinutes = %d, want %d", info.TimeInMinutes, tm)
		}
	}
}

func buildDailyRecord(date uint32, presenceCounterBCD [2]byte, distance uint16, activities []uint16) []byte {
	n := 12 + len(activities)*2
	buf := make([]byte, n)
	buf[0] = 0
	buf[1] = 0
	buf[2] = byte(n >> 8)
	buf[3] = byte(n)
	buf[4] = byte(date >> 24)
	buf[5] = byte(date >> 16)
	buf[6] = byte(date >> 8)
	buf[7] = byte(date)
	buf[8] = presenceCounterBCD[0]
	buf[9] = presenceCounterBCD[1]
	buf[10] = byte(distance >> 8)
	buf[11] = byte(distance)
	for i, a := range activities {
		buf[12+2*i] = byte(a >> 8)
		buf[13+2*i] = byte(a)
	}
	return buf
}

func TestRingBufferTerminatesAfterExactlyNDays(t *testing.T) {
	var opts UnmarshalOptions
	day1 := buildDailyRecord(1704067200, [2]byte{0x00, 0x01}, 10, []uint16{100, 200})
	day2 := buildDailyRecord(1704153600, [2]byte{0x00, 0x02}, 20, []uint16{300})
	data := append(append([]byte{}, day1...), day2...)

	result, err := opts.unmarshalActivityStructure(data, 0, uint16(len(day1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(result.Days))
	}
}

func TestActivityCapExceeded(t *testing.T) {
	var opts UnmarshalOptions
	activities := make([]uint16, 1441)
	day := buildDailyRecord(1704067200, [2]byte{0x00, 0x01}, 10, activities)

	_, err := opts.unmarshalActivityStructure(day, 0, 0)
	if !errors.Is(err, ddserr.ErrDailyActivity) {
		t.Fatalf("expected ErrDailyActivity, got %v", err)
	}
}

func TestRingBufferPointerOutOfRange(t *testing.T) {
	var opts UnmarshalOptions
	data := make([]byte, 10)
	if _, err := opts.unmarshalActivityStructure(data, 20, 0); !errors.Is(err, ddserr.ErrRecordOutOfRange) {
		t.Fatalf("expected ErrRecordOutOfRange, got %v", err)
	}
}
