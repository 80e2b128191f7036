package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// ActivityChangeInfo is the Data Dictionary ActivityChangeInfo record
// (section 2.2): a single bit-packed u16.
//
// Binary Layout (2 bytes), bits numbered from the MSB of the big-endian u16:
//
//	bit 15: driver slot (0 = driver, 1 = co-driver)
//	bit 14: reserved
//	bit 13: card status (0 = inserted, 1 = removed)
//	bits 12-11: activity type (0 rest, 1 availability, 2 work, 3 driving)
//	bits 10-0: minute of the day of the transition (0..1439)
type ActivityChangeInfo struct {
	SlotIsCoDriver bool
	CardStatus     dd.CardSlotStatus
	ActivityType   dd.ActivityType
	TimeInMinutes  uint16

	// Source and CardSlotValid are derived fields. Source depends on
	// CardStatus alone: Manual when the card is removed, otherwise
	// Automatic; the Unknown source is never produced. CardSlotValid
	// depends on CardStatus and whether the enclosing record is from a VU.
	Source        dd.ActivityChangeSource
	CardSlotValid bool
}

// DecodeActivityChangeInfo unpacks a raw u16 ActivityChangeInfo word.
// fromCard must be true when the word is read from a card's daily activity
// record (as opposed to a VU activity record); it affects only the
// derivation of CardSlotValid, not Source.
func DecodeActivityChangeInfo(w uint16, fromCard bool) ActivityChangeInfo {
	out := ActivityChangeInfo{
		TimeInMinutes:  w & 0x07FF,
		ActivityType:   dd.ActivityType((w >> 11) & 0x03),
		CardStatus:     dd.CardSlotStatus((w >> 13) & 0x01),
		SlotIsCoDriver: (w>>15)&0x01 == 1,
	}

	if out.CardStatus == dd.CardSlotRemoved {
		out.Source = dd.ActivitySourceManual
	} else {
		out.Source = dd.ActivitySourceAutomatic
	}

	if fromCard {
		out.CardSlotValid = out.CardStatus == dd.CardSlotInserted
	} else {
		out.CardSlotValid = true
	}

	return out
}

// DailyRecord is one entry of the ring-buffered driver activity storage.
//
// Binary Layout (12 + N bytes):
//
//	previousRecordLength(2) + recordLength(2) + date(4, TimeReal) +
//	dailyPresenceCounter(2, BCD) + distance(2) + activityChangeInfo(recordLength-12)
type DailyRecord struct {
	PreviousRecordLength uint16
	RecordLength         uint16
	Date                 dd.TimeReal
	DailyPresenceCounter string
	DistanceKm           uint16
	Activities           []ActivityChangeInfo
}

// ActivityStructure is the traversed result of the driver activity ring
// buffer: the sequence of DailyRecords from oldest to newest.
type ActivityStructure struct {
	Days []DailyRecord
}

// unmarshalActivityStructure traverses the ring-buffered daily activity
// storage starting at pointerOldest and stopping after the record whose
// starting offset equals pointerNewest.
//
// Invariants enforced: pointerOldest and pointerNewest are both within
// [0, len(data)); every record's declared length is even; a single day may
// not carry more than 1440 activity changes.
func (opts UnmarshalOptions) unmarshalActivityStructure(data []byte, pointerOldest, pointerNewest uint16) (ActivityStructure, error) {
	capacity := len(data)
	if capacity == 0 {
		return ActivityStructure{}, nil
	}
	if int(pointerOldest) >= capacity {
		return ActivityStructure{}, fmt.Errorf("%w: oldest pointer %d >= capacity %d", ddserr.ErrRecordOutOfRange, pointerOldest, capacity)
	}
	if int(pointerNewest) >= capacity {
		return ActivityStructure{}, fmt.Errorf("%w: newest pointer %d >= capacity %d", ddserr.ErrRecordOutOfRange, pointerNewest, capacity)
	}

	ring, err := byteio.NewRingReader(data, int(pointerOldest))
	if err != nil {
		return ActivityStructure{}, err
	}

	var out ActivityStructure
	const maxIterations = 1 << 20 // guards against a malformed ring that never reaches pointerNewest
	for i := 0; ; i++ {
		if i > maxIterations {
			return ActivityStructure{}, fmt.Errorf("%w: ring traversal did not reach newest pointer %d", ddserr.ErrDailyActivity, pointerNewest)
		}
		startPos := ring.Pos()

		prevLen := ring.ReadUint16()
		recLen := ring.ReadUint16()
		if recLen%2 != 0 {
			return ActivityStructure{}, fmt.Errorf("%w: odd record length %d at ring position %d", ddserr.ErrDailyActivity, recLen, startPos)
		}

		dateWord := ring.ReadUint32()
		presenceCounter, err := dd.DecodeBCD(ring.ReadArray(2))
		if err != nil {
			return ActivityStructure{}, fmt.Errorf("failed to decode daily presence counter: %w", err)
		}
		distance := ring.ReadUint16()

		var activities []ActivityChangeInfo
		if recLen > 0 {
			n := int(recLen) - 12
			if n < 0 || n%2 != 0 {
				return ActivityStructure{}, fmt.Errorf("%w: invalid activity change region length %d", ddserr.ErrDailyActivity, n)
			}
			count := n / 2
			if count > 1440 {
				return ActivityStructure{}, fmt.Errorf("%w: day at ring position %d has %d activity changes (max 1440)", ddserr.ErrDailyActivity, startPos, count)
			}
			activities = make([]ActivityChangeInfo, 0, count)
			for j := 0; j < count; j++ {
				activities = append(activities, DecodeActivityChangeInfo(ring.ReadUint16(), true))
			}
		}

		out.Days = append(out.Days, DailyRecord{
			PreviousRecordLength: prevLen,
			RecordLength:         recLen,
			Date:                 dd.TimeRealFromUint32(dateWord),
			DailyPresenceCounter: presenceCounter,
			DistanceKm:           distance,
			Activities:           activities,
		})

		if startPos == int(pointerNewest) {
			break
		}
	}

	return out, nil
}
