package smartcube

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/neoncube"
)

// frame wraps a payload the way the cube does.
func frame(msgType byte, payload ...byte) []byte {
	length := byte(len(payload) + 4)
	data := append([]byte{FramePrefix, length, msgType}, payload...)
	var sum byte
	for _, b := range data {
		sum += b
	}
	return append(data, sum, FrameSuffix1, FrameSuffix2)
}

func TestParse(t *testing.T) {
	msg, err := Parse(frame(MsgTypeRotation, 0x08, 0x03))
	if err != nil {
		t.Fatal(err)
	}
	if msg.Type != MsgTypeRotation {
		t.Errorf("type = 0x%02X", msg.Type)
	}
	if len(msg.Payload) != 2 || msg.Payload[0] != 0x08 || msg.Payload[1] != 0x03 {
		t.Errorf("payload = %v", msg.Payload)
	}
	if msg.RawBase64 == "" {
		t.Error("raw frame should be kept")
	}
}

func TestParseErrors(t *testing.T) {
	good := frame(MsgTypeBattery, 80)

	badPrefix := append([]byte(nil), good...)
	badPrefix[0] = 0x00

	badChecksum := append([]byte(nil), good...)
	badChecksum[len(badChecksum)-3]++

	badSuffix := append([]byte(nil), good...)
	badSuffix[len(badSuffix)-1] = 0x00

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", []byte{FramePrefix, 1}, ErrMessageTooShort},
		{"prefix", badPrefix, ErrInvalidPrefix},
		{"checksum", badChecksum, ErrInvalidChecksum},
		{"suffix", badSuffix, ErrInvalidSuffix},
		{"truncated", good[:len(good)-2], ErrInvalidLength},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.data); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestBuildCommandParses(t *testing.T) {
	msg, err := Parse(BuildCommand(CmdRequestBattery))
	if err != nil {
		t.Fatal(err)
	}
	if msg.Type != CmdRequestBattery || len(msg.Payload) != 0 {
		t.Errorf("got %+v", msg)
	}
}

func TestDecodeRotation(t *testing.T) {
	rots, err := DecodeRotation([]byte{0x08, 0x00, 0x05, 0x03})
	if err != nil {
		t.Fatal(err)
	}
	if len(rots) != 2 {
		t.Fatalf("got %d rotations", len(rots))
	}
	if rots[0].Color != "red" || !rots[0].Clockwise {
		t.Errorf("first = %+v, want red clockwise", rots[0])
	}
	if rots[1].Color != "white" || rots[1].Clockwise || rots[1].CenterOrientation != 3 {
		t.Errorf("second = %+v, want white counter-clockwise", rots[1])
	}

	if _, err := DecodeRotation([]byte{0x08}); err == nil {
		t.Error("odd payload should fail")
	}
	if _, err := DecodeRotation([]byte{0x0C, 0x00}); err == nil {
		t.Error("face code 0x0C should fail")
	}
}

func TestDecodeBattery(t *testing.T) {
	if level, err := DecodeBattery([]byte{73}); err != nil || level != 73 {
		t.Errorf("DecodeBattery = %d, %v", level, err)
	}
	if _, err := DecodeBattery(nil); err == nil {
		t.Error("empty payload should fail")
	}
}

func TestDecodeCubeType(t *testing.T) {
	for code, want := range map[byte]string{0x00: "standard", 0x01: "edge", 0x07: "standard"} {
		if got, err := DecodeCubeType([]byte{code}); err != nil || got != want {
			t.Errorf("DecodeCubeType(%#x) = %q, %v", code, got, err)
		}
	}
	if _, err := DecodeCubeType(nil); err == nil {
		t.Error("empty cube type payload should fail")
	}
}

func TestDecodeOfflineStats(t *testing.T) {
	st, err := DecodeOfflineStats([]byte("120#95#3"))
	if err != nil {
		t.Fatal(err)
	}
	if st != (OfflineStats{Moves: 120, Seconds: 95, Solves: 3}) {
		t.Errorf("DecodeOfflineStats() = %+v", st)
	}
	for _, bad := range []string{"1#2", "a#2#3", ""} {
		if _, err := DecodeOfflineStats([]byte(bad)); err == nil {
			t.Errorf("DecodeOfflineStats(%q) should fail", bad)
		}
	}
}

func TestRotationMove(t *testing.T) {
	tests := []struct {
		code byte
		size int
		want string
	}{
		{0x08, 3, "x+1'"}, // R
		{0x09, 3, "x+1"},  // R'
		{0x0A, 3, "x-1"},  // L
		{0x04, 3, "y+1'"}, // U
		{0x06, 3, "y-1"},  // D
		{0x02, 3, "z+1'"}, // F
		{0x00, 3, "z-1"},  // B
		{0x08, 4, "x+1.5'"},
		{0x01, 5, "z-2'"}, // B'
	}
	for _, tt := range tests {
		rots, err := DecodeRotation([]byte{tt.code, 0})
		if err != nil {
			t.Fatal(err)
		}
		if got := rots[0].Move(tt.size).Notation(); got != tt.want {
			t.Errorf("code 0x%02X size %d: got %s, want %s", tt.code, tt.size, got, tt.want)
		}
	}
}

func TestRotationTurnsLikeThePhysicalCube(t *testing.T) {
	cube, err := neoncube.NewCube(3, neoncube.ThemeNeon)
	if err != nil {
		t.Fatal(err)
	}

	// R carries the front face up.
	r := Rotation{Color: "red", Clockwise: true}
	if err := cube.ApplyMove(r.Move(3)); err != nil {
		t.Fatal(err)
	}
	cell, ok := cube.Cell(neoncube.Coord{2, 2, 0})
	if !ok {
		t.Fatal("missing cell")
	}
	if got := cell.Color(neoncube.SlotPosY); got != neoncube.ColorFront {
		t.Errorf("after R the top-right sticker is %v, want F", got)
	}

	// U carries the front face left.
	cube, _ = neoncube.NewCube(3, neoncube.ThemeNeon)
	u := Rotation{Color: "white", Clockwise: true}
	if err := cube.ApplyMove(u.Move(3)); err != nil {
		t.Fatal(err)
	}
	cell, _ = cube.Cell(neoncube.Coord{-2, 2, 0})
	if got := cell.Color(neoncube.SlotNegX); got != neoncube.ColorFront {
		t.Errorf("after U the top-left sticker is %v, want F", got)
	}
}

type fakeRotator struct {
	size  int
	moves []neoncube.Move
	err   error
}

func (f *fakeRotator) Rotate(m neoncube.Move) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.moves = append(f.moves, m)
	return false, nil
}

func (f *fakeRotator) Size() int { return f.size }

func TestBridge(t *testing.T) {
	rot := &fakeRotator{size: 4}
	b := NewBridge(rot, nil)

	if b.Battery() != -1 {
		t.Errorf("initial battery = %d", b.Battery())
	}

	for _, data := range [][]byte{
		frame(MsgTypeRotation, 0x08, 0x00, 0x09, 0x00),
		frame(MsgTypeBattery, 55),
		frame(MsgTypeCubeType, 0x01),
		frame(MsgTypeOfflineStats, []byte("12#30#1")...),
		frame(MsgTypeRotation, 0x08), // odd payload, dropped
	} {
		msg, err := Parse(data)
		if err != nil {
			t.Fatal(err)
		}
		b.HandleMessage(msg)
	}

	if got := neoncube.FormatMoves(rot.moves); got != "x+1.5' x+1.5" {
		t.Errorf("moves = %q", got)
	}
	if b.Moves() != 2 {
		t.Errorf("Moves() = %d", b.Moves())
	}
	if b.Battery() != 55 {
		t.Errorf("Battery() = %d", b.Battery())
	}
	if b.CubeType() != "edge" {
		t.Errorf("CubeType() = %q", b.CubeType())
	}
}

func TestBridgeRejectedMove(t *testing.T) {
	rot := &fakeRotator{size: 3, err: neoncube.ErrInvalidLayer}
	b := NewBridge(rot, nil)

	msg, _ := Parse(frame(MsgTypeRotation, 0x02, 0x00))
	b.HandleMessage(msg)

	if b.Moves() != 0 {
		t.Errorf("rejected move counted: %d", b.Moves())
	}
}
