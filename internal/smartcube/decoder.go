package smartcube

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/neoncube"
)

// Rotation is a single face turn reported by the cube.
type Rotation struct {
	FaceCode          byte // raw face+direction code, 0x00-0x0B
	CenterOrientation byte
	Clockwise         bool
	Color             string
}

var colorNames = [6]string{"blue", "green", "white", "yellow", "red", "orange"}

// faceSlots places each GoCube centre colour on the game cube, assuming
// white up, green front and red right.
var faceSlots = map[string]neoncube.Slot{
	"red":    neoncube.SlotPosX,
	"orange": neoncube.SlotNegX,
	"white":  neoncube.SlotPosY,
	"yellow": neoncube.SlotNegY,
	"green":  neoncube.SlotPosZ,
	"blue":   neoncube.SlotNegZ,
}

// DecodeRotation decodes a rotation payload of [face_dir][center] pairs.
// Even face codes are clockwise, odd ones counter-clockwise.
func DecodeRotation(payload []byte) ([]Rotation, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("rotation payload must have even length, got %d", len(payload))
	}

	var rotations []Rotation
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		idx := int(code / 2)
		if idx >= len(colorNames) {
			return nil, fmt.Errorf("unknown color index %d from face code 0x%02X", idx, code)
		}
		rotations = append(rotations, Rotation{
			FaceCode:          code,
			CenterOrientation: payload[i+1],
			Clockwise:         code%2 == 0,
			Color:             colorNames[idx],
		})
	}
	return rotations, nil
}

// DecodeBattery returns the battery percentage.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, fmt.Errorf("battery payload too short")
	}
	return int(payload[0]), nil
}

// OfflineStats are the counters a cube keeps while no client is connected.
type OfflineStats struct {
	Moves   int
	Seconds int
	Solves  int
}

// DecodeCubeType names the cube model: "edge" for 0x01, else "standard".
func DecodeCubeType(payload []byte) (string, error) {
	if len(payload) < 1 {
		return "", fmt.Errorf("cube type payload too short")
	}
	if payload[0] == 0x01 {
		return "edge", nil
	}
	return "standard", nil
}

// DecodeOfflineStats parses the ASCII payload "moves#seconds#solves".
func DecodeOfflineStats(payload []byte) (OfflineStats, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 3 {
		return OfflineStats{}, fmt.Errorf("offline stats payload must have 3 parts, got %d", len(parts))
	}

	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return OfflineStats{}, fmt.Errorf("invalid offline stats field %d: %w", i, err)
		}
		vals[i] = v
	}
	return OfflineStats{Moves: vals[0], Seconds: vals[1], Solves: vals[2]}, nil
}

// Slot returns the game-cube face the rotation turned.
func (r Rotation) Slot() neoncube.Slot {
	return faceSlots[r.Color]
}

// Move maps the rotation to the outer layer of a game cube of the given
// size. Clockwise is as seen looking at the turned face, so faces on the
// negative side of an axis turn the other way about it.
func (r Rotation) Move(size int) neoncube.Move {
	slot := r.Slot()
	turn := neoncube.CCW
	if r.Clockwise {
		turn = neoncube.CW
	}
	if slot.Sign() < 0 {
		turn = -turn
	}
	return neoncube.Move{
		Axis:  slot.Axis(),
		Layer: float64(slot.Sign()) * float64(size-1) / 2,
		Turn:  turn,
	}
}
