package buffer

import (
	"fmt"
	"strings"
)

// Type identifies a buffer exchanged with, or owned by, the video hardware.
type Type int

// List of the buffer types. Input, Output and their meta companions are
// visible to the client; the others are scratch memory of the firmware.
const (
	Input Type = iota + 1
	Output
	InputMeta
	OutputMeta
	// Bin holds the parsed bitstream between the entropy and pixel stages.
	Bin
	// Comv holds co-located motion vectors of reference pictures.
	Comv
	// NonComv holds the decoder and encoder command and context state.
	NonComv
	// Line holds neighbour rows and columns used while processing pixels.
	Line
	// Persist holds decoder state that lives across frames.
	Persist
	// DPB holds the pictures reconstructed by an encoder for reference.
	DPB
	// ARP holds the encoder auto reference picture state.
	ARP
	// VPSS is the encoder pre-processing scratch for scale, rotate and flip.
	VPSS
)

var typeNames = []string{
	Input:      "input",
	Output:     "output",
	InputMeta:  "input_meta",
	OutputMeta: "output_meta",
	Bin:        "bin",
	Comv:       "comv",
	NonComv:    "non_comv",
	Line:       "line",
	Persist:    "persist",
	DPB:        "dpb",
	ARP:        "arp",
	VPSS:       "vpss",
}

func (t Type) String() string {
	if t > 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Internal reports whether t is only ever touched by the firmware.
func (t Type) Internal() bool {
	return t >= Bin && t <= VPSS
}

// Types returns every buffer type in declaration order.
func Types() []Type {
	types := make([]Type, 0, len(typeNames)-1)
	for t := Input; t <= VPSS; t++ {
		types = append(types, t)
	}
	return types
}

// ParseType resolves a buffer type name such as "bin" or "non_comv".
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types() {
		if typeNames[t] == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("buffer: unknown type %q", s)
}
