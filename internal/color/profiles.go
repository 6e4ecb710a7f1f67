// Package color reads ICC profile headers embedded in input images.
package color

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

const (
	maxProfileSize = 4 * 1024 * 1024 // 4 MB
	acspMagic      = 0x61637370      // 'acsp'
	headerSize     = 128
)

// ProfileInfo contains metadata parsed from an ICC profile.
type ProfileInfo struct {
	Size        uint32
	Version     string
	ColorSpace  string // "RGB ", "CMYK", etc.
	PCS         string // "XYZ ", "Lab "
	Class       string // "mntr", "prtr", "scnr", etc.
	Description string // from the 'desc' tag, empty if absent or unreadable
}

// ParseProfileInfo reads ICC header metadata and the profile description
// from raw profile bytes.
func ParseProfileInfo(data []byte) (*ProfileInfo, error) {
	if len(data) < headerSize {
		return nil, errors.New("ICC profile too short (< 128 bytes)")
	}
	if uint32(len(data)) > maxProfileSize {
		return nil, fmt.Errorf("ICC profile too large (%d bytes, max %d)", len(data), maxProfileSize)
	}
	sig := binary.BigEndian.Uint32(data[36:40])
	if sig != acspMagic {
		return nil, fmt.Errorf("invalid ICC signature: 0x%08x (expected 0x%08x)", sig, acspMagic)
	}
	size := binary.BigEndian.Uint32(data[0:4])
	if size > uint32(len(data)) {
		return nil, fmt.Errorf("ICC header declares %d bytes, only %d present", size, len(data))
	}
	major := data[8]
	minor := data[9] >> 4
	bugfix := data[9] & 0x0f

	return &ProfileInfo{
		Size:        size,
		Version:     fmt.Sprintf("%d.%d.%d", major, minor, bugfix),
		ColorSpace:  string(data[16:20]),
		PCS:         string(data[20:24]),
		Class:       string(data[12:16]),
		Description: description(data[:size]),
	}, nil
}

// description finds the 'desc' tag and decodes it. v2 profiles use
// textDescriptionType (ASCII), v4 profiles multiLocalizedUnicodeType; for
// the latter the first record is used.
func description(data []byte) string {
	if len(data) < headerSize+4 {
		return ""
	}
	count := int(binary.BigEndian.Uint32(data[headerSize:]))
	for i := 0; i < count; i++ {
		entry := headerSize + 4 + i*12
		if entry+12 > len(data) {
			return ""
		}
		if string(data[entry:entry+4]) != "desc" {
			continue
		}
		off := int(binary.BigEndian.Uint32(data[entry+4:]))
		n := int(binary.BigEndian.Uint32(data[entry+8:]))
		if off < 0 || n < 12 || off+n > len(data) {
			return ""
		}
		return decodeText(data[off : off+n])
	}
	return ""
}

func decodeText(tag []byte) string {
	switch string(tag[:4]) {
	case "desc":
		n := int(binary.BigEndian.Uint32(tag[8:12]))
		if n <= 0 || 12+n > len(tag) {
			return ""
		}
		return strings.TrimRight(string(tag[12:12+n]), "\x00")
	case "mluc":
		if len(tag) < 28 {
			return ""
		}
		records := binary.BigEndian.Uint32(tag[8:12])
		if records == 0 {
			return ""
		}
		n := int(binary.BigEndian.Uint32(tag[20:24]))
		off := int(binary.BigEndian.Uint32(tag[24:28]))
		if n < 0 || off < 0 || off+n > len(tag) {
			return ""
		}
		u := make([]uint16, n/2)
		for i := range u {
			u[i] = binary.BigEndian.Uint16(tag[off+2*i:])
		}
		return strings.TrimRight(string(utf16.Decode(u)), "\x00")
	default:
		return ""
	}
}

// ColorSpaceName returns a human-readable name for an ICC color space signature.
func ColorSpaceName(sig string) string {
	switch sig {
	case "RGB ":
		return "RGB"
	case "CMYK":
		return "CMYK"
	case "GRAY":
		return "Grayscale"
	case "Lab ":
		return "CIELAB"
	case "XYZ ":
		return "CIEXYZ"
	default:
		return sig
	}
}

// ProfileClassName returns a human-readable name for an ICC profile class.
func ProfileClassName(sig string) string {
	switch sig {
	case "mntr":
		return "Display"
	case "prtr":
		return "Output"
	case "scnr":
		return "Input"
	case "link":
		return "DeviceLink"
	case "spac":
		return "ColorSpace"
	case "abst":
		return "Abstract"
	case "nmcl":
		return "NamedColor"
	default:
		return sig
	}
}
