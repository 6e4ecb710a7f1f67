package imageio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/klauspost/compress/zlib"
)

const (
	iccMarkerTag = "ICC_PROFILE\x00"
	pngSignature = "\x89PNG\r\n\x1a\n"

	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerAPP2 = 0xE2

	maxProfileSize = 4 * 1024 * 1024
)

// EmbeddedICC returns the ICC profile carried by an encoded image, or nil
// when there is none. Only PNG (iCCP) and JPEG (APP2) carry profiles here.
func EmbeddedICC(format string, data []byte) ([]byte, error) {
	switch format {
	case "png":
		return pngICC(data)
	case "jpeg":
		markers, err := jpegAPP2Segments(data)
		if err != nil {
			return nil, err
		}
		return ExtractICC(markers)
	default:
		return nil, nil
	}
}

// ExtractICC reassembles an ICC profile from APP2 marker segments.
// markers is a slice of raw APP2 marker payloads (excluding the APP2 marker bytes themselves).
func ExtractICC(markers [][]byte) ([]byte, error) {
	type chunk struct {
		seq  int
		data []byte
	}
	var chunks []chunk
	expectedCount := 0

	for _, m := range markers {
		if len(m) < 14 {
			continue
		}
		if string(m[:12]) != iccMarkerTag {
			continue
		}
		seq := int(m[12])
		count := int(m[13])
		if seq == 0 || seq > count {
			return nil, fmt.Errorf("invalid ICC chunk sequence %d/%d", seq, count)
		}
		if expectedCount == 0 {
			expectedCount = count
		} else if count != expectedCount {
			return nil, fmt.Errorf("inconsistent ICC chunk count: %d vs %d", count, expectedCount)
		}
		chunks = append(chunks, chunk{seq: seq, data: m[14:]})
	}

	if len(chunks) == 0 {
		return nil, nil // no ICC profile present
	}
	if len(chunks) != expectedCount {
		return nil, fmt.Errorf("expected %d ICC chunks, found %d", expectedCount, len(chunks))
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].seq < chunks[j].seq })

	var buf bytes.Buffer
	for _, c := range chunks {
		buf.Write(c.data)
	}
	return buf.Bytes(), nil
}

// jpegAPP2Segments walks the JPEG marker stream up to the first scan and
// returns every APP2 payload.
func jpegAPP2Segments(data []byte) ([][]byte, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != markerSOI {
		return nil, fmt.Errorf("missing JPEG SOI marker")
	}

	var segments [][]byte
	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return nil, fmt.Errorf("expected marker at offset %d, got 0x%02x", pos, data[pos])
		}
		marker := data[pos+1]
		if marker == 0xFF { // fill byte
			pos++
			continue
		}
		if marker == markerSOS || marker == markerEOI {
			break
		}
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			pos += 2
			continue
		}
		length := int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
		if length < 2 || pos+2+length > len(data) {
			return nil, fmt.Errorf("truncated JPEG segment 0x%02x at offset %d", marker, pos)
		}
		if marker == markerAPP2 {
			segments = append(segments, data[pos+4:pos+2+length])
		}
		pos += 2 + length
	}
	return segments, nil
}

// pngICC returns the decompressed profile from a PNG iCCP chunk.
func pngICC(data []byte) ([]byte, error) {
	if len(data) < len(pngSignature) || string(data[:len(pngSignature)]) != pngSignature {
		return nil, fmt.Errorf("missing PNG signature")
	}

	pos := len(pngSignature)
	for pos+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		typ := string(data[pos+4 : pos+8])
		start := pos + 8
		end := start + length
		if length < 0 || end+4 > len(data) {
			return nil, fmt.Errorf("truncated PNG chunk %q at offset %d", typ, pos)
		}

		switch typ {
		case "iCCP":
			return inflateICCP(data[start:end])
		case "IDAT", "IEND":
			// iCCP must precede the image data.
			return nil, nil
		}
		pos = end + 4 // skip CRC
	}
	return nil, nil
}

func inflateICCP(chunk []byte) ([]byte, error) {
	nul := bytes.IndexByte(chunk, 0)
	if nul < 1 || nul > 79 || nul+2 > len(chunk) {
		return nil, fmt.Errorf("malformed iCCP profile name")
	}
	if method := chunk[nul+1]; method != 0 {
		return nil, fmt.Errorf("unsupported iCCP compression method %d", method)
	}

	zr, err := zlib.NewReader(bytes.NewReader(chunk[nul+2:]))
	if err != nil {
		return nil, fmt.Errorf("iCCP: %w", err)
	}
	defer zr.Close()

	profile, err := io.ReadAll(io.LimitReader(zr, maxProfileSize+1))
	if err != nil {
		return nil, fmt.Errorf("iCCP: %w", err)
	}
	if len(profile) > maxProfileSize {
		return nil, fmt.Errorf("iCCP profile larger than %d bytes", maxProfileSize)
	}
	return profile, nil
}
