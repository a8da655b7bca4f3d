package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// validatePacketResult is one .packet file's length-header check.
type validatePacketResult struct {
	name        string
	packetType  int
	claimedSize int
	actualSize  int
}

func (r validatePacketResult) valid() bool {
	return r.claimedSize == r.actualSize
}

// validateCaptureDir checks that every .packet file under dir has a
// 2-byte big-endian length header equal to the file's actual size.
// (internal/capture.Writer.WriteFrame only checks that the bytes it
// wrote match the bytes it was given; it does not read the header.) Grounded on tools/validate_packet_files.py, which exists to
// prove captured packet files are never silently truncated.
func validateCaptureDir(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.packet"))
	if err != nil {
		return fmt.Errorf("validate-capture: globbing %s: %w", dir, err)
	}
	sort.Strings(matches)

	if len(matches) == 0 {
		fmt.Printf("no .packet files found in %q\n", dir)
		return nil
	}

	fmt.Printf("validating %d packet files in %q...\n\n", len(matches), dir)

	results := make([]validatePacketResult, 0, len(matches))
	invalid := 0
	for _, path := range matches {
		r, err := validatePacketFile(path)
		if err != nil {
			return fmt.Errorf("validate-capture: %w", err)
		}
		results = append(results, r)
		if !r.valid() {
			invalid++
		}
		status := "OK   "
		if !r.valid() {
			status = "BAD  "
		}
		fmt.Printf("%s %-30s type %3d claimed %5d actual %5d\n",
			status, r.name, r.packetType, r.claimedSize, r.actualSize)
	}

	fmt.Printf("\n%d of %d packet files valid\n", len(results)-invalid, len(results))
	if invalid > 0 {
		return fmt.Errorf("validate-capture: %d of %d packet files failed length validation", invalid, len(results))
	}
	return nil
}

func validatePacketFile(path string) (validatePacketResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return validatePacketResult{}, err
	}
	actualSize := int(info.Size())

	result := validatePacketResult{name: filepath.Base(path), packetType: -1, actualSize: actualSize}
	if actualSize < 2 {
		return result, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return validatePacketResult{}, err
	}

	result.claimedSize = int(binary.BigEndian.Uint16(data[:2]))
	if actualSize >= 4 {
		result.packetType = int(binary.LittleEndian.Uint16(data[2:4]))
	}
	return result, nil
}
