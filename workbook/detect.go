package workbook

import (
	"io"
	"os"
)

// fileFormat is the detected container format of a workbook file.
type fileFormat int

const (
	formatUnknown fileFormat = iota
	formatOLE2               // binary .xls (magic: d0cf11e0a1b11ae1)
	formatOOXML              // ZIP-based .xlsx (magic: 504b0304)
)

// detectFormat reads the first bytes of a file and returns the detected
// container format.
func detectFormat(path string) (fileFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return formatUnknown, err
	}
	defer f.Close()

	buf := make([]byte, 8)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return formatUnknown, err
	}
	if n < 4 {
		return formatUnknown, nil
	}

	// OLE2 Compound Document: d0 cf 11 e0
	if buf[0] == 0xd0 && buf[1] == 0xcf && buf[2] == 0x11 && buf[3] == 0xe0 {
		return formatOLE2, nil
	}

	// ZIP (OOXML): PK\x03\x04
	if buf[0] == 0x50 && buf[1] == 0x4b && buf[2] == 0x03 && buf[3] == 0x04 {
		return formatOOXML, nil
	}

	return formatUnknown, nil
}
