package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedPBM reports an input that is not a plain (P1) bitmap.
var ErrMalformedPBM = errors.New("render: malformed PBM")

// WritePBM writes the grid in plain PBM (P1) form, one text row per grid row.
func WritePBM(out io.Writer, w, h int, cells []uint8) error {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return fmt.Errorf("render: %dx%d grid with %d cells", w, h, len(cells))
	}
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "P1\n%d %d\n", w, h)
	line := make([]byte, 0, 2*w)
	for y := 0; y < h; y++ {
		line = line[:0]
		for x, c := range cells[y*w : (y+1)*w] {
			if x > 0 {
				line = append(line, ' ')
			}
			if c != 0 {
				line = append(line, '1')
			} else {
				line = append(line, '0')
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPBM parses a plain PBM (P1) image. Pixel digits may be separated by
// whitespace or packed together; '#' starts a comment running to end of line.
func ReadPBM(in io.Reader) (w, h int, cells []uint8, err error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var header []string
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.Fields(line) {
			if len(header) < 3 {
				header = append(header, tok)
				if len(header) == 3 {
					if w, h, err = parseHeader(header); err != nil {
						return 0, 0, nil, err
					}
					cells = make([]uint8, 0, w*h)
				}
				continue
			}
			for _, r := range tok {
				switch r {
				case '0':
					cells = append(cells, 0)
				case '1':
					cells = append(cells, 1)
				default:
					return 0, 0, nil, fmt.Errorf("%w: pixel %q", ErrMalformedPBM, r)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return 0, 0, nil, err
	}
	if len(header) < 3 {
		return 0, 0, nil, fmt.Errorf("%w: truncated header", ErrMalformedPBM)
	}
	if len(cells) != w*h {
		return 0, 0, nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrMalformedPBM, len(cells), w, h)
	}
	return w, h, cells, nil
}

func parseHeader(tok []string) (int, int, error) {
	if tok[0] != "P1" {
		return 0, 0, fmt.Errorf("%w: magic %q", ErrMalformedPBM, tok[0])
	}
	w, err := strconv.Atoi(tok[1])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("%w: width %q", ErrMalformedPBM, tok[1])
	}
	h, err := strconv.Atoi(tok[2])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("%w: height %q", ErrMalformedPBM, tok[2])
	}
	return w, h, nil
}
