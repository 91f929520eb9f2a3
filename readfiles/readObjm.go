package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/objnorm/types"
)

var ErrMalformedVertex = errors.New("malformed vertex line")

// Line classes are decided by the first two characters only
const (
	prefixVertex = "v "
	prefixNormal = "vn"
	prefixFace   = "f "
)

// ReadObjm reads a .objm file into a MeshSnapshot
func ReadObjm(fs afero.Fs, filename string) (ms *types.MeshSnapshot, err error) {
	var (
		file afero.File
	)
	if file, err = fs.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	if ms, err = ParseObjm(file); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

/*
ParseObjm classifies each line of r by its first two characters:
"v " lines become vertex positions, "vn" and "f " lines are kept verbatim with
their terminators, everything else is dropped.
*/
func ParseObjm(r io.Reader) (ms *types.MeshSnapshot, err error) {
	var (
		reader = bufio.NewReader(r)
		line   string
		v      r3.Vec
		lineNo int
	)
	ms = types.NewMeshSnapshot()
	for {
		line, err = getLine(reader)
		if line == "" && err == io.EOF {
			return ms, nil
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		lineNo++
		if len(line) < 2 {
			continue
		}
		switch line[0:2] {
		case prefixVertex:
			if v, err = parseVertex(line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			ms.Vertices = append(ms.Vertices, v)
		case prefixNormal:
			ms.Normals = append(ms.Normals, line)
		case prefixFace:
			ms.Faces = append(ms.Faces, line)
		}
	}
}

func parseVertex(line string) (v r3.Vec, err error) {
	var (
		coords [3]float64
	)
	fields := strings.Fields(line[1:])
	if len(fields) < 3 {
		return v, fmt.Errorf("%w: expected 3 coordinates, got %d in [%s]",
			ErrMalformedVertex, len(fields), strings.TrimRight(line, "\r\n"))
	}
	for i := range coords {
		if coords[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return v, fmt.Errorf("%w: %v", ErrMalformedVertex, err)
		}
		if math.IsNaN(coords[i]) || math.IsInf(coords[i], 0) {
			return v, fmt.Errorf("%w: coordinate %q is not finite", ErrMalformedVertex, fields[i])
		}
	}
	return r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// getLine returns the next line with its terminator, the last line of a file may not have one
func getLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	return
}
