package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"

	"github.com/notargets/objnorm/types"
)

// WriteObjm creates or truncates filename and writes ms to it in .objm layout
func WriteObjm(fs afero.Fs, filename string, ms *types.MeshSnapshot) (err error) {
	var (
		file afero.File
	)
	if file, err = fs.Create(filename); err != nil {
		return fmt.Errorf("unable to create file %s: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", filename, cerr)
		}
	}()
	if err = FormatObjm(file, ms); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return
}

/*
FormatObjm writes the vertex block, a blank line, the normal records, a blank
line and the face records. Normal and face records already carry their own
terminators and are written unchanged.
*/
func FormatObjm(w io.Writer, ms *types.MeshSnapshot) (err error) {
	bw := bufio.NewWriter(w)
	for _, v := range ms.Vertices {
		bw.WriteString("v ")
		bw.WriteString(formatFloat(v.X))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(v.Y))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(v.Z))
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	for _, n := range ms.Normals {
		bw.WriteString(n)
	}
	bw.WriteByte('\n')
	for _, f := range ms.Faces {
		bw.WriteString(f)
	}
	// bufio.Writer keeps the first write error and reports it here
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
