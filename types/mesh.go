package types

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

/*
MeshSnapshot holds the contents of one .objm file in the order the records were
encountered. Face records refer to vertices by their position, so none of the
sequences may be reordered.
*/
type MeshSnapshot struct {
	Vertices []r3.Vec // Vertex positions, from "v " lines
	Normals  []string // "vn" lines, verbatim including the line terminator
	Faces    []string // "f " lines, verbatim including the line terminator
}

func NewMeshSnapshot() *MeshSnapshot {
	return &MeshSnapshot{}
}

// WithVertices returns a snapshot sharing the normal and face records of ms, with new vertex positions
func (ms *MeshSnapshot) WithVertices(verts []r3.Vec) *MeshSnapshot {
	return &MeshSnapshot{
		Vertices: verts,
		Normals:  ms.Normals,
		Faces:    ms.Faces,
	}
}

func (ms *MeshSnapshot) NumVertices() int { return len(ms.Vertices) }
func (ms *MeshSnapshot) NumNormals() int  { return len(ms.Normals) }
func (ms *MeshSnapshot) NumFaces() int    { return len(ms.Faces) }

func (ms *MeshSnapshot) String() string {
	return fmt.Sprintf("%d vertices, %d normals, %d faces",
		ms.NumVertices(), ms.NumNormals(), ms.NumFaces())
}
