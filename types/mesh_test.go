package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestMeshSnapshot(t *testing.T) {
	ms := &MeshSnapshot{
		Vertices: []r3.Vec{{X: 1}, {Y: 2}},
		Normals:  []string{"vn 0 1 0\n"},
		Faces:    []string{"f 1 2 3\n", "f 3 2 1\n"},
	}
	assert.Equal(t, 2, ms.NumVertices())
	assert.Equal(t, 1, ms.NumNormals())
	assert.Equal(t, 2, ms.NumFaces())
	assert.Equal(t, "2 vertices, 1 normals, 2 faces", ms.String())

	{ // New vertices leave the source snapshot untouched
		moved := ms.WithVertices([]r3.Vec{{X: 5}, {X: 6}})
		assert.Equal(t, r3.Vec{X: 1}, ms.Vertices[0])
		assert.Equal(t, r3.Vec{X: 5}, moved.Vertices[0])
		assert.Equal(t, ms.Normals, moved.Normals)
		assert.Equal(t, ms.Faces, moved.Faces)
	}
	{
		empty := NewMeshSnapshot()
		assert.Equal(t, 0, empty.NumVertices())
		assert.Equal(t, "0 vertices, 0 normals, 0 faces", empty.String())
	}
}
