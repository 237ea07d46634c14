package srcmap_test

import (
	"testing"

	"github.com/ShafSpecs/mdit-go/srcmap"
	"github.com/stretchr/testify/assert"
)

func TestIdentityMappingResolve(t *testing.T) {
	m := srcmap.Identity(10)
	assert.Equal(t, 10, m.Resolve(0))
	assert.Equal(t, 13, m.Resolve(3))
}

func TestMappingResolvePicksClosestPriorEntry(t *testing.T) {
	m := srcmap.Mapping{
		{Local: 0, Global: 2},   // "> foo" -> "foo" drops "> " (2 bytes)
		{Local: 3, Global: 7},   // next source line starts further away
	}
	assert.Equal(t, 2, m.Resolve(0))
	assert.Equal(t, 4, m.Resolve(2))
	assert.Equal(t, 7, m.Resolve(3))
	assert.Equal(t, 9, m.Resolve(5))
}

func TestLineColSingleLine(t *testing.T) {
	line, col := srcmap.LineCol("hello world", 6)
	assert.Equal(t, 1, line)
	assert.Equal(t, 7, col)
}

func TestLineColMultiLine(t *testing.T) {
	src := "abc\ndef\nghi"
	line, col := srcmap.LineCol(src, 6) // 'f' in second line
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)
}

func TestLineColClampsOutOfRange(t *testing.T) {
	line, col := srcmap.LineCol("abc", 100)
	assert.Equal(t, 1, line)
	assert.Equal(t, 4, col)
}
