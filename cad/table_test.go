package cad

import (
	"slices"
	"testing"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
	"github.com/stretchr/testify/require"
)

func TestTable_Add(t *testing.T) {
	doc := NewDocument(format.R2000)

	base := NewLayer("Base")
	require.NoError(t, doc.Layers.Add(base))
	require.NotZero(t, base.Handle())
	require.Same(t, doc.Layers, base.Owner())

	tests := []struct {
		name  string
		entry *Layer
		want  error
	}{
		{"duplicate ignoring case", NewLayer("BASE"), errs.ErrDuplicateName},
		{"empty name", NewLayer(""), errs.ErrEmptyName},
		{"already owned", base, errs.ErrAlreadyOwned},
		{"nil", nil, errs.ErrNilObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, doc.Layers.Add(tt.entry), tt.want)
		})
	}

	require.Equal(t, 1, doc.Layers.Len())
}

func TestTable_GetAndOrder(t *testing.T) {
	doc := NewDocument(format.R2000)
	names := []string{"Walls", "Doors", "Windows", "Furniture"}
	for _, n := range names {
		require.NoError(t, doc.Layers.Add(NewLayer(n)))
	}

	l, ok := doc.Layers.Get("doors")
	require.True(t, ok)
	require.Equal(t, "Doors", l.Name())

	_, ok = doc.Layers.Get("Roof")
	require.False(t, ok)
	require.False(t, doc.Layers.Contains("Roof"))

	var got []string
	for e := range doc.Layers.All() {
		got = append(got, e.Name())
	}
	require.Equal(t, names, got)
	require.Equal(t, "Windows", doc.Layers.At(2).Name())

	entries := doc.Layers.Entries()
	entries[0] = nil
	require.NotNil(t, doc.Layers.At(0))

	require.Equal(t, format.ObjectLayerControl, doc.Layers.ObjectType())
	require.Nil(t, doc.Layers.Owner())
}

func TestTable_BlockRecordsCaseInsensitive(t *testing.T) {
	doc := NewDocument(format.R2000)

	require.ErrorIs(t, doc.BlockRecords.Add(NewBlockRecord("*MODEL_SPACE")), errs.ErrDuplicateName)
	rec, ok := doc.BlockRecords.Get("*paper_space")
	require.True(t, ok)
	require.Same(t, doc.PaperSpace(), rec)

	recs := slices.Collect(doc.BlockRecords.All())
	require.Len(t, recs, 2)
	require.Equal(t, ModelSpaceName, recs[0].Name())
	require.Equal(t, PaperSpaceName, recs[1].Name())
}
