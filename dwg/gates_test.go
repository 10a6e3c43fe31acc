package dwg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/format"
)

func TestNewGates(t *testing.T) {
	tests := []struct {
		rev  format.Revision
		want Gates
	}{
		{format.R13, Gates{R13_14Only: true, R13_15Only: true, R2004Pre: true}},
		{format.R14, Gates{R13_14Only: true, R13_15Only: true, R2004Pre: true}},
		{format.R2000, Gates{R13_15Only: true, R2000Plus: true, R2004Pre: true}},
		{format.R2004, Gates{R2000Plus: true, R2004Plus: true}},
		{format.R2007, Gates{R2000Plus: true, R2004Plus: true, R2007Plus: true}},
		{format.R2010, Gates{R2000Plus: true, R2004Plus: true, R2007Plus: true, R2010Plus: true}},
		{format.R2013, Gates{R2000Plus: true, R2004Plus: true, R2007Plus: true, R2010Plus: true, R2013Plus: true}},
		{format.R2018, Gates{
			R2000Plus: true, R2004Plus: true, R2007Plus: true, R2010Plus: true, R2013Plus: true, R2018Plus: true,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.rev.String(), func(t *testing.T) {
			tt.want.Revision = tt.rev
			require.Equal(t, tt.want, NewGates(tt.rev))
		})
	}
}
