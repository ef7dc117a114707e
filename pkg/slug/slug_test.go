package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café con Leche", "cafe-con-leche"},
		{"Bodega Norte", "bodega-norte"},
		{"  Espacios   múltiples  ", "espacios-multiples"},
		{"Ñandú & Cía.", "nandu-cia"},
		{"UPPERCASE", "uppercase"},
		{"ya-con-guiones", "ya-con-guiones"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slug.Make(tc.in), "entrada: %q", tc.in)
	}
}
