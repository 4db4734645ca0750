package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStoreSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accents stripped", "Panadería San José", "panaderia-san-jose"},
		{"enie", "El Ñandú", "el-nandu"},
		{"punctuation collapses", "Lo de Toto!! (Centro)", "lo-de-toto-centro"},
		{"leading and trailing trimmed", "  -- Tienda --  ", "tienda"},
		{"already clean", "verduleria", "verduleria"},
		{"numbers kept", "Kiosco 24hs", "kiosco-24hs"},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateStoreSlug(tt.in))
		})
	}
}
