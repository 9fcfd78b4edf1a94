package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCelular(t *testing.T) {
	num, tipo := Clean("(31) 99999-8888")
	assert.Equal(t, "5531999998888", num)
	assert.Equal(t, TipoCelular, tipo)
}

func TestCleanFixo(t *testing.T) {
	num, tipo := Clean("3133224455")
	assert.Equal(t, "553133224455", num)
	assert.Equal(t, TipoFixo, tipo)
}

func TestCleanVazio(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc-def"} {
		num, tipo := Clean(raw)
		assert.Equal(t, SemNumero, num, "raw=%q", raw)
		assert.Equal(t, TipoDesconhecido, tipo, "raw=%q", raw)
	}
}

func TestCleanPrefixaDDI(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		tipo string
	}{
		{"99999-8888", "55999998888", TipoFixo},            // 9 dígitos, local curto demais pra celular
		{"(11) 98765-4321", "5511987654321", TipoCelular},  // celular SP
		{"11 3322-4455", "551133224455", TipoFixo},         // fixo SP
		{"+55 31 99999-8888", "5531999998888", TipoCelular}, // já veio com DDI
	}
	for _, c := range cases {
		num, tipo := Clean(c.raw)
		assert.Equal(t, c.want, num, "raw=%q", c.raw)
		assert.Equal(t, c.tipo, tipo, "raw=%q", c.raw)
	}
}

func TestCleanNumeroLongoNaoGanhaDDI(t *testing.T) {
	// 12+ dígitos: assume DDI incluso, não prefixa de novo
	num, tipo := Clean("553133224455")
	assert.Equal(t, "553133224455", num)
	assert.Equal(t, TipoFixo, tipo)
}
