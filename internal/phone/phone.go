package phone

import "strings"

// Tipo de linha deduzido do número. Heurística, não validação de plano
// de numeração.
const (
	TipoCelular      = "CELULAR"
	TipoFixo         = "FIXO"
	TipoDesconhecido = "DESCONHECIDO"
)

// Sentinela para número ausente.
const SemNumero = "N/A"

// Clean normaliza um telefone bruto (com pontuação, espaços etc.) para
// dígitos puros com DDI e classifica a linha.
//
// Regras:
//   - entrada vazia -> ("N/A", DESCONHECIDO)
//   - remove tudo que não for dígito
//   - menos de 12 dígitos -> assume número nacional e prefixa o DDI 55;
//     com 12+ dígitos assume que o DDI já veio incluso
//   - número local (depois do DDI) com 11 dígitos e terceiro dígito 9 -> CELULAR,
//     senão FIXO
func Clean(raw string) (string, string) {
	if strings.TrimSpace(raw) == "" {
		return SemNumero, TipoDesconhecido
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	nums := b.String()
	if nums == "" {
		return SemNumero, TipoDesconhecido
	}

	if len(nums) <= 11 {
		nums = "55" + nums
	}

	local := nums[2:]
	tipo := TipoFixo
	if len(local) == 11 && local[2] == '9' {
		tipo = TipoCelular
	}
	return nums, tipo
}
