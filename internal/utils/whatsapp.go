package utils

import (
	"net/url"
	"strings"
)

// WhatsAppLink monta o deep link wa.me com o texto já preenchido.
// O link só abre a conversa; o envio em si acontece fora do sistema.
func WhatsAppLink(telefone, texto string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + strings.TrimPrefix(telefone, "+"),
	}
	if texto != "" {
		q := url.Values{}
		q.Set("text", texto)
		u.RawQuery = q.Encode()
	}
	return u.String()
}
