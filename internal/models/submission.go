package models

import (
	"encoding/json"
	"time"
)

// Submission — pedido de orçamento vindo do formulário público.
// Só o status muda por aqui (new -> viewed); nunca é apagado.
type Submission struct {
	ID               string          `json:"id"`
	NomeEmpresa      string          `json:"nome_empresa"`
	Whatsapp         string          `json:"whatsapp"`
	Segmento         string          `json:"segmento,omitempty"`
	RamoAtividade    string          `json:"ramo_atividade,omitempty"`
	CategoriaServico string          `json:"categoria_servico"` // chatbot | website
	ProdutoPlano     string          `json:"produto_plano,omitempty"`
	DadosTecnicos    json.RawMessage `json:"dados_tecnicos,omitempty"`
	Status           string          `json:"status"` // new | viewed
	CreatedAt        time.Time       `json:"created_at"`
}

const (
	SubmissionStatusNew    = "new"
	SubmissionStatusViewed = "viewed"

	CategoriaChatbot = "chatbot"
	CategoriaWebsite = "website"
)

// ChatbotDetails — formato conhecido de dados_tecnicos para categoria chatbot.
type ChatbotDetails struct {
	LinkCatalogo string `json:"link_catalogo,omitempty"`
	Saudacao     string `json:"saudacao,omitempty"`
	BotLogica    string `json:"bot_logica,omitempty"`
	BotPersona   string `json:"bot_persona,omitempty"`
}

// WebsiteDetails — formato conhecido de dados_tecnicos para categoria website.
type WebsiteDetails struct {
	Identidade  string `json:"identidade,omitempty"` // "sim" = já tem logo
	Login       string `json:"login,omitempty"`
	Referencias string `json:"referencias,omitempty"`
	SitePaginas string `json:"site_paginas,omitempty"`
}
