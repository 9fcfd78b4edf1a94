package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/gabrielbeloni06/zytechhub/internal/app"
)

// @title        Zytech Hub API
// @version      1.0
// @description  Backend do painel interno da Zytech: hunter de leads, templates de outreach, dashboard e caixa de entrada de orçamentos.
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Sem .env, usando variáveis de ambiente do sistema")
	}
	app.Run()
}
