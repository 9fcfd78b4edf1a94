package services

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramService manda avisos pro chat de ops. Instância nil ou sem chat
// configurado vira no-op, então dá pra subir o serviço sem bot.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) *TelegramService {
	if botToken == "" || chatID == 0 {
		log.Printf("[tg] bot desabilitado (token ou chat_id ausente)")
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg] falha ao iniciar bot, notificações desligadas: %v", err)
		return nil
	}
	log.Printf("[tg] bot autorizado como @%s", bot.Self.UserName)
	return &TelegramService{bot: bot, chatID: chatID}
}

func (t *TelegramService) Notify(text string) error {
	if t == nil || t.bot == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.DisableWebPagePreview = true
	_, err := t.bot.Send(msg)
	return err
}
